package jwt

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shalomhq/shiftboard-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestGenerateTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "168h")

	emp := &employee.Employee{
		ID:    42,
		Name:  "Jane Doe",
		Email: strptr("jane.doe@shalom.com"),
		Role:  employee.RoleAdmin,
	}

	token, expiresAt, err := svc.GenerateToken(emp)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	role, ok := decoded.Get("role")
	require.True(t, ok)
	assert.Equal(t, "admin", role)

	name, ok := decoded.Get("name")
	require.True(t, ok)
	assert.Equal(t, "Jane Doe", name)
}

func TestAuthTokenCookie(t *testing.T) {
	svc := NewJWTService("test-secret", "168h")

	expiresAt := time.Now().Add(7 * 24 * time.Hour).Unix()
	cookie := svc.AuthTokenCookie("token-value", expiresAt)

	assert.Equal(t, CookieName, cookie.Name)
	assert.Equal(t, "token-value", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
}

func TestClearAuthCookie(t *testing.T) {
	svc := NewJWTService("test-secret", "168h")

	cookie := svc.ClearAuthCookie()
	assert.Equal(t, CookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestTokenFromCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, TokenFromCookie(r))

	r.AddCookie(&http.Cookie{Name: CookieName, Value: "abc123"})
	assert.Equal(t, "abc123", TokenFromCookie(r))
}
