package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/auth"
	"github.com/shalomhq/shiftboard-backend-go/internal/handler/http/response"
)

type contextKey string

const (
	employeeIDKey contextKey = "employee_id"
	roleKey       contextKey = "role"
)

// AuthRequired verifies the decoded token and stashes the caller's id and
// role for downstream handlers. Runs after jwtauth.Verify.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, auth.ErrUnauthorized)
				return
			}

			employeeID, ok := numericClaim(claims, "user_id")
			if !ok {
				response.HandleError(w, auth.ErrUnauthorized)
				return
			}
			role, _ := claims["role"].(string)

			ctx := context.WithValue(r.Context(), employeeIDKey, employeeID)
			ctx = context.WithValue(ctx, roleKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// numericClaim handles the float64 JSON numbers jwx hands back for ints.
func numericClaim(claims map[string]interface{}, key string) (int64, bool) {
	switch v := claims[key].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	}
	return 0, false
}

// EmployeeID returns the authenticated caller's employee id.
func EmployeeID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(employeeIDKey).(int64)
	return id, ok
}

// Role returns the authenticated caller's role claim.
func Role(ctx context.Context) string {
	role, _ := ctx.Value(roleKey).(string)
	return role
}
