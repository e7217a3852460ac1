package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shalomhq/shiftboard-backend-go/internal/domain/auth"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/claim"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/employee"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/request"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/schedule"
	"github.com/shalomhq/shiftboard-backend-go/internal/pkg/validator"
)

func TestHandleError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"forbidden", auth.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"employee not found", employee.ErrEmployeeNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"email exists", employee.ErrEmailExists, http.StatusConflict, "CONFLICT"},
		{"schedule not found", schedule.ErrEntryNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"shift not open", schedule.ErrShiftNotOpen, http.StatusBadRequest, "BAD_REQUEST"},
		{"shift taken", schedule.ErrShiftTaken, http.StatusConflict, "CONFLICT"},
		{"already processed", request.ErrAlreadyProcessed, http.StatusConflict, "CONFLICT"},
		{"swap not accepted", request.ErrSwapNotAccepted, http.StatusConflict, "CONFLICT"},
		{"not swap partner", request.ErrNotSwapPartner, http.StatusForbidden, "FORBIDDEN"},
		{"claim not pending", claim.ErrClaimNotPending, http.StatusNotFound, "NOT_FOUND"},
		{"already claimed", claim.ErrAlreadyClaimed, http.StatusConflict, "CONFLICT"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestHandleError_WrappedError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("wrapped: "+schedule.ErrShiftTaken.Error()))

	// Message matching is not enough; only errors.Is chains map.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleError_ValidationErrors(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "email", Message: "email is required"},
	}

	rec := httptest.NewRecorder()
	HandleError(rec, errs)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "email is required", body.Error.Details["email"])
}
