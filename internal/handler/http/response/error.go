package response

import (
	"errors"
	"net/http"

	"github.com/shalomhq/shiftboard-backend-go/internal/domain/auth"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/claim"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/employee"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/request"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/schedule"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/shift"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/unavailability"
	"github.com/shalomhq/shiftboard-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrUnauthorized):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, auth.ErrForbidden):
		Forbidden(w, "Insufficient permissions")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Shift template errors
	case errors.Is(err, shift.ErrTemplateNotFound):
		NotFound(w, "Shift not found")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrEntryNotFound):
		NotFound(w, "Schedule not found")
	case errors.Is(err, schedule.ErrShiftNotOpen):
		BadRequest(w, "Shift is not open for requests", nil)
	case errors.Is(err, schedule.ErrShiftTaken):
		Conflict(w, "Shift has already been assigned")
	case errors.Is(err, schedule.ErrEmployeeRequired):
		BadRequest(w, "Employee is required for assigned shifts", nil)

	// Unavailability domain errors
	case errors.Is(err, unavailability.ErrWindowNotFound):
		NotFound(w, "Unavailability not found")

	// Employee request errors
	case errors.Is(err, request.ErrRequestNotFound):
		NotFound(w, "Request not found")
	case errors.Is(err, request.ErrAlreadyProcessed):
		Conflict(w, "Request has already been processed")
	case errors.Is(err, request.ErrShiftTaken):
		Conflict(w, "Shift has already been taken")
	case errors.Is(err, request.ErrSwapNotAccepted):
		Conflict(w, "Swap has not been accepted by the other employee")
	case errors.Is(err, request.ErrNotSwapPartner):
		Forbidden(w, "Only the requested employee can respond to this swap")
	case errors.Is(err, request.ErrSwapNotOpen):
		Conflict(w, "Swap is no longer open for a response")
	case errors.Is(err, request.ErrInvalidType):
		BadRequest(w, "Unsupported request type", nil)

	// Open shift claim errors
	case errors.Is(err, claim.ErrClaimNotFound):
		NotFound(w, "Open shift request not found or already processed")
	case errors.Is(err, claim.ErrAlreadyClaimed):
		Conflict(w, "You already have a pending request for this shift")
	case errors.Is(err, claim.ErrClaimNotPending):
		NotFound(w, "Open shift request not found or already processed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
