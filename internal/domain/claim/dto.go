package claim

import "github.com/shalomhq/shiftboard-backend-go/internal/pkg/validator"

type CreateClaimRequest struct {
	ScheduleID int64   `json:"schedule_id"`
	Remarks    *string `json:"remarks"`

	// RequesterEmployeeID is taken from the authenticated token, never the body.
	RequesterEmployeeID int64 `json:"-"`
}

func (r *CreateClaimRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.ScheduleID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "schedule_id", Message: "schedule_id is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateClaimRequest lets an admin amend the notes on a claim.
type UpdateClaimRequest struct {
	AdminNotes *string `json:"admin_notes"`
}

type ResolveClaimRequest struct {
	AdminNotes *string `json:"admin_notes"`
}

type Filter struct {
	RequesterEmployeeID *int64
	Status              *Status
}
