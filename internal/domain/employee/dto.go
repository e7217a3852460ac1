package employee

import "github.com/shalomhq/shiftboard-backend-go/internal/pkg/validator"

type UpdateProfileRequest struct {
	ID          int64   `json:"-"`
	Name        string  `json:"name"`
	Phone       *string `json:"phone"`
	Gender      *string `json:"gender"`
	DateOfBirth *string `json:"date_of_birth"`
	Position    *string `json:"position"`
	// Password is optional; when present it replaces the stored hash.
	Password     *string `json:"password,omitempty"`
	PasswordHash *string `json:"-"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.DateOfBirth != nil && *r.DateOfBirth != "" {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date_of_birth",
				Message: "date_of_birth must be in YYYY-MM-DD format",
			})
		}
	}
	if r.Password != nil && len(*r.Password) < 4 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 4 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetupCredentialsResult struct {
	Updated []CredentialSummary `json:"updated"`
	Skipped []CredentialFailure `json:"skipped,omitempty"`
}

type CredentialSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CredentialFailure struct {
	Name  string `json:"name"`
	Error string `json:"error"`
}
