package middleware

import (
	"net/http"

	"github.com/shalomhq/shiftboard-backend-go/internal/domain/auth"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/employee"
	"github.com/shalomhq/shiftboard-backend-go/internal/handler/http/response"
)

// AdminOnly requires the admin role.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Role(r.Context()) != string(employee.RoleAdmin) {
			response.HandleError(w, auth.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// EmployeeOnly requires the employee role; admins act through their own
// endpoints rather than submitting requests on behalf of staff.
func EmployeeOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Role(r.Context()) != string(employee.RoleEmployee) {
			response.HandleError(w, auth.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// IsAdmin reports whether the caller holds the admin role.
func IsAdmin(r *http.Request) bool {
	return Role(r.Context()) == string(employee.RoleAdmin)
}
