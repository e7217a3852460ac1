package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shalomhq/shiftboard-backend-go/internal/handler/http/response"
	employeeservice "github.com/shalomhq/shiftboard-backend-go/internal/service/employee"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	SetupCredentials(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employeeservice.Service
}

func NewEmployeeHandler(employeeService employeeservice.Service) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}

// List implements EmployeeHandler.
func (e *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := e.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employees)
}

// Get implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	emp, err := e.employeeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, emp)
}

// Delete implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	if err := e.employeeService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete employee service error", "error", err, "employee_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee deleted", "employee_id", id)
	response.SuccessWithMessage(w, "Employee deleted", nil)
}

// SetupCredentials implements EmployeeHandler.
func (e *EmployeeHandlerImpl) SetupCredentials(w http.ResponseWriter, r *http.Request) {
	result, err := e.employeeService.SetupCredentials(r.Context())
	if err != nil {
		slog.Error("SetupCredentials service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Credentials provisioned", "updated", len(result.Updated), "skipped", len(result.Skipped))
	response.SuccessWithMessage(w, "Credentials provisioned", result)
}
