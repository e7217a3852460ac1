package http

import (
	"encoding/json"
	"net/http"

	"github.com/shalomhq/shiftboard-backend-go/internal/domain/auth"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/unavailability"
	"github.com/shalomhq/shiftboard-backend-go/internal/handler/http/middleware"
	"github.com/shalomhq/shiftboard-backend-go/internal/handler/http/response"
	unavailservice "github.com/shalomhq/shiftboard-backend-go/internal/service/unavailability"
)

type UnavailabilityHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type UnavailabilityHandlerImpl struct {
	unavailService unavailservice.Service
}

func NewUnavailabilityHandler(unavailService unavailservice.Service) UnavailabilityHandler {
	return &UnavailabilityHandlerImpl{unavailService: unavailService}
}

// List implements UnavailabilityHandler.
func (u *UnavailabilityHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter unavailability.Filter
	if r.URL.Query().Get("me") == "true" {
		employeeID, ok := middleware.EmployeeID(r.Context())
		if !ok {
			response.HandleError(w, auth.ErrUnauthorized)
			return
		}
		filter.EmployeeID = &employeeID
	}

	windows, err := u.unavailService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, windows)
}

// Get implements UnavailabilityHandler.
func (u *UnavailabilityHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid unavailability id", nil)
		return
	}

	window, err := u.unavailService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, window)
}

// Create implements UnavailabilityHandler. Employees may only file windows
// for themselves; admins may file for anyone.
func (u *UnavailabilityHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq unavailability.CreateWindowRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if !middleware.IsAdmin(r) {
		employeeID, ok := middleware.EmployeeID(r.Context())
		if !ok {
			response.HandleError(w, auth.ErrUnauthorized)
			return
		}
		createReq.EmployeeID = employeeID
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	window, err := u.unavailService.Create(r.Context(), createReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Unavailability created", window)
}

// Update implements UnavailabilityHandler.
func (u *UnavailabilityHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid unavailability id", nil)
		return
	}

	var updateReq unavailability.UpdateWindowRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = id

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	window, err := u.unavailService.Update(r.Context(), updateReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Unavailability updated", window)
}

// Delete implements UnavailabilityHandler.
func (u *UnavailabilityHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid unavailability id", nil)
		return
	}

	if err := u.unavailService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Unavailability deleted", nil)
}
