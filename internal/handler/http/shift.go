package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shalomhq/shiftboard-backend-go/internal/domain/shift"
	"github.com/shalomhq/shiftboard-backend-go/internal/handler/http/response"
	shiftservice "github.com/shalomhq/shiftboard-backend-go/internal/service/shift"
)

type ShiftHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shiftservice.Service
}

func NewShiftHandler(shiftService shiftservice.Service) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: shiftService}
}

// List implements ShiftHandler.
func (s *ShiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	templates, err := s.shiftService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, templates)
}

// Get implements ShiftHandler.
func (s *ShiftHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid shift id", nil)
		return
	}

	t, err := s.shiftService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, t)
}

// Create implements ShiftHandler.
func (s *ShiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq shift.CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	t, err := s.shiftService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create shift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created", t)
}

// Update implements ShiftHandler.
func (s *ShiftHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid shift id", nil)
		return
	}

	var updateReq shift.UpdateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = id

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	t, err := s.shiftService.Update(r.Context(), updateReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift updated", t)
}

// Delete implements ShiftHandler.
func (s *ShiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid shift id", nil)
		return
	}

	if err := s.shiftService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift deleted", nil)
}
