package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/auth"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/request"
	"github.com/shalomhq/shiftboard-backend-go/internal/handler/http/middleware"
	"github.com/shalomhq/shiftboard-backend-go/internal/handler/http/response"
	requestservice "github.com/shalomhq/shiftboard-backend-go/internal/service/request"
)

type RequestHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
	SwapResponse(w http.ResponseWriter, r *http.Request)
	OfferShift(w http.ResponseWriter, r *http.Request)
	RequestOpenShift(w http.ResponseWriter, r *http.Request)
}

type RequestHandlerImpl struct {
	requestService requestservice.Service
}

func NewRequestHandler(requestService requestservice.Service) RequestHandler {
	return &RequestHandlerImpl{requestService: requestService}
}

// Submit implements RequestHandler.
func (h *RequestHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrUnauthorized)
		return
	}

	var createReq request.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.EmployeeID = employeeID

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	req, err := h.requestService.Submit(r.Context(), createReq)
	if err != nil {
		slog.Error("Submit request service error", "error", err, "type", createReq.Type)
		response.HandleError(w, err)
		return
	}

	slog.Info("Request submitted", "request_id", req.ID, "type", req.Type)
	response.Created(w, "Request submitted", req)
}

// List implements RequestHandler. Admins see everything; employees only
// their own.
func (h *RequestHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter request.Filter
	if !middleware.IsAdmin(r) {
		employeeID, ok := middleware.EmployeeID(r.Context())
		if !ok {
			response.HandleError(w, auth.ErrUnauthorized)
			return
		}
		filter.EmployeeID = &employeeID
	}

	requests, err := h.requestService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// Resolve implements RequestHandler. The URL carries the decision as its
// final segment: approve or reject.
func (h *RequestHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "requestId")
	if !ok {
		response.BadRequest(w, "Invalid request id", nil)
		return
	}

	action, ok := request.ParseAction(chi.URLParam(r, "action"))
	if !ok {
		response.BadRequest(w, "Action must be approve or reject", nil)
		return
	}

	var resolveReq request.ResolveRequest
	if r.Body != nil {
		// Body is optional; a bare decision is fine.
		_ = json.NewDecoder(r.Body).Decode(&resolveReq)
	}

	resolved, err := h.requestService.Resolve(r.Context(), id, action, resolveReq.AdminNotes)
	if err != nil {
		slog.Warn("Resolve request failed", "error", err, "request_id", id, "action", action)
		response.HandleError(w, err)
		return
	}

	slog.Info("Request resolved", "request_id", id, "status", resolved.Status)
	response.SuccessWithMessage(w, "Request "+string(resolved.Status), resolved)
}

// SwapResponse implements RequestHandler.
func (h *RequestHandlerImpl) SwapResponse(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrUnauthorized)
		return
	}

	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid request id", nil)
		return
	}

	var swapReq request.SwapResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&swapReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	req, err := h.requestService.RespondToSwap(r.Context(), id, employeeID, swapReq.Accept)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Swap declined"
	if swapReq.Accept {
		message = "Swap accepted"
	}
	response.SuccessWithMessage(w, message, req)
}

// OfferShift implements RequestHandler.
func (h *RequestHandlerImpl) OfferShift(w http.ResponseWriter, r *http.Request) {
	var offerReq request.OfferShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&offerReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := offerReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	req, err := h.requestService.OfferShift(r.Context(), offerReq)
	if err != nil {
		slog.Error("OfferShift service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Shift offered", "request_id", req.ID, "employee_id", offerReq.EmployeeID)
	response.Created(w, "Shift offered", req)
}

// RequestOpenShift implements RequestHandler. Files a fill_open_shift
// request against the open schedule entry in the URL.
func (h *RequestHandlerImpl) RequestOpenShift(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrUnauthorized)
		return
	}

	scheduleID, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid schedule id", nil)
		return
	}

	var body struct {
		Remarks *string `json:"remarks"`
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	req, err := h.requestService.ClaimOpenShift(r.Context(), scheduleID, employeeID, body.Remarks)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Open shift requested", "request_id", req.ID, "schedule_id", scheduleID)
	response.Created(w, "Open shift requested", req)
}
