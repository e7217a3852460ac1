package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/auth"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/claim"
	"github.com/shalomhq/shiftboard-backend-go/internal/handler/http/middleware"
	"github.com/shalomhq/shiftboard-backend-go/internal/handler/http/response"
	claimservice "github.com/shalomhq/shiftboard-backend-go/internal/service/claim"
)

type ClaimHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type ClaimHandlerImpl struct {
	claimService claimservice.Service
}

func NewClaimHandler(claimService claimservice.Service) ClaimHandler {
	return &ClaimHandlerImpl{claimService: claimService}
}

// Submit implements ClaimHandler.
func (h *ClaimHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.EmployeeID(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrUnauthorized)
		return
	}

	var createReq claim.CreateClaimRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.RequesterEmployeeID = employeeID

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	c, err := h.claimService.Submit(r.Context(), createReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Open shift claim submitted", "claim_id", c.ID, "schedule_id", c.ScheduleID)
	response.Created(w, "Open shift request submitted", c)
}

// List implements ClaimHandler. Admins may filter by employee and status;
// employees always see only their own claims.
func (h *ClaimHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter claim.Filter

	if middleware.IsAdmin(r) {
		query := r.URL.Query()
		if raw := query.Get("employee_id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				response.BadRequest(w, "Invalid employee_id filter", nil)
				return
			}
			filter.RequesterEmployeeID = &id
		}
		if raw := query.Get("status"); raw != "" {
			status := claim.Status(raw)
			filter.Status = &status
		}
	} else {
		employeeID, ok := middleware.EmployeeID(r.Context())
		if !ok {
			response.HandleError(w, auth.ErrUnauthorized)
			return
		}
		filter.RequesterEmployeeID = &employeeID
	}

	claims, err := h.claimService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, claims)
}

// Resolve implements ClaimHandler.
func (h *ClaimHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid open shift request id", nil)
		return
	}

	action := chi.URLParam(r, "action")
	if action != "approve" && action != "reject" {
		response.BadRequest(w, "Action must be approve or reject", nil)
		return
	}

	var resolveReq claim.ResolveClaimRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&resolveReq)
	}

	c, err := h.claimService.Resolve(r.Context(), id, action == "approve", resolveReq.AdminNotes)
	if err != nil {
		slog.Warn("Resolve claim failed", "error", err, "claim_id", id, "action", action)
		response.HandleError(w, err)
		return
	}

	slog.Info("Open shift claim resolved", "claim_id", id, "status", c.Status)
	response.SuccessWithMessage(w, "Open shift request "+string(c.Status), c)
}

// Update implements ClaimHandler. A status in the body delegates to the
// resolve path; otherwise only the notes change.
func (h *ClaimHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid open shift request id", nil)
		return
	}

	var updateReq struct {
		Status     *string `json:"status"`
		AdminNotes *string `json:"admin_notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if updateReq.Status != nil {
		status := claim.Status(*updateReq.Status)
		if status != claim.StatusApproved && status != claim.StatusRejected {
			response.BadRequest(w, "Status must be approved or rejected", nil)
			return
		}

		c, err := h.claimService.Resolve(r.Context(), id, status == claim.StatusApproved, updateReq.AdminNotes)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.SuccessWithMessage(w, "Open shift request "+string(c.Status), c)
		return
	}

	c, err := h.claimService.UpdateNotes(r.Context(), id, updateReq.AdminNotes)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Open shift request updated", c)
}
