package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/shalomhq/shiftboard-backend-go/internal/domain/auth"
	"github.com/shalomhq/shiftboard-backend-go/internal/domain/schedule"
	"github.com/shalomhq/shiftboard-backend-go/internal/handler/http/middleware"
	"github.com/shalomhq/shiftboard-backend-go/internal/handler/http/response"
	scheduleservice "github.com/shalomhq/shiftboard-backend-go/internal/service/schedule"
)

type ScheduleHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Reassign(w http.ResponseWriter, r *http.Request)
	BulkCreate(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	ListOpen(w http.ResponseWriter, r *http.Request)
}

type ScheduleHandlerImpl struct {
	scheduleService scheduleservice.Service
}

func NewScheduleHandler(scheduleService scheduleservice.Service) ScheduleHandler {
	return &ScheduleHandlerImpl{scheduleService: scheduleService}
}

// List implements ScheduleHandler. `me=true` scopes to the caller;
// employee_id is admin-only.
func (s *ScheduleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter schedule.Filter

	query := r.URL.Query()
	if query.Get("me") == "true" {
		employeeID, ok := middleware.EmployeeID(r.Context())
		if !ok {
			response.HandleError(w, auth.ErrUnauthorized)
			return
		}
		filter.EmployeeID = &employeeID
	} else if raw := query.Get("employee_id"); raw != "" {
		if !middleware.IsAdmin(r) {
			response.HandleError(w, auth.ErrForbidden)
			return
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid employee_id filter", nil)
			return
		}
		filter.EmployeeID = &id
	}
	if raw := query.Get("is_open_shift"); raw != "" {
		open := raw == "true"
		filter.IsOpenShift = &open
	}
	if raw := query.Get("status"); raw != "" {
		status := schedule.Status(raw)
		filter.Status = &status
	}

	entries, err := s.scheduleService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, entries)
}

// Get implements ScheduleHandler.
func (s *ScheduleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid schedule id", nil)
		return
	}

	entry, err := s.scheduleService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, entry)
}

// Create implements ScheduleHandler.
func (s *ScheduleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq schedule.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	entry, err := s.scheduleService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create schedule service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule created", entry)
}

// Update implements ScheduleHandler.
func (s *ScheduleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid schedule id", nil)
		return
	}

	var updateReq schedule.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = id

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	entry, err := s.scheduleService.Update(r.Context(), updateReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule updated", entry)
}

// Delete implements ScheduleHandler.
func (s *ScheduleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid schedule id", nil)
		return
	}

	if err := s.scheduleService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule deleted", nil)
}

// Reassign implements ScheduleHandler.
func (s *ScheduleHandlerImpl) Reassign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		response.BadRequest(w, "Invalid schedule id", nil)
		return
	}

	var reassignReq schedule.ReassignRequest
	if err := json.NewDecoder(r.Body).Decode(&reassignReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	reassignReq.ScheduleID = id

	if err := reassignReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	entry, err := s.scheduleService.Reassign(r.Context(), reassignReq)
	if err != nil {
		slog.Error("Reassign service error", "error", err, "schedule_id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Schedule reassigned", "schedule_id", id, "employee_id", reassignReq.NewEmployeeID)
	response.SuccessWithMessage(w, "Schedule reassigned", entry)
}

// BulkCreate implements ScheduleHandler.
func (s *ScheduleHandlerImpl) BulkCreate(w http.ResponseWriter, r *http.Request) {
	var bulkReq schedule.BulkCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&bulkReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := bulkReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := s.scheduleService.BulkCreate(r.Context(), bulkReq)
	if err != nil {
		slog.Error("BulkCreate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Bulk schedules created",
		"employee_id", bulkReq.EmployeeID,
		"created", len(result.Created),
		"skipped", len(result.Skipped),
	)
	response.Created(w, fmt.Sprintf("Created %d of %d schedules", len(result.Created), result.Candidates), result)
}

// Export implements ScheduleHandler. Streams the workbook as an attachment.
func (s *ScheduleHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	data, err := s.scheduleService.Export(r.Context())
	if err != nil {
		slog.Error("Export service error", "error", err)
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("schedules-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(data)
}

// ListOpen implements ScheduleHandler.
func (s *ScheduleHandlerImpl) ListOpen(w http.ResponseWriter, r *http.Request) {
	entries, err := s.scheduleService.ListOpen(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, entries)
}
