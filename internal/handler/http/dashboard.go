package http

import (
	"net/http"

	"github.com/shalomhq/shiftboard-backend-go/internal/domain/auth"
	"github.com/shalomhq/shiftboard-backend-go/internal/handler/http/middleware"
	"github.com/shalomhq/shiftboard-backend-go/internal/handler/http/response"
	dashboardservice "github.com/shalomhq/shiftboard-backend-go/internal/service/dashboard"
)

type DashboardHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboardservice.Service
}

func NewDashboardHandler(dashboardService dashboardservice.Service) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Stats implements DashboardHandler. Role decides the shape: admins get
// roster-wide numbers, employees their own.
func (d *DashboardHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	if middleware.IsAdmin(r) {
		stats, err := d.dashboardService.AdminStats(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, stats)
		return
	}

	employeeID, ok := middleware.EmployeeID(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrUnauthorized)
		return
	}

	stats, err := d.dashboardService.EmployeeStats(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}
