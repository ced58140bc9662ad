package http

import (
	"log/slog"
	"net/http"

	"github.com/giu-hrms/hrms-backend-go/internal/domain/dashboard"
	"github.com/giu-hrms/hrms-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetDashboard returns the summary counters of the console home page
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		slog.Error("GetDashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
