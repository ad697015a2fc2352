package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// GetDashboard implements DashboardHandler.
func (h *DashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	data, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, data)
}
