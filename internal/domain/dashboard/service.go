package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard returns the headline counters, department mix and the caller's recent activity
	GetDashboard(ctx context.Context) (*DashboardResponse, error)
}
