package dashboard

import "context"

type DashboardService interface {
	GetDashboard(ctx context.Context) (Stats, error)
}
