package service

import (
	"context"
	"time"

	"github.com/partsledger/partsledger-api/internal/domain/entity"
	"github.com/partsledger/partsledger-api/internal/store"
)

// DashboardService aggregates read-only statistics across the collections
type DashboardService struct {
	store *store.Store
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(st *store.Store) *DashboardService {
	return &DashboardService{store: st}
}

// DashboardStats is the aggregate overview returned to the dashboard screen
type DashboardStats struct {
	TotalParts       int           `json:"total_parts"`
	TotalCustomers   int           `json:"total_customers"`
	TotalOperations  int           `json:"total_operations"`
	TodayOperations  int           `json:"today_operations"`
	TodayRevenue     float64       `json:"today_revenue"`
	TotalReceivables float64       `json:"total_receivables"`
	LowStockParts    []entity.Part `json:"low_stock_parts"`
}

// GetStats computes the dashboard overview
func (s *DashboardService) GetStats(ctx context.Context) DashboardStats {
	stats := DashboardStats{LowStockParts: []entity.Part{}}
	now := time.Now()

	s.store.View(func(st *entity.AppState) {
		stats.TotalParts = len(st.Parts)
		stats.TotalCustomers = len(st.Customers)
		stats.TotalOperations = len(st.Operations)

		var todayRevenue int64
		for _, op := range st.Operations {
			if sameDay(op.Timestamp, now) {
				stats.TodayOperations++
				todayRevenue += op.Price
			}
		}
		stats.TodayRevenue = entity.FromCents(todayRevenue)

		var receivables int64
		for _, customer := range st.Customers {
			if customer.Balance > 0 {
				receivables += customer.Balance
			}
		}
		stats.TotalReceivables = entity.FromCents(receivables)

		for _, part := range st.Parts {
			if part.IsLowStock() {
				stats.LowStockParts = append(stats.LowStockParts, part)
			}
		}
	})

	return stats
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
