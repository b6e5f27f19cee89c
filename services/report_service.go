package services

import (
	"context"
	"sort"
	"time"

	"restaurant-orders-api/repository"
	"restaurant-orders-api/store"
)

// Period names a trailing report window.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

var periodWindows = map[Period]time.Duration{
	PeriodDaily:   24 * time.Hour,
	PeriodWeekly:  7 * 24 * time.Hour,
	PeriodMonthly: 28 * 24 * time.Hour,
}

// Window returns how far back the period reaches.
func (p Period) Window() (time.Duration, bool) {
	d, ok := periodWindows[p]
	return d, ok
}

// SalesDay aggregates one calendar day (UTC) of orders.
type SalesDay struct {
	SaleDay        string `json:"sale_day"`
	TotalOrders    int64  `json:"total_orders"`
	TotalItemsSold int64  `json:"total_items_sold"`
}

type ReportService struct {
	Store *store.Store
	Repo  *repository.OrderRepository
	Now   func() time.Time
}

func NewReportService(s *store.Store, repo *repository.OrderRepository) *ReportService {
	return &ReportService{
		Store: s,
		Repo:  repo,
		Now:   func() time.Time { return time.Now().UTC() },
	}
}

// GetSalesReport counts distinct orders and summed quantities per day for
// orders placed inside the period's window, newest day first. No qualifying
// orders yields an empty slice, not an error.
func (s *ReportService) GetSalesReport(ctx context.Context, period Period) ([]SalesDay, error) {
	window, ok := period.Window()
	if !ok {
		return nil, newError(ErrValidation, "invalid period %q, expected daily, weekly or monthly", period)
	}
	since := s.Now().Add(-window)

	volumes, err := s.Repo.VolumesSince(s.Store.DB(ctx), since)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*SalesDay)
	for _, v := range volumes {
		day := v.OrderDate.UTC().Format(time.DateOnly)
		agg, ok := byDay[day]
		if !ok {
			agg = &SalesDay{SaleDay: day}
			byDay[day] = agg
		}
		agg.TotalOrders++
		agg.TotalItemsSold += v.Items
	}

	report := make([]SalesDay, 0, len(byDay))
	for _, agg := range byDay {
		report = append(report, *agg)
	}
	sort.Slice(report, func(i, j int) bool { return report[i].SaleDay > report[j].SaleDay })
	return report, nil
}
