package service

import (
	"github.com/guttosm/salespulse/internal/aggregate"
	"github.com/guttosm/salespulse/internal/domain/apperrors"
	"github.com/guttosm/salespulse/internal/domain/models"
	"github.com/guttosm/salespulse/internal/filter"
	"github.com/guttosm/salespulse/internal/format"
	"github.com/shopspring/decimal"
)

const (
	DefaultTopSellers = 5
	MinTopSellers     = 2
	MaxTopSellers     = 10

	// TopLocations is the length of the top-locations bar charts.
	TopLocations = 5
)

// Options tunes a recomputation. The zero value uses the defaults.
type Options struct {
	TopSellers int
}

// Metrics are the two headline cards.
type Metrics struct {
	Revenue      decimal.Decimal `json:"revenue"`
	RevenueLabel string          `json:"revenue_label" example:"R$ 2.50 million"`
	Sales        int             `json:"sales"`
	SalesLabel   string          `json:"sales_label" example:" 9.43 thousand"`
}

// RevenueTab holds the revenue charts.
type RevenueTab struct {
	ByLocation   []models.LocationRevenue   `json:"by_location"`
	TopLocations []models.LocationRevenue   `json:"top_locations"`
	Monthly      models.MonthlyRevenueTable `json:"monthly"`
	ByCategory   []models.CategoryRevenue   `json:"by_category"`
}

// SalesTab holds the sales-count charts.
type SalesTab struct {
	ByLocation   []models.LocationSales   `json:"by_location"`
	TopLocations []models.LocationSales   `json:"top_locations"`
	Monthly      models.MonthlySalesTable `json:"monthly"`
	ByCategory   []models.CategorySales   `json:"by_category"`
}

// SellersTab ranks the top sellers by each measure.
type SellersTab struct {
	Top     int                    `json:"top"`
	BySum   []models.SellerSummary `json:"by_sum"`
	ByCount []models.SellerSummary `json:"by_count"`
}

// Result is everything the dashboard renders for one predicate set.
type Result struct {
	Records []models.SalesRecord `json:"-"`
	Metrics Metrics              `json:"metrics"`
	Revenue RevenueTab           `json:"revenue"`
	Sales   SalesTab             `json:"sales"`
	Sellers SellersTab           `json:"sellers"`
}

// ResolveTopSellers applies the default and checks the allowed range.
func ResolveTopSellers(n int) (int, error) {
	if n == 0 {
		return DefaultTopSellers, nil
	}
	if n < MinTopSellers || n > MaxTopSellers {
		return 0, apperrors.Validationf("top_sellers", "%d outside %d..%d", n, MinTopSellers, MaxTopSellers)
	}
	return n, nil
}

// Recompute filters records and derives every aggregate from the filtered set.
// It is pure: the same inputs always give the same Result and records is
// never modified.
func Recompute(records []models.SalesRecord, p *filter.Predicates, opts Options) (Result, error) {
	top, err := ResolveTopSellers(opts.TopSellers)
	if err != nil {
		return Result{}, err
	}

	filtered := filter.Apply(records, p)
	revenue := aggregate.TotalRevenue(filtered)

	revByLoc := aggregate.RevenueByLocation(filtered)
	salesByLoc := aggregate.SalesByLocation(filtered)
	sellers := aggregate.BySeller(filtered)

	return Result{
		Records: filtered,
		Metrics: Metrics{
			Revenue:      revenue,
			RevenueLabel: format.Scaled(revenue.InexactFloat64(), "R$"),
			Sales:        len(filtered),
			SalesLabel:   format.Scaled(float64(len(filtered)), ""),
		},
		Revenue: RevenueTab{
			ByLocation:   revByLoc,
			TopLocations: head(revByLoc, TopLocations),
			Monthly:      aggregate.RevenueByMonth(filtered),
			ByCategory:   aggregate.RevenueByCategory(filtered),
		},
		Sales: SalesTab{
			ByLocation:   salesByLoc,
			TopLocations: head(salesByLoc, TopLocations),
			Monthly:      aggregate.SalesByMonth(filtered),
			ByCategory:   aggregate.SalesByCategory(filtered),
		},
		Sellers: SellersTab{
			Top:     top,
			BySum:   sellers.TopBySum(top),
			ByCount: sellers.TopByCount(top),
		},
	}, nil
}

func head[T any](rows []T, n int) []T {
	if len(rows) < n {
		n = len(rows)
	}
	return append([]T{}, rows[:n]...)
}
