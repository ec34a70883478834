package aggregate

import (
	"cmp"
	"slices"
	"time"

	"github.com/guttosm/salespulse/internal/domain/models"
	"github.com/shopspring/decimal"
)

// monthKey identifies a calendar month of a specific year, so January 2022
// and January 2023 stay separate rows.
type monthKey struct {
	year  int
	month time.Month
}

func compareMonth(a, b monthKey) int {
	if c := cmp.Compare(a.year, b.year); c != 0 {
		return c
	}
	return cmp.Compare(a.month, b.month)
}

type monthGroup struct {
	revenue decimal.Decimal
	sales   int
}

// groupByMonth returns the groups and their keys in chronological order.
// Only months that contain at least one record are present.
func groupByMonth(records []models.SalesRecord) (map[monthKey]*monthGroup, []monthKey) {
	groups := make(map[monthKey]*monthGroup)
	keys := make([]monthKey, 0)
	for _, rec := range records {
		k := monthKey{year: rec.PurchaseDate.Year(), month: rec.PurchaseDate.Month()}
		g, ok := groups[k]
		if !ok {
			g = &monthGroup{revenue: decimal.Zero}
			groups[k] = g
			keys = append(keys, k)
		}
		g.revenue = g.revenue.Add(rec.Price)
		g.sales++
	}
	slices.SortFunc(keys, compareMonth)
	return groups, keys
}

// RevenueByMonth sums prices per (year, month) in chronological order.
func RevenueByMonth(records []models.SalesRecord) models.MonthlyRevenueTable {
	groups, keys := groupByMonth(records)
	table := models.MonthlyRevenueTable{Rows: make([]models.MonthlyRevenue, 0, len(keys)), Max: decimal.Zero}
	for _, k := range keys {
		v := groups[k].revenue
		table.Rows = append(table.Rows, models.MonthlyRevenue{
			Year:      k.year,
			Month:     k.month,
			MonthName: k.month.String(),
			Revenue:   v,
		})
		if v.GreaterThan(table.Max) {
			table.Max = v
		}
	}
	return table
}

// SalesByMonth counts records per (year, month) in chronological order.
func SalesByMonth(records []models.SalesRecord) models.MonthlySalesTable {
	groups, keys := groupByMonth(records)
	table := models.MonthlySalesTable{Rows: make([]models.MonthlySales, 0, len(keys))}
	for _, k := range keys {
		n := groups[k].sales
		table.Rows = append(table.Rows, models.MonthlySales{
			Year:      k.year,
			Month:     k.month,
			MonthName: k.month.String(),
			Sales:     n,
		})
		table.Max = max(table.Max, n)
	}
	return table
}
