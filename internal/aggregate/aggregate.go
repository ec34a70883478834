// Package aggregate groups filtered sales records into the summary tables
// behind the dashboard charts.
//
// Every function is pure: the input is never modified and an empty input
// yields an empty (non-nil) result rather than an error. Measure-sorted tables
// are descending, with ties broken by ascending key so output is deterministic.
package aggregate

import (
	"cmp"
	"slices"

	"github.com/guttosm/salespulse/internal/domain/models"
	"github.com/shopspring/decimal"
)

// TotalRevenue sums the price of every record.
func TotalRevenue(records []models.SalesRecord) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range records {
		total = total.Add(rec.Price)
	}
	return total
}

type geoGroup struct {
	lat, lon float64
	revenue  decimal.Decimal
	sales    int
}

// groupByLocation keeps first-seen coordinates per location.
func groupByLocation(records []models.SalesRecord) map[string]*geoGroup {
	groups := make(map[string]*geoGroup)
	for _, rec := range records {
		g, ok := groups[rec.Location]
		if !ok {
			g = &geoGroup{lat: rec.Lat, lon: rec.Lon, revenue: decimal.Zero}
			groups[rec.Location] = g
		}
		g.revenue = g.revenue.Add(rec.Price)
		g.sales++
	}
	return groups
}

// RevenueByLocation sums prices per purchase location, highest first.
func RevenueByLocation(records []models.SalesRecord) []models.LocationRevenue {
	groups := groupByLocation(records)
	out := make([]models.LocationRevenue, 0, len(groups))
	for loc, g := range groups {
		out = append(out, models.LocationRevenue{Location: loc, Lat: g.lat, Lon: g.lon, Revenue: g.revenue})
	}
	slices.SortFunc(out, func(a, b models.LocationRevenue) int {
		if c := b.Revenue.Cmp(a.Revenue); c != 0 {
			return c
		}
		return cmp.Compare(a.Location, b.Location)
	})
	return out
}

// SalesByLocation counts records per purchase location, highest first.
func SalesByLocation(records []models.SalesRecord) []models.LocationSales {
	groups := groupByLocation(records)
	out := make([]models.LocationSales, 0, len(groups))
	for loc, g := range groups {
		out = append(out, models.LocationSales{Location: loc, Lat: g.lat, Lon: g.lon, Sales: g.sales})
	}
	slices.SortFunc(out, func(a, b models.LocationSales) int {
		if c := cmp.Compare(b.Sales, a.Sales); c != 0 {
			return c
		}
		return cmp.Compare(a.Location, b.Location)
	})
	return out
}

func groupByCategory(records []models.SalesRecord) (map[string]decimal.Decimal, map[string]int) {
	revenue := make(map[string]decimal.Decimal)
	sales := make(map[string]int)
	for _, rec := range records {
		revenue[rec.Category] = revenue[rec.Category].Add(rec.Price)
		sales[rec.Category]++
	}
	return revenue, sales
}

// RevenueByCategory sums prices per product category, highest first.
func RevenueByCategory(records []models.SalesRecord) []models.CategoryRevenue {
	revenue, _ := groupByCategory(records)
	out := make([]models.CategoryRevenue, 0, len(revenue))
	for c, v := range revenue {
		out = append(out, models.CategoryRevenue{Category: c, Revenue: v})
	}
	slices.SortFunc(out, func(a, b models.CategoryRevenue) int {
		if c := b.Revenue.Cmp(a.Revenue); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return out
}

// SalesByCategory counts records per product category, highest first.
func SalesByCategory(records []models.SalesRecord) []models.CategorySales {
	_, sales := groupByCategory(records)
	out := make([]models.CategorySales, 0, len(sales))
	for c, n := range sales {
		out = append(out, models.CategorySales{Category: c, Sales: n})
	}
	slices.SortFunc(out, func(a, b models.CategorySales) int {
		if c := cmp.Compare(b.Sales, a.Sales); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return out
}
