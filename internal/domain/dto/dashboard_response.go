package dto

import (
	"github.com/guttosm/salespulse/internal/domain/models"
	"github.com/shopspring/decimal"
)

// BarPoint is one bar of a labelled bar chart.
type BarPoint struct {
	Key   string          `json:"key" example:"SP"`
	Value decimal.Decimal `json:"value" swaggertype:"string" example:"1234567.89"`
	Label string          `json:"label" example:"R$ 1234567.89"`
}

type MetricsResponse struct {
	Revenue      decimal.Decimal `json:"revenue" swaggertype:"string" example:"2500000.00"`
	RevenueLabel string          `json:"revenue_label" example:"R$ 2.50 million"`
	Sales        int             `json:"sales" example:"9432"`
	SalesLabel   string          `json:"sales_label" example:" 9.43 thousand"`
}

// RevenueTabResponse feeds the revenue tab: map, monthly line, top locations
// and category bars.
type RevenueTabResponse struct {
	ByLocation   []models.LocationRevenue   `json:"by_location"`
	TopLocations []BarPoint                 `json:"top_locations"`
	Monthly      models.MonthlyRevenueTable `json:"monthly"`
	ByCategory   []BarPoint                 `json:"by_category"`
}

// SalesTabResponse is the count counterpart of RevenueTabResponse.
type SalesTabResponse struct {
	ByLocation   []models.LocationSales   `json:"by_location"`
	TopLocations []BarPoint               `json:"top_locations"`
	Monthly      models.MonthlySalesTable `json:"monthly"`
	ByCategory   []BarPoint               `json:"by_category"`
}

type SellersTabResponse struct {
	Top     int        `json:"top" example:"5"`
	BySum   []BarPoint `json:"by_sum"`
	ByCount []BarPoint `json:"by_count"`
}

// DashboardResponse represents the JSON structure returned by the
// GET /api/v1/dashboard endpoint.
type DashboardResponse struct {
	Metrics     MetricsResponse    `json:"metrics"`
	Revenue     RevenueTabResponse `json:"revenue"`
	Sales       SalesTabResponse   `json:"sales"`
	Sellers     SellersTabResponse `json:"sellers"`
	ParseReport models.ParseReport `json:"parse_report"`
}

// RecordsResponse represents the filtered table returned by GET /api/v1/records.
type RecordsResponse struct {
	Columns     []string           `json:"columns"`
	Rows        [][]string         `json:"rows"`
	RowCount    int                `json:"row_count" example:"120"`
	ColumnCount int                `json:"column_count" example:"12"`
	Caption     string             `json:"caption" example:"The table has 120 rows and 12 columns"`
	ParseReport models.ParseReport `json:"parse_report"`
}

type LoadsResponse struct {
	Loads []models.LoadLog `json:"loads"`
}

type MessageResponse struct {
	Message string `json:"message" example:"export cache cleared"`
}
