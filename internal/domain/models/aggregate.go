package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LocationRevenue is the sum of prices for one purchase location.
//
// Lat and Lon come from the first record seen for the location; every record
// of a location shares the same coordinates.
type LocationRevenue struct {
	Location string          `json:"location" example:"SP"`
	Lat      float64         `json:"lat" example:"-22.19"`
	Lon      float64         `json:"lon" example:"-48.79"`
	Revenue  decimal.Decimal `json:"revenue" example:"1234567.89"`
}

// LocationSales is the number of records for one purchase location.
type LocationSales struct {
	Location string  `json:"location" example:"SP"`
	Lat      float64 `json:"lat" example:"-22.19"`
	Lon      float64 `json:"lon" example:"-48.79"`
	Sales    int     `json:"sales" example:"4321"`
}

// MonthlyRevenue is the revenue of one calendar month of one year.
type MonthlyRevenue struct {
	Year      int             `json:"year" example:"2022"`
	Month     time.Month      `json:"month" example:"1"`
	MonthName string          `json:"month_name" example:"January"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// MonthlySales is the number of records of one calendar month of one year.
type MonthlySales struct {
	Year      int        `json:"year" example:"2022"`
	Month     time.Month `json:"month" example:"1"`
	MonthName string     `json:"month_name" example:"January"`
	Sales     int        `json:"sales"`
}

// MonthlyRevenueTable holds chronological monthly rows and the largest
// revenue among them, used as the chart's y-axis upper bound.
type MonthlyRevenueTable struct {
	Rows []MonthlyRevenue `json:"rows"`
	Max  decimal.Decimal  `json:"max"`
}

// MonthlySalesTable is the count counterpart of MonthlyRevenueTable.
type MonthlySalesTable struct {
	Rows []MonthlySales `json:"rows"`
	Max  int            `json:"max"`
}

type CategoryRevenue struct {
	Category string          `json:"category" example:"moveis"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type CategorySales struct {
	Category string `json:"category" example:"moveis"`
	Sales    int    `json:"sales"`
}

// SellerSummary carries both measures for one seller, computed in one pass.
type SellerSummary struct {
	Seller string          `json:"seller" example:"Ana Duarte"`
	Sum    decimal.Decimal `json:"sum"`
	Count  int             `json:"count"`
}
