package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord represents a single sales transaction served by the products API.
// Each field maps one key of the JSON object returned by the source.
//
// Key mapping (Portuguese JSON key → field):
//
//	Produto                → Product
//	Categoria do Produto   → Category
//	Preço                  → Price
//	Frete                  → Freight
//	Data da Compra         → PurchaseDate (dd/mm/yyyy, stored as UTC midnight)
//	Vendedor               → Seller
//	Local da compra        → Location (UF code, e.g. "SP")
//	lat / lon              → Lat / Lon
//	Avaliação da compra    → Rating (1-5)
//	Tipo de pagamento      → PaymentType
//	Quantidade de parcelas → Installments (>= 1)
type SalesRecord struct {
	Product      string
	Category     string
	Price        decimal.Decimal
	Freight      decimal.Decimal
	PurchaseDate time.Time
	Seller       string
	Location     string
	Lat          float64
	Lon          float64
	Rating       int
	PaymentType  string
	Installments int
}

// ParseIssue describes one record excluded from the working set.
type ParseIssue struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// ParseReport summarizes the decoding of one API response.
//
// Malformed records never reach filtering or aggregation; they are counted here
// so the caller can surface how many rows were dropped and why.
type ParseReport struct {
	Total     int          `json:"total"`
	Accepted  int          `json:"accepted"`
	Malformed int          `json:"malformed"`
	Issues    []ParseIssue `json:"issues,omitempty"`
}
