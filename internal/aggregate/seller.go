package aggregate

import (
	"cmp"
	"slices"

	"github.com/guttosm/salespulse/internal/domain/models"
	"github.com/shopspring/decimal"
)

// SellerTable holds one summary per seller, both measures computed together.
// Rows are ordered by seller name; use TopBySum or TopByCount for rankings.
type SellerTable struct {
	Rows []models.SellerSummary
}

// BySeller groups records per seller in a single pass.
func BySeller(records []models.SalesRecord) SellerTable {
	index := make(map[string]int)
	rows := make([]models.SellerSummary, 0)
	for _, rec := range records {
		i, ok := index[rec.Seller]
		if !ok {
			i = len(rows)
			index[rec.Seller] = i
			rows = append(rows, models.SellerSummary{Seller: rec.Seller, Sum: decimal.Zero})
		}
		rows[i].Sum = rows[i].Sum.Add(rec.Price)
		rows[i].Count++
	}
	slices.SortFunc(rows, func(a, b models.SellerSummary) int { return cmp.Compare(a.Seller, b.Seller) })
	return SellerTable{Rows: rows}
}

// TopBySum returns up to n sellers with the highest revenue.
func (t SellerTable) TopBySum(n int) []models.SellerSummary {
	return t.top(n, func(a, b models.SellerSummary) int { return b.Sum.Cmp(a.Sum) })
}

// TopByCount returns up to n sellers with the most sales.
func (t SellerTable) TopByCount(n int) []models.SellerSummary {
	return t.top(n, func(a, b models.SellerSummary) int { return cmp.Compare(b.Count, a.Count) })
}

func (t SellerTable) top(n int, by func(a, b models.SellerSummary) int) []models.SellerSummary {
	sorted := slices.Clone(t.Rows)
	if sorted == nil {
		sorted = []models.SellerSummary{}
	}
	// Rows are already name-ordered, so a stable sort keeps the name tie-break.
	slices.SortStableFunc(sorted, by)
	if n < 0 {
		n = 0
	}
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
