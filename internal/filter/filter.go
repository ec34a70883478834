// Package filter holds the query predicate set and the filter engine that
// applies it to a record collection.
package filter

import "github.com/guttosm/salespulse/internal/domain/models"

// Apply returns the records matching every active predicate.
//
// The input slice is never modified and the result keeps the input's relative
// order. A nil predicate set retains everything. The result is never nil, so
// an empty match serializes as an empty list.
func Apply(records []models.SalesRecord, p *Predicates) []models.SalesRecord {
	out := make([]models.SalesRecord, 0, len(records))
	for _, rec := range records {
		if p.Match(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Match reports whether rec satisfies all active dimensions of p.
func (p *Predicates) Match(rec models.SalesRecord) bool {
	if p == nil {
		return true
	}
	if p.region != "" && RegionOf(rec.Location) != p.region {
		return false
	}
	if p.hasYear && rec.PurchaseDate.Year() != p.year {
		return false
	}
	return p.products.Contains(rec.Product) &&
		p.categories.Contains(rec.Category) &&
		p.price.Contains(rec.Price) &&
		p.freight.Contains(rec.Freight) &&
		p.dates.Contains(rec.PurchaseDate) &&
		p.sellers.Contains(rec.Seller) &&
		p.locations.Contains(rec.Location) &&
		p.rating.Contains(rec.Rating) &&
		p.paymentTypes.Contains(rec.PaymentType) &&
		p.installments.Contains(rec.Installments)
}
