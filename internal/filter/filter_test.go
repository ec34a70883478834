package filter

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/guttosm/salespulse/internal/domain/apperrors"
	"github.com/guttosm/salespulse/internal/domain/models"
	"github.com/shopspring/decimal"
)

var (
	products  = []string{"Cadeira de escritório", "Geladeira", "Smartwatch", "Violão"}
	cats      = []string{"moveis", "eletrodomesticos", "eletronicos", "instrumentos musicais"}
	sellers   = []string{"Ana Duarte", "Beatriz Moraes", "Juliana Costa", "Thiago Silva"}
	states    = []string{"SP", "RJ", "BA", "RS", "AM", "DF"}
	payments  = []string{"cartao_credito", "boleto", "cupom", "cartao_debito"}
	baseDay   = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	testEpoch = int64(20240917)
)

func pick(r *rand.Rand, xs []string) string { return xs[r.Intn(len(xs))] }

func sampleRecords(n int, r *rand.Rand) []models.SalesRecord {
	out := make([]models.SalesRecord, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.SalesRecord{
			Product:      pick(r, products),
			Category:     pick(r, cats),
			Price:        decimal.NewFromInt(int64(r.Intn(500000))).Shift(-2),
			Freight:      decimal.NewFromInt(int64(r.Intn(25000))).Shift(-2),
			PurchaseDate: baseDay.AddDate(0, 0, r.Intn(4*365)),
			Seller:       pick(r, sellers),
			Location:     pick(r, states),
			Rating:       1 + r.Intn(5),
			PaymentType:  pick(r, payments),
			Installments: 1 + r.Intn(24),
		})
	}
	return out
}

func subset(r *rand.Rand, xs []string) StringSet {
	var vals []string
	for _, x := range xs {
		if r.Intn(2) == 0 {
			vals = append(vals, x)
		}
	}
	return Only(vals...)
}

// randomPredicates activates each dimension with probability 1/2.
func randomPredicates(t *testing.T, r *rand.Rand) *Predicates {
	t.Helper()
	var opts []Option
	maybe := func(o func() Option) {
		if r.Intn(2) == 0 {
			opts = append(opts, o())
		}
	}
	maybe(func() Option { return WithRegion(Regions()[r.Intn(len(Regions()))]) })
	maybe(func() Option { return WithYear(2020 + r.Intn(4)) })
	maybe(func() Option { return WithProducts(subset(r, products)) })
	maybe(func() Option { return WithCategories(subset(r, cats)) })
	maybe(func() Option { return WithSellers(subset(r, sellers)) })
	maybe(func() Option { return WithLocations(subset(r, states)) })
	maybe(func() Option { return WithPaymentTypes(subset(r, payments)) })
	maybe(func() Option {
		lo := int64(r.Intn(2500))
		return WithPriceRange(decimal.NewFromInt(lo), decimal.NewFromInt(lo+int64(r.Intn(2500))))
	})
	maybe(func() Option {
		lo := int64(r.Intn(125))
		return WithFreightRange(decimal.NewFromInt(lo), decimal.NewFromInt(lo+int64(r.Intn(125))))
	})
	maybe(func() Option {
		start := baseDay.AddDate(0, 0, r.Intn(700))
		return WithDateRange(start, start.AddDate(0, 0, r.Intn(700)))
	})
	maybe(func() Option {
		lo := 1 + r.Intn(5)
		return WithRatingRange(lo, lo+r.Intn(6-lo))
	})
	maybe(func() Option {
		lo := 1 + r.Intn(24)
		return WithInstallmentsRange(lo, lo+r.Intn(25-lo))
	})
	p, err := NewPredicates(opts...)
	if err != nil {
		t.Fatalf("NewPredicates: %v", err)
	}
	return p
}

// satisfies re-checks every dimension independently of Match.
func satisfies(p *Predicates, rec models.SalesRecord) bool {
	if p.region != "" && stateRegion[rec.Location] != p.region {
		return false
	}
	if p.hasYear && rec.PurchaseDate.Year() != p.year {
		return false
	}
	in := func(s StringSet, v string) bool {
		if !s.active {
			return true
		}
		_, ok := s.values[v]
		return ok
	}
	if !in(p.products, rec.Product) || !in(p.categories, rec.Category) || !in(p.sellers, rec.Seller) ||
		!in(p.locations, rec.Location) || !in(p.paymentTypes, rec.PaymentType) {
		return false
	}
	if p.price.active && (rec.Price.LessThan(p.price.Min) || rec.Price.GreaterThan(p.price.Max)) {
		return false
	}
	if p.freight.active && (rec.Freight.LessThan(p.freight.Min) || rec.Freight.GreaterThan(p.freight.Max)) {
		return false
	}
	if p.dates.active && (rec.PurchaseDate.Before(p.dates.Start) || rec.PurchaseDate.After(p.dates.End)) {
		return false
	}
	if p.rating.active && (rec.Rating < p.rating.Min || rec.Rating > p.rating.Max) {
		return false
	}
	if p.installments.active && (rec.Installments < p.installments.Min || rec.Installments > p.installments.Max) {
		return false
	}
	return true
}

func TestApply_ConjunctionSubsetAndIdempotence(t *testing.T) {
	r := rand.New(rand.NewSource(testEpoch))
	records := sampleRecords(400, r)
	original := append([]models.SalesRecord(nil), records...)

	for i := 0; i < 200; i++ {
		p := randomPredicates(t, r)
		got := Apply(records, p)

		// every retained record satisfies every predicate, in input order
		j := 0
		for _, rec := range got {
			for j < len(records) && !reflect.DeepEqual(records[j], rec) {
				if satisfies(p, records[j]) {
					t.Fatalf("iteration %d: record %d satisfies predicates but was dropped", i, j)
				}
				j++
			}
			if j == len(records) {
				t.Fatalf("iteration %d: result is not an ordered subset of the input", i)
			}
			if !satisfies(p, rec) {
				t.Fatalf("iteration %d: retained record violates predicates: %+v", i, rec)
			}
			j++
		}
		for ; j < len(records); j++ {
			if satisfies(p, records[j]) {
				t.Fatalf("iteration %d: trailing record %d satisfies predicates but was dropped", i, j)
			}
		}

		if again := Apply(got, p); !reflect.DeepEqual(again, got) {
			t.Fatalf("iteration %d: filter is not idempotent", i)
		}
	}

	if !reflect.DeepEqual(records, original) {
		t.Fatalf("Apply mutated its input")
	}
}

func TestApply_UnsetAndEmptySelections(t *testing.T) {
	r := rand.New(rand.NewSource(testEpoch))
	records := sampleRecords(50, r)

	cases := []struct {
		name string
		opts []Option
		want int
	}{
		{name: "no predicates keeps all", opts: nil, want: len(records)},
		{name: "empty product set excludes all", opts: []Option{WithProducts(Only())}, want: 0},
		{name: "full seller set keeps all", opts: []Option{WithSellers(Only(sellers...))}, want: len(records)},
		{name: "Brasil region keeps all", opts: []Option{WithRegion("Brasil")}, want: len(records)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewPredicates(tc.opts...)
			if err != nil {
				t.Fatalf("NewPredicates: %v", err)
			}
			if got := Apply(records, p); len(got) != tc.want {
				t.Fatalf("want %d records, got %d", tc.want, len(got))
			}
		})
	}

	if got := Apply(records, nil); len(got) != len(records) {
		t.Fatalf("nil predicates should keep all records, got %d", len(got))
	}
	if got := Apply(nil, nil); got == nil || len(got) != 0 {
		t.Fatalf("empty input should produce an empty, non-nil result")
	}
}

func TestApply_InclusiveBounds(t *testing.T) {
	day := time.Date(2022, time.March, 10, 0, 0, 0, 0, time.UTC)
	rec := models.SalesRecord{
		Price: decimal.RequireFromString("100.00"), Freight: decimal.RequireFromString("10.5"),
		PurchaseDate: day, Rating: 3, Installments: 12, Location: "SP",
	}
	p, err := NewPredicates(
		WithPriceRange(decimal.NewFromInt(100), decimal.NewFromInt(100)),
		WithFreightRange(decimal.RequireFromString("10.5"), decimal.NewFromInt(20)),
		WithDateRange(day, day),
		WithRatingRange(3, 3),
		WithInstallmentsRange(1, 12),
		WithRegion("sudeste"),
		WithYear(2022),
	)
	if err != nil {
		t.Fatalf("NewPredicates: %v", err)
	}
	if !p.Match(rec) {
		t.Fatalf("record on every bound should match")
	}
	rec.Location = "BA"
	if p.Match(rec) {
		t.Fatalf("record outside the selected region should not match")
	}
}

func TestNewPredicates_Validation(t *testing.T) {
	day := time.Date(2022, time.March, 10, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name  string
		opt   Option
		field string
	}{
		{name: "price min > max", opt: WithPriceRange(decimal.NewFromInt(10), decimal.NewFromInt(1)), field: "price"},
		{name: "freight min > max", opt: WithFreightRange(decimal.NewFromInt(10), decimal.NewFromInt(1)), field: "freight"},
		{name: "date start > end", opt: WithDateRange(day, day.AddDate(0, 0, -1)), field: "date"},
		{name: "rating min > max", opt: WithRatingRange(5, 1), field: "rating"},
		{name: "installments min > max", opt: WithInstallmentsRange(24, 1), field: "installments"},
		{name: "unknown region", opt: WithRegion("Atlantida"), field: "region"},
		{name: "bad year", opt: WithYear(0), field: "year"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewPredicates(tc.opt)
			if p != nil || err == nil {
				t.Fatalf("expected validation error, got p=%v err=%v", p, err)
			}
			var ve *apperrors.ValidationError
			if !errors.As(err, &ve) || ve.Field != tc.field {
				t.Fatalf("expected ValidationError on %q, got %v", tc.field, err)
			}
		})
	}
}

func TestRegions(t *testing.T) {
	if got := Regions(); got[0] != AllRegions || len(got) != 6 {
		t.Fatalf("unexpected regions %v", got)
	}
	if got := RegionOf(" rj "); got != "Sudeste" {
		t.Fatalf("RegionOf(rj)=%q", got)
	}
	if got := RegionOf("XX"); got != "" {
		t.Fatalf("RegionOf(XX)=%q", got)
	}
	if region, ok := CanonicalRegion("CENTRO-OESTE"); !ok || region != "Centro-Oeste" {
		t.Fatalf("CanonicalRegion returned %q %v", region, ok)
	}
	if len(stateRegion) != 27 {
		t.Fatalf("expected 27 UF codes, got %d", len(stateRegion))
	}
}
