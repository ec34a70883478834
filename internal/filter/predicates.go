package filter

import (
	"cmp"
	"time"

	"github.com/guttosm/salespulse/internal/domain/apperrors"
	"github.com/shopspring/decimal"
)

// StringSet is the selection of a multi-valued dimension.
//
// The zero value is "no filter". A set built with Only and no values is active
// and empty, so it matches nothing.
type StringSet struct {
	active bool
	values map[string]struct{}
}

// Only returns an active set containing exactly the given values.
func Only(values ...string) StringSet {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return StringSet{active: true, values: m}
}

// Active reports whether the set restricts anything.
func (s StringSet) Active() bool { return s.active }

// Contains reports whether v is selected; an inactive set selects everything.
func (s StringSet) Contains(v string) bool {
	if !s.active {
		return true
	}
	_, ok := s.values[v]
	return ok
}

// Range is an inclusive [Min, Max] interval over an ordered type.
// The zero value is inactive and contains everything.
type Range[T cmp.Ordered] struct {
	Min, Max T
	active   bool
}

// Active reports whether bounds were set.
func (r Range[T]) Active() bool { return r.active }

// Contains reports whether v lies within [Min, Max].
func (r Range[T]) Contains(v T) bool {
	return !r.active || (v >= r.Min && v <= r.Max)
}

// DecimalRange is an inclusive interval of currency values.
type DecimalRange struct {
	Min, Max decimal.Decimal
	active   bool
}

// Active reports whether bounds were set.
func (r DecimalRange) Active() bool { return r.active }

// Contains reports whether v lies within [Min, Max].
func (r DecimalRange) Contains(v decimal.Decimal) bool {
	return !r.active || (v.GreaterThanOrEqual(r.Min) && v.LessThanOrEqual(r.Max))
}

// DateRange is an inclusive interval of calendar days (UTC).
type DateRange struct {
	Start, End time.Time
	active     bool
}

// Active reports whether bounds were set.
func (r DateRange) Active() bool { return r.active }

// Contains reports whether the calendar day of d lies within [Start, End].
func (r DateRange) Contains(d time.Time) bool {
	if !r.active {
		return true
	}
	d = truncateDay(d)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Predicates is the complete set of active filter criteria.
// Build it with NewPredicates; the zero value retains every record.
type Predicates struct {
	region       string
	year         int
	hasYear      bool
	products     StringSet
	categories   StringSet
	sellers      StringSet
	locations    StringSet
	paymentTypes StringSet
	price        DecimalRange
	freight      DecimalRange
	dates        DateRange
	rating       Range[int]
	installments Range[int]
}

// Option configures one dimension of a Predicates value.
type Option func(*Predicates) error

// NewPredicates applies opts in order. The first invalid option aborts
// construction with a *apperrors.ValidationError.
func NewPredicates(opts ...Option) (*Predicates, error) {
	p := &Predicates{}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// WithRegion selects a macro-region; "" or "Brasil" clears the filter.
func WithRegion(name string) Option {
	return func(p *Predicates) error {
		region, ok := CanonicalRegion(name)
		if !ok {
			return apperrors.Validationf("region", "unknown region %q", name)
		}
		p.region = region
		return nil
	}
}

// WithYear keeps purchases made in year.
func WithYear(year int) Option {
	return func(p *Predicates) error {
		if year < 1 {
			return apperrors.Validationf("year", "must be positive, got %d", year)
		}
		p.year, p.hasYear = year, true
		return nil
	}
}

// WithProducts restricts product names to s.
func WithProducts(s StringSet) Option { return func(p *Predicates) error { p.products = s; return nil } }

// WithCategories restricts product categories to s.
func WithCategories(s StringSet) Option { return func(p *Predicates) error { p.categories = s; return nil } }

// WithSellers restricts sellers to s.
func WithSellers(s StringSet) Option { return func(p *Predicates) error { p.sellers = s; return nil } }

// WithLocations restricts purchase states to s.
func WithLocations(s StringSet) Option { return func(p *Predicates) error { p.locations = s; return nil } }

// WithPaymentTypes restricts payment types to s.
func WithPaymentTypes(s StringSet) Option { return func(p *Predicates) error { p.paymentTypes = s; return nil } }

// WithPriceRange keeps prices within [min, max].
func WithPriceRange(min, max decimal.Decimal) Option {
	return func(p *Predicates) error {
		r, err := decimalRange("price", min, max)
		p.price = r
		return err
	}
}

// WithFreightRange keeps freight within [min, max].
func WithFreightRange(min, max decimal.Decimal) Option {
	return func(p *Predicates) error {
		r, err := decimalRange("freight", min, max)
		p.freight = r
		return err
	}
}

// WithDateRange keeps purchases on calendar days within [start, end].
func WithDateRange(start, end time.Time) Option {
	return func(p *Predicates) error {
		start, end = truncateDay(start), truncateDay(end)
		if start.After(end) {
			return apperrors.Validationf("date", "start %s after end %s", start.Format(time.DateOnly), end.Format(time.DateOnly))
		}
		p.dates = DateRange{Start: start, End: end, active: true}
		return nil
	}
}

// WithRatingRange keeps ratings within [min, max].
func WithRatingRange(min, max int) Option {
	return func(p *Predicates) error {
		r, err := intRange("rating", min, max)
		p.rating = r
		return err
	}
}

// WithInstallmentsRange keeps installment counts within [min, max].
func WithInstallmentsRange(min, max int) Option {
	return func(p *Predicates) error {
		r, err := intRange("installments", min, max)
		p.installments = r
		return err
	}
}

// Region returns the selected macro-region, "" when unfiltered.
func (p *Predicates) Region() string {
	if p == nil {
		return ""
	}
	return p.region
}

// Year returns the selected year and whether one is set.
func (p *Predicates) Year() (int, bool) {
	if p == nil {
		return 0, false
	}
	return p.year, p.hasYear
}

func decimalRange(field string, min, max decimal.Decimal) (DecimalRange, error) {
	if min.GreaterThan(max) {
		return DecimalRange{}, apperrors.Validationf(field, "min %s greater than max %s", min, max)
	}
	return DecimalRange{Min: min, Max: max, active: true}, nil
}

func intRange(field string, min, max int) (Range[int], error) {
	if min > max {
		return Range[int]{}, apperrors.Validationf(field, "min %d greater than max %d", min, max)
	}
	return Range[int]{Min: min, Max: max, active: true}, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
