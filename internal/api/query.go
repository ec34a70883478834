package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/salespulse/internal/domain/apperrors"
	"github.com/guttosm/salespulse/internal/filter"
	"github.com/shopspring/decimal"
)

const queryDateLayout = "2006-01-02"

// parsePredicates builds a filter.Predicates from the query string.
//
// Multi-valued parameters are repeated (products=a&products=b). A parameter
// present with only blank values selects nothing; an absent one does not
// filter. Ranges need both bounds.
func parsePredicates(c *gin.Context) (*filter.Predicates, error) {
	var opts []filter.Option

	if region, ok := c.GetQuery("region"); ok {
		opts = append(opts, filter.WithRegion(region))
	}
	if s, ok := c.GetQuery("year"); ok && strings.TrimSpace(s) != "" {
		year, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, apperrors.Validationf("year", "%q is not a number", s)
		}
		opts = append(opts, filter.WithYear(year))
	}

	sets := []struct {
		param string
		with  func(filter.StringSet) filter.Option
	}{
		{"products", filter.WithProducts},
		{"categories", filter.WithCategories},
		{"sellers", filter.WithSellers},
		{"locations", filter.WithLocations},
		{"payment_types", filter.WithPaymentTypes},
	}
	for _, s := range sets {
		if values, ok := queryList(c, s.param); ok {
			opts = append(opts, s.with(filter.Only(values...)))
		}
	}

	price, err := decimalPair(c, "price")
	if err != nil {
		return nil, err
	}
	if price != nil {
		opts = append(opts, filter.WithPriceRange(price[0], price[1]))
	}
	freight, err := decimalPair(c, "freight")
	if err != nil {
		return nil, err
	}
	if freight != nil {
		opts = append(opts, filter.WithFreightRange(freight[0], freight[1]))
	}

	start, end, ok := queryPair(c, "date_start", "date_end")
	if ok {
		from, err := time.Parse(queryDateLayout, start)
		if err != nil {
			return nil, apperrors.Validationf("date", "date_start %q is not YYYY-MM-DD", start)
		}
		to, err := time.Parse(queryDateLayout, end)
		if err != nil {
			return nil, apperrors.Validationf("date", "date_end %q is not YYYY-MM-DD", end)
		}
		opts = append(opts, filter.WithDateRange(from, to))
	} else if start != "" || end != "" {
		return nil, apperrors.Validationf("date", "date_start and date_end are both required")
	}

	rating, err := intPair(c, "rating")
	if err != nil {
		return nil, err
	}
	if rating != nil {
		opts = append(opts, filter.WithRatingRange(rating[0], rating[1]))
	}
	installments, err := intPair(c, "installments")
	if err != nil {
		return nil, err
	}
	if installments != nil {
		opts = append(opts, filter.WithInstallmentsRange(installments[0], installments[1]))
	}

	return filter.NewPredicates(opts...)
}

// queryList returns the non-blank values of a repeated parameter and whether
// the parameter was present at all.
func queryList(c *gin.Context, name string) ([]string, bool) {
	raw, ok := c.GetQueryArray(name)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out, true
}

// queryPair reads two bound parameters; ok is true only when both are set.
func queryPair(c *gin.Context, minKey, maxKey string) (lo, hi string, ok bool) {
	lo = strings.TrimSpace(c.Query(minKey))
	hi = strings.TrimSpace(c.Query(maxKey))
	return lo, hi, lo != "" && hi != ""
}

func decimalPair(c *gin.Context, field string) (*[2]decimal.Decimal, error) {
	lo, hi, ok := queryPair(c, field+"_min", field+"_max")
	if !ok {
		if lo != "" || hi != "" {
			return nil, apperrors.Validationf(field, "%s_min and %s_max are both required", field, field)
		}
		return nil, nil
	}
	min, err := decimal.NewFromString(lo)
	if err != nil {
		return nil, apperrors.Validationf(field, "%s_min %q is not a number", field, lo)
	}
	max, err := decimal.NewFromString(hi)
	if err != nil {
		return nil, apperrors.Validationf(field, "%s_max %q is not a number", field, hi)
	}
	return &[2]decimal.Decimal{min, max}, nil
}

func intPair(c *gin.Context, field string) (*[2]int, error) {
	lo, hi, ok := queryPair(c, field+"_min", field+"_max")
	if !ok {
		if lo != "" || hi != "" {
			return nil, apperrors.Validationf(field, "%s_min and %s_max are both required", field, field)
		}
		return nil, nil
	}
	min, err := strconv.Atoi(lo)
	if err != nil {
		return nil, apperrors.Validationf(field, "%s_min %q is not an integer", field, lo)
	}
	max, err := strconv.Atoi(hi)
	if err != nil {
		return nil, apperrors.Validationf(field, "%s_max %q is not an integer", field, hi)
	}
	return &[2]int{min, max}, nil
}

// queryInt parses an optional integer parameter. present reports whether the
// parameter was given; def is returned only when it was not.
func queryInt(c *gin.Context, name string, def int) (n int, present bool, err error) {
	s := strings.TrimSpace(c.Query(name))
	if s == "" {
		return def, false, nil
	}
	n, err = strconv.Atoi(s)
	if err != nil {
		return 0, true, apperrors.Validationf(name, "%q is not an integer", s)
	}
	return n, true, nil
}
