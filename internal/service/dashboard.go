package service

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/salespulse/internal/domain/models"
	"github.com/guttosm/salespulse/internal/export"
	"github.com/guttosm/salespulse/internal/filter"
	"github.com/guttosm/salespulse/internal/logger"
	"github.com/guttosm/salespulse/internal/storage"
	"github.com/shopspring/decimal"
)

// Source fetches sales records from the products API.
type Source interface {
	Fetch(ctx context.Context, region string, year int) ([]models.SalesRecord, models.ParseReport, error)
	URL() string
}

// Dataset is the decoded result of one load.
type Dataset struct {
	LoadID  string
	Records []models.SalesRecord
	Report  models.ParseReport
}

// Dashboard is a recomputed Result plus the report of the load it came from.
type Dashboard struct {
	Result
	Report models.ParseReport `json:"parse_report"`
}

// TableView is the filtered table page.
type TableView struct {
	Table  export.Table
	Report models.ParseReport
}

// Bounds are the min and max of one range dimension over the loaded data.
type Bounds[T any] struct {
	Min T `json:"min"`
	Max T `json:"max"`
}

// FilterOptions lists the choices the table page offers for each predicate.
type FilterOptions struct {
	Regions      []string                `json:"regions"`
	Products     []string                `json:"products"`
	Categories   []string                `json:"categories"`
	Sellers      []string                `json:"sellers"`
	Locations    []string                `json:"locations"`
	PaymentTypes []string                `json:"payment_types"`
	Columns      []string                `json:"columns"`
	Price        Bounds[decimal.Decimal] `json:"price"`
	Freight      Bounds[decimal.Decimal] `json:"freight"`
	Date         Bounds[string]          `json:"date"`
	Rating       Bounds[int]             `json:"rating"`
	Installments Bounds[int]             `json:"installments"`
}

// DashboardService defines business logic behind the HTTP API.
type DashboardService interface {
	Load(ctx context.Context, region string, year int) (Dataset, error)
	Dashboard(ctx context.Context, p *filter.Predicates, opts Options) (Dashboard, error)
	Table(ctx context.Context, p *filter.Predicates, columns []string) (TableView, error)
	Export(ctx context.Context, p *filter.Predicates, columns []string, f export.Format) ([]byte, error)
	InvalidateExports()
	Filters(ctx context.Context) (FilterOptions, error)
	Loads(ctx context.Context, limit int) ([]models.LoadLog, error)
}

type dashboardService struct {
	source Source
	repo   storage.LoadRepository
	cache  *export.Cache
	now    func() time.Time
}

func NewDashboardService(source Source, repo storage.LoadRepository, cache *export.Cache) DashboardService {
	if repo == nil {
		repo = storage.NewNoopRepository()
	}
	if cache == nil {
		cache = export.NewCache(export.DefaultCacheEntries)
	}
	return &dashboardService{source: source, repo: repo, cache: cache, now: time.Now}
}

// Load fetches one region/year slice and records the attempt in the load log.
// Load-log and snapshot failures are logged and never fail the load.
func (s *dashboardService) Load(ctx context.Context, region string, year int) (Dataset, error) {
	log := logger.With("service")
	start := s.now()
	id := uuid.NewString()

	records, report, err := s.source.Fetch(ctx, region, year)

	entry := models.LoadLog{
		ID:         id,
		Region:     region,
		Year:       year,
		URL:        s.source.URL(),
		Status:     models.LoadSucceeded,
		Total:      report.Total,
		Accepted:   report.Accepted,
		Malformed:  report.Malformed,
		DurationMs: s.now().Sub(start).Milliseconds(),
		FetchedAt:  storage.FetchedAt(start),
	}
	if err != nil {
		entry.Status = models.LoadFailed
		entry.Error = err.Error()
	}
	// The request context may already be done; the log entry still gets written.
	bg := context.WithoutCancel(ctx)
	if lerr := s.repo.InsertLoadLog(bg, entry); lerr != nil {
		log.Warn().Str("load_id", id).Err(lerr).Msg("load log insert failed")
	} else if err == nil {
		if serr := s.repo.SaveSnapshot(bg, id, records); serr != nil {
			log.Warn().Str("load_id", id).Err(serr).Msg("snapshot save failed")
		}
	}

	if err != nil {
		return Dataset{}, err
	}
	return Dataset{LoadID: id, Records: records, Report: report}, nil
}

func (s *dashboardService) load(ctx context.Context, p *filter.Predicates) (Dataset, error) {
	year, _ := p.Year()
	return s.Load(ctx, p.Region(), year)
}

func (s *dashboardService) Dashboard(ctx context.Context, p *filter.Predicates, opts Options) (Dashboard, error) {
	if _, err := ResolveTopSellers(opts.TopSellers); err != nil {
		return Dashboard{}, err
	}
	ds, err := s.load(ctx, p)
	if err != nil {
		return Dashboard{}, err
	}
	res, err := Recompute(ds.Records, p, opts)
	if err != nil {
		return Dashboard{}, err
	}
	return Dashboard{Result: res, Report: ds.Report}, nil
}

func (s *dashboardService) Table(ctx context.Context, p *filter.Predicates, columns []string) (TableView, error) {
	cols, err := export.ParseColumns(columns)
	if err != nil {
		return TableView{}, err
	}
	ds, err := s.load(ctx, p)
	if err != nil {
		return TableView{}, err
	}
	return TableView{Table: export.NewTable(filter.Apply(ds.Records, p), cols), Report: ds.Report}, nil
}

func (s *dashboardService) Export(ctx context.Context, p *filter.Predicates, columns []string, f export.Format) ([]byte, error) {
	view, err := s.Table(ctx, p, columns)
	if err != nil {
		return nil, err
	}
	log := logger.With("service")
	start := s.now()
	b, err := s.cache.Get(f, view.Table)
	if err != nil {
		log.Error().Str("format", string(f)).Err(err).Msg("export failed")
		return nil, err
	}
	log.Info().
		Str("format", string(f)).
		Int("rows", view.Table.RowCount()).
		Int("bytes", len(b)).
		Dur("elapsed", s.now().Sub(start)).
		Msg("export done")
	return b, nil
}

func (s *dashboardService) InvalidateExports() { s.cache.Invalidate() }

// Filters loads every region and year and derives the option lists from it.
func (s *dashboardService) Filters(ctx context.Context) (FilterOptions, error) {
	ds, err := s.Load(ctx, "", 0)
	if err != nil {
		return FilterOptions{}, err
	}
	return BuildFilterOptions(ds.Records), nil
}

func (s *dashboardService) Loads(ctx context.Context, limit int) ([]models.LoadLog, error) {
	return s.repo.RecentLoads(ctx, limit)
}

// BuildFilterOptions collects sorted distinct values and bounds of records.
// Bounds are zero values when records is empty.
func BuildFilterOptions(records []models.SalesRecord) FilterOptions {
	opts := FilterOptions{
		Regions: filter.Regions(),
		Columns: export.ColumnNames(),
		Price:   Bounds[decimal.Decimal]{Min: decimal.Zero, Max: decimal.Zero},
		Freight: Bounds[decimal.Decimal]{Min: decimal.Zero, Max: decimal.Zero},
	}
	products := map[string]struct{}{}
	categories := map[string]struct{}{}
	sellers := map[string]struct{}{}
	locations := map[string]struct{}{}
	payments := map[string]struct{}{}

	var minDate, maxDate time.Time
	for i, r := range records {
		products[r.Product] = struct{}{}
		categories[r.Category] = struct{}{}
		sellers[r.Seller] = struct{}{}
		locations[r.Location] = struct{}{}
		payments[r.PaymentType] = struct{}{}

		if i == 0 {
			opts.Price = Bounds[decimal.Decimal]{Min: r.Price, Max: r.Price}
			opts.Freight = Bounds[decimal.Decimal]{Min: r.Freight, Max: r.Freight}
			opts.Rating = Bounds[int]{Min: r.Rating, Max: r.Rating}
			opts.Installments = Bounds[int]{Min: r.Installments, Max: r.Installments}
			minDate, maxDate = r.PurchaseDate, r.PurchaseDate
			continue
		}
		opts.Price.Min = decimal.Min(opts.Price.Min, r.Price)
		opts.Price.Max = decimal.Max(opts.Price.Max, r.Price)
		opts.Freight.Min = decimal.Min(opts.Freight.Min, r.Freight)
		opts.Freight.Max = decimal.Max(opts.Freight.Max, r.Freight)
		opts.Rating.Min = min(opts.Rating.Min, r.Rating)
		opts.Rating.Max = max(opts.Rating.Max, r.Rating)
		opts.Installments.Min = min(opts.Installments.Min, r.Installments)
		opts.Installments.Max = max(opts.Installments.Max, r.Installments)
		if r.PurchaseDate.Before(minDate) {
			minDate = r.PurchaseDate
		}
		if r.PurchaseDate.After(maxDate) {
			maxDate = r.PurchaseDate
		}
	}
	if len(records) > 0 {
		opts.Date = Bounds[string]{Min: minDate.Format(export.DateLayout), Max: maxDate.Format(export.DateLayout)}
	}

	opts.Products = sortedKeys(products)
	opts.Categories = sortedKeys(categories)
	opts.Sellers = sortedKeys(sellers)
	opts.Locations = sortedKeys(locations)
	opts.PaymentTypes = sortedKeys(payments)
	return opts
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
