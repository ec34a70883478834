package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/guttosm/salespulse/internal/export"
	"github.com/guttosm/salespulse/internal/filter"
	"github.com/guttosm/salespulse/internal/logger"
	"github.com/guttosm/salespulse/internal/service"
	"golang.org/x/sync/errgroup"
)

// exportFormats are written side by side by runExport.
var exportFormats = []export.Format{export.FormatCSV, export.FormatXLSX}

// runExport loads one region/year slice and writes tabela.csv and tabela.xlsx
// into dir. Both files are encoded concurrently; the first failure cancels the
// other and no file is left half written.
//
// Parameters:
//   - svc: dashboard service used to fetch and decode the products API.
//   - region, year: upstream selection; "" and 0 mean all.
//   - columns: column subset, every column when empty.
//   - dir: output directory, created if missing.
//
// Returns:
//   - the paths written, in exportFormats order.
func runExport(ctx context.Context, svc service.DashboardService, region string, year int, columns []string, dir string) ([]string, error) {
	opts := []filter.Option{filter.WithRegion(region)}
	if year != 0 {
		opts = append(opts, filter.WithYear(year))
	}
	p, err := filter.NewPredicates(opts...)
	if err != nil {
		return nil, err
	}
	cols, err := export.ParseColumns(columns)
	if err != nil {
		return nil, err
	}

	ds, err := svc.Load(ctx, p.Region(), year)
	if err != nil {
		return nil, err
	}
	table := export.NewTable(filter.Apply(ds.Records, p), cols)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	paths := make([]string, len(exportFormats))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range exportFormats {
		g.Go(func() error {
			b, err := export.Encode(f, table)
			if err != nil {
				return err
			}
			if err := gctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(dir, f.FileName())
			if err := writeFileAtomic(path, b); err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log := logger.With("export")
	log.Info().
		Str("load_id", ds.LoadID).
		Int("rows", table.RowCount()).
		Int("columns", table.ColumnCount()).
		Int("malformed", ds.Report.Malformed).
		Strs("files", paths).
		Msg("export written")
	return paths, nil
}

// writeFileAtomic writes b next to path and renames it into place.
func writeFileAtomic(path string, b []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
