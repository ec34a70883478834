package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/guttosm/salespulse/internal/domain/models"
	pq "github.com/lib/pq"
)

// LoadRepository defines contract for DB operations.
type LoadRepository interface {
	InsertLoadLog(ctx context.Context, entry models.LoadLog) error
	RecentLoads(ctx context.Context, limit int) ([]models.LoadLog, error)
	SaveSnapshot(ctx context.Context, loadID string, records []models.SalesRecord) error
}

type loadRepository struct {
	db *sql.DB
}

func NewLoadRepository(db *sql.DB) LoadRepository {
	return &loadRepository{db: db}
}

// InsertLoadLog records one fetch of the products API.
func (r *loadRepository) InsertLoadLog(ctx context.Context, e models.LoadLog) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO load_log (id, region, year, url, status, error, total, accepted, malformed, duration_ms, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, e.ID, e.Region, nullYear(e.Year), e.URL, e.Status, e.Error, e.Total, e.Accepted, e.Malformed, e.DurationMs, e.FetchedAt)
	return err
}

// RecentLoads returns up to limit entries, newest first.
func (r *loadRepository) RecentLoads(ctx context.Context, limit int) ([]models.LoadLog, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, region, year, url, status, error, total, accepted, malformed, duration_ms, fetched_at
		FROM load_log
		ORDER BY fetched_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []models.LoadLog{}
	for rows.Next() {
		var (
			e    models.LoadLog
			year sql.NullInt64
		)
		if err := rows.Scan(&e.ID, &e.Region, &year, &e.URL, &e.Status, &e.Error,
			&e.Total, &e.Accepted, &e.Malformed, &e.DurationMs, &e.FetchedAt); err != nil {
			return nil, err
		}
		if year.Valid {
			e.Year = int(year.Int64)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// SaveSnapshot copies the accepted records of a load into sales_snapshot in a
// single transaction.
func (r *loadRepository) SaveSnapshot(ctx context.Context, loadID string, records []models.SalesRecord) error {
	if len(records) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	// Small optimization for bulk load
	if _, err := tx.ExecContext(ctx, `SET LOCAL synchronous_commit = OFF`); err != nil {
		_ = tx.Rollback()
		return err
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(
		"sales_snapshot",
		"load_id",
		"product",
		"category",
		"price",
		"freight",
		"purchase_date",
		"seller",
		"location",
		"lat",
		"lon",
		"rating",
		"payment_type",
		"installments",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx,
			loadID,
			rec.Product,
			rec.Category,
			rec.Price,
			rec.Freight,
			rec.PurchaseDate,
			rec.Seller,
			rec.Location,
			rec.Lat,
			rec.Lon,
			rec.Rating,
			rec.PaymentType,
			rec.Installments,
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func nullYear(y int) interface{} {
	if y <= 0 {
		return nil
	}
	return y
}

// noopRepository is used when PostgreSQL is disabled.
type noopRepository struct{}

// NewNoopRepository returns a LoadRepository that stores nothing.
func NewNoopRepository() LoadRepository { return noopRepository{} }

func (noopRepository) InsertLoadLog(context.Context, models.LoadLog) error { return nil }
func (noopRepository) RecentLoads(context.Context, int) ([]models.LoadLog, error) {
	return []models.LoadLog{}, nil
}
func (noopRepository) SaveSnapshot(context.Context, string, []models.SalesRecord) error { return nil }

// FetchedAt normalizes a timestamp for storage.
func FetchedAt(t time.Time) time.Time { return t.UTC().Truncate(time.Microsecond) }
