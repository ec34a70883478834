package app

import (
	"database/sql"
	"fmt"

	"github.com/guttosm/salespulse/config"

	_ "github.com/lib/pq" // PostgreSQL driver for database/sql
)

// sqlOpener is swapped in tests to avoid a real driver.
var sqlOpener = sql.Open

// InitPostgres opens the load log database when POSTGRES_ENABLED is set.
// NewService only calls it in that case; with storage disabled loads go to
// the noop repository and no pool is created. The pool is kept small since
// each load writes one log row and one snapshot copy.
func InitPostgres(cfg config.Config) (*sql.DB, error) {
	db, err := sqlOpener("postgres", cfg.Postgres.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)

	return db, nil
}

// postgresOpener is used by NewService and replaced in tests.
var postgresOpener = InitPostgres
