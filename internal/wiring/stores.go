// Package wiring opens the persistence backends shared by the server and the CLI.
package wiring

import (
	"context"
	"fmt"
	"log"

	"phishguard/internal/adapters/memory"
	pg "phishguard/internal/adapters/postgres"
	"phishguard/internal/ports"
)

// Stores bundles both repositories with the function that releases them.
type Stores struct {
	Ledger     ports.LedgerRepository
	Aggregates ports.AggregateRepository
	Close      func()
	// DB is nil when running on the in-memory store.
	DB *pg.DB
}

// Open connects to Postgres when databaseURL is set, migrating first if asked,
// and otherwise falls back to a process-local memory store.
func Open(ctx context.Context, databaseURL string, migrate bool) (Stores, error) {
	if databaseURL == "" {
		log.Printf("DATABASE_URL not set; using in-memory store (data is lost on exit)")
		store := memory.New()
		return Stores{Ledger: store, Aggregates: store, Close: func() {}}, nil
	}
	db, err := pg.Connect(ctx, databaseURL)
	if err != nil {
		return Stores{}, fmt.Errorf("db connect: %w", err)
	}
	if migrate {
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return Stores{}, err
		}
	}
	var _ ports.LedgerRepository = db
	var _ ports.AggregateRepository = db
	return Stores{Ledger: db, Aggregates: db, Close: db.Close, DB: db}, nil
}
