package ports

import (
	"context"
	"time"

	"phishguard/internal/domain"
)

// LedgerRepository stores every completed scan. Entries are never updated.
type LedgerRepository interface {
	AppendEntry(ctx context.Context, entry domain.LedgerEntry) error
	// ListEntries returns entries newest first, ties broken by latest insert.
	ListEntries(ctx context.Context, page domain.Page) ([]domain.LedgerEntry, error)
	// ListEntriesByURL matches the URL case-insensitively, newest first.
	ListEntriesByURL(ctx context.Context, url string) ([]domain.LedgerEntry, error)
	ListEntriesOldestFirst(ctx context.Context) ([]domain.LedgerEntry, error)
	DeleteEntry(ctx context.Context, id string) (deleted bool, err error)
	// SummarizeEntries counts entries per status and averages response time
	// over one consistent read of the ledger.
	SummarizeEntries(ctx context.Context) (domain.Stats, error)
}

// AggregateRepository keeps one latest-state row per case-insensitive URL key.
type AggregateRepository interface {
	// UpsertAggregate creates the record with scan count 1 or bumps the
	// existing one, atomically per key. id is used only on create.
	UpsertAggregate(ctx context.Context, id string, v domain.Verdict, at time.Time) (domain.AggregateRecord, error)
	GetAggregateByURL(ctx context.Context, url string) (rec domain.AggregateRecord, found bool, err error)
	ListAggregates(ctx context.Context) ([]domain.AggregateRecord, error)
	DeleteAggregate(ctx context.Context, id string) (deleted bool, err error)
	ReplaceAggregates(ctx context.Context, recs []domain.AggregateRecord) error
}
