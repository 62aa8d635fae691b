package ports

import (
	"context"

	"phishguard/internal/domain"
)

// Scorer obtains a verdict from the external scoring service.
type Scorer interface {
	Score(ctx context.Context, url string) (domain.Verdict, error)
}

// Scanner scores a URL and records the result.
type Scanner interface {
	Scan(ctx context.Context, url string) (domain.Verdict, error)
}

// History serves the ledger read and delete paths.
type History interface {
	List(ctx context.Context, page domain.Page) ([]domain.LedgerEntry, error)
	Groups(ctx context.Context, page domain.Page) ([]domain.HistoryGroup, error)
	ForURL(ctx context.Context, url string) ([]domain.LedgerEntry, error)
	Delete(ctx context.Context, id string) error
	DeleteGroup(ctx context.Context, url string) (deleted int, err error)
}

// Stats computes dashboard counters over the ledger.
type Stats interface {
	Compute(ctx context.Context) (domain.Stats, error)
}

// Profiles provides the latest aggregate state for a URL.
type Profiles interface {
	GetLatest(ctx context.Context, url string) (domain.AggregateRecord, error)
}
