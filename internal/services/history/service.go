package history

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"phishguard/internal/domain"
	"phishguard/internal/ports"
)

type Service struct {
	ledger     ports.LedgerRepository
	aggregates ports.AggregateRepository
}

func New(ledger ports.LedgerRepository, aggregates ports.AggregateRepository) *Service {
	return &Service{ledger: ledger, aggregates: aggregates}
}

func (s *Service) List(ctx context.Context, page domain.Page) ([]domain.LedgerEntry, error) {
	return s.ledger.ListEntries(ctx, page)
}

// Groups buckets ledger entries by their exact URL string. Unlike aggregate
// lookups this is case-sensitive: "HTTP://A.com" and "http://a.com" are two
// groups. The page applies to groups, not entries.
func (s *Service) Groups(ctx context.Context, page domain.Page) ([]domain.HistoryGroup, error) {
	entries, err := s.ledger.ListEntries(ctx, domain.Page{})
	if err != nil {
		return nil, err
	}
	groups := GroupByURL(entries)
	start, end := page.Apply(len(groups))
	return groups[start:end], nil
}

// GroupByURL expects entries newest first and keeps that order within each
// group; groups are ordered by their newest entry.
func GroupByURL(entries []domain.LedgerEntry) []domain.HistoryGroup {
	index := make(map[string]int)
	var groups []domain.HistoryGroup
	for _, e := range entries {
		i, ok := index[e.Verdict.URL]
		if !ok {
			i = len(groups)
			index[e.Verdict.URL] = i
			groups = append(groups, domain.HistoryGroup{URL: e.Verdict.URL, Domain: e.Domain})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}

// ForURL returns ledger entries matching the URL case-insensitively.
func (s *Service) ForURL(ctx context.Context, url string) ([]domain.LedgerEntry, error) {
	return s.ledger.ListEntriesByURL(ctx, url)
}

// Delete removes a ledger entry by id, falling back to an aggregate with that
// id. Deleting one never touches the other store.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("history item %q: %w", id, domain.ErrNotFound)
	}
	deleted, err := s.ledger.DeleteEntry(ctx, id)
	if err != nil {
		return fmt.Errorf("delete ledger entry: %w", err)
	}
	if !deleted {
		deleted, err = s.aggregates.DeleteAggregate(ctx, id)
		if err != nil {
			return fmt.Errorf("delete aggregate: %w", err)
		}
	}
	if !deleted {
		return fmt.Errorf("history item %q: %w", id, domain.ErrNotFound)
	}
	log.Printf("history item deleted: %s", id)
	return nil
}

// DeleteGroup deletes every entry of the exact-URL group one at a time. A
// failure part way through leaves the earlier deletes in place; all failures
// are joined into the returned error.
func (s *Service) DeleteGroup(ctx context.Context, url string) (int, error) {
	entries, err := s.ledger.ListEntriesByURL(ctx, url)
	if err != nil {
		return 0, err
	}
	var errs []error
	deleted, matched := 0, 0
	for _, e := range entries {
		if e.Verdict.URL != url {
			continue
		}
		matched++
		if err := s.Delete(ctx, e.ID); err != nil {
			log.Printf("group delete %s: entry %s: %v", url, e.ID, err)
			errs = append(errs, err)
			continue
		}
		deleted++
	}
	if matched == 0 {
		return 0, fmt.Errorf("history group %q: %w", url, domain.ErrNotFound)
	}
	return deleted, errors.Join(errs...)
}
