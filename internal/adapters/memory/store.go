// Package memory keeps the ledger and aggregates in process memory.
// It backs local runs without DATABASE_URL and the service tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"phishguard/internal/domain"
)

// Store implements ports.LedgerRepository and ports.AggregateRepository.
type Store struct {
	mu         sync.RWMutex
	ledger     []domain.LedgerEntry // insertion order
	aggregates map[string]*domain.AggregateRecord
}

func New() *Store {
	return &Store{aggregates: make(map[string]*domain.AggregateRecord)}
}

// Ledger

func (s *Store) AppendEntry(_ context.Context, entry domain.LedgerEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.Verdict.RiskReasons = cloneStrings(entry.Verdict.RiskReasons)
	s.ledger = append(s.ledger, entry)
	return nil
}

func (s *Store) ListEntries(_ context.Context, page domain.Page) ([]domain.LedgerEntry, error) {
	s.mu.RLock()
	out := newestFirst(s.ledger, func(domain.LedgerEntry) bool { return true })
	s.mu.RUnlock()
	start, end := page.Apply(len(out))
	return out[start:end], nil
}

func (s *Store) ListEntriesByURL(_ context.Context, url string) ([]domain.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(s.ledger, func(e domain.LedgerEntry) bool {
		return strings.EqualFold(e.Verdict.URL, url)
	}), nil
}

func (s *Store) ListEntriesOldestFirst(_ context.Context) ([]domain.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.LedgerEntry, len(s.ledger))
	copy(out, s.ledger)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (s *Store) DeleteEntry(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.ledger {
		if e.ID == id {
			s.ledger = append(s.ledger[:i], s.ledger[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) SummarizeEntries(_ context.Context) (domain.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out domain.Stats
	var sum float64
	for _, e := range s.ledger {
		switch e.Verdict.Status {
		case domain.StatusPhishing:
			out.Phishing++
		case domain.StatusSuspicious:
			out.Suspicious++
		case domain.StatusSafe:
			out.Safe++
		}
		sum += e.Verdict.ResponseTime
	}
	out.Total = len(s.ledger)
	if out.Total > 0 {
		out.AvgResponseTime = sum / float64(out.Total)
	}
	return out, nil
}

// Aggregates

// UpsertAggregate runs find-or-create under the write lock, so concurrent scans of
// one key never produce two records.
func (s *Store) UpsertAggregate(_ context.Context, id string, v domain.Verdict, at time.Time) (domain.AggregateRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.URLKey(v.URL)
	v.RiskReasons = cloneStrings(v.RiskReasons)
	rec, ok := s.aggregates[key]
	if !ok {
		rec = &domain.AggregateRecord{
			ID:          id,
			URLKey:      key,
			Latest:      v,
			ScanCount:   1,
			FirstSeen:   at,
			LastScanned: at,
		}
		s.aggregates[key] = rec
		return *rec, nil
	}
	firstURL := rec.Latest.URL
	rec.Latest = v
	rec.Latest.URL = firstURL
	rec.ScanCount++
	rec.LastScanned = at
	return *rec, nil
}

func (s *Store) GetAggregateByURL(_ context.Context, url string) (domain.AggregateRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.aggregates[domain.URLKey(url)]
	if !ok {
		return domain.AggregateRecord{}, false, nil
	}
	return *rec, true, nil
}

func (s *Store) ListAggregates(_ context.Context) ([]domain.AggregateRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.AggregateRecord, 0, len(s.aggregates))
	for _, rec := range s.aggregates {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].URLKey < out[j].URLKey })
	return out, nil
}

func (s *Store) DeleteAggregate(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, rec := range s.aggregates {
		if rec.ID == id {
			delete(s.aggregates, key)
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) ReplaceAggregates(_ context.Context, recs []domain.AggregateRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.aggregates = make(map[string]*domain.AggregateRecord, len(recs))
	for i := range recs {
		rec := recs[i]
		s.aggregates[rec.URLKey] = &rec
	}
	return nil
}

func newestFirst(entries []domain.LedgerEntry, keep func(domain.LedgerEntry) bool) []domain.LedgerEntry {
	out := make([]domain.LedgerEntry, 0, len(entries))
	// walk backwards so equal timestamps come out latest-inserted first
	for i := len(entries) - 1; i >= 0; i-- {
		if keep(entries[i]) {
			out = append(out, entries[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
