package scanner

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"

	"phishguard/internal/domain"
	"phishguard/internal/ports"
)

// bookkeepingTimeout bounds each ledger/aggregate write. Writes run detached
// from the request context so a client hang-up can't cut them short.
const bookkeepingTimeout = 5 * time.Second

type Service struct {
	scorer     ports.Scorer
	ledger     ports.LedgerRepository
	aggregates ports.AggregateRepository
	now        func() time.Time
	newID      func() string
}

type Option func(*Service)

// WithClock overrides time.Now, mostly for tests.
func WithClock(now func() time.Time) Option { return func(s *Service) { s.now = now } }

func New(scorer ports.Scorer, ledger ports.LedgerRepository, aggregates ports.AggregateRepository, opts ...Option) *Service {
	s := &Service{
		scorer:     scorer,
		ledger:     ledger,
		aggregates: aggregates,
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordOutcome carries the verdict back unchanged plus the result of each
// bookkeeping write. A nil error means that store was updated.
type RecordOutcome struct {
	Verdict      domain.Verdict
	Entry        domain.LedgerEntry
	LedgerErr    error
	AggregateErr error
}

// Consistent reports whether both stores took the write.
func (o RecordOutcome) Consistent() bool { return o.LedgerErr == nil && o.AggregateErr == nil }

// Scan validates the URL, asks the scorer for a verdict and records it.
// A scorer failure is returned as-is and nothing is written.
func (s *Service) Scan(ctx context.Context, rawurl string) (domain.Verdict, error) {
	rawurl = strings.TrimSpace(rawurl)
	if rawurl == "" {
		return domain.Verdict{}, fmt.Errorf("%w: url is required", domain.ErrValidation)
	}
	log.Printf("scan start: %s", rawurl)
	v, err := s.scorer.Score(ctx, rawurl)
	if err != nil {
		log.Printf("scan %s: scorer error: %v", rawurl, err)
		return domain.Verdict{}, err
	}
	log.Printf("scan %s: %s (%.1f)", rawurl, v.Status, v.RiskScore)
	return s.Record(ctx, v).Verdict, nil
}

// Record appends the verdict to the ledger and upserts the aggregate. Write
// failures are logged and never abort the other write; the verdict is
// returned untouched either way.
func (s *Service) Record(ctx context.Context, v domain.Verdict) RecordOutcome {
	now := s.now()
	out := RecordOutcome{Verdict: v}

	out.Entry = domain.LedgerEntry{
		ID:        s.newID(),
		Verdict:   v,
		Domain:    RegistrableDomain(v.URL),
		Timestamp: now,
	}
	out.LedgerErr = s.write(ctx, func(ctx context.Context) error {
		return s.ledger.AppendEntry(ctx, out.Entry)
	})
	if out.LedgerErr != nil {
		log.Printf("ledger write failed for %s: %v", v.URL, out.LedgerErr)
	}

	out.AggregateErr = s.write(ctx, func(ctx context.Context) error {
		rec, err := s.aggregates.UpsertAggregate(ctx, s.newID(), v, now)
		if err == nil {
			log.Printf("aggregate %s: scan_count=%d", rec.Latest.URL, rec.ScanCount)
		}
		return err
	})
	if out.AggregateErr != nil {
		log.Printf("aggregate write failed for %s: %v", v.URL, out.AggregateErr)
	}
	if !out.Consistent() {
		log.Printf("ledger and aggregates out of sync for %s; run rebuild-aggregates", v.URL)
	}
	return out
}

func (s *Service) write(ctx context.Context, fn func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), bookkeepingTimeout)
	defer cancel()
	return fn(ctx)
}

// RebuildAggregates recomputes every aggregate from the ledger and replaces
// the stored set. It returns the number of aggregates written.
func (s *Service) RebuildAggregates(ctx context.Context) (int, error) {
	entries, err := s.ledger.ListEntriesOldestFirst(ctx)
	if err != nil {
		return 0, fmt.Errorf("read ledger: %w", err)
	}
	recs := BuildAggregates(entries, s.newID)
	if err := s.aggregates.ReplaceAggregates(ctx, recs); err != nil {
		return 0, fmt.Errorf("replace aggregates: %w", err)
	}
	log.Printf("rebuilt %d aggregates from %d ledger entries", len(recs), len(entries))
	return len(recs), nil
}

// BuildAggregates folds ledger entries (oldest first) into one record per
// case-insensitive URL key, the same way repeated Record calls would.
func BuildAggregates(entries []domain.LedgerEntry, newID func() string) []domain.AggregateRecord {
	byKey := make(map[string]int)
	var out []domain.AggregateRecord
	for _, e := range entries {
		key := domain.URLKey(e.Verdict.URL)
		i, ok := byKey[key]
		if !ok {
			byKey[key] = len(out)
			out = append(out, domain.AggregateRecord{
				ID:          newID(),
				URLKey:      key,
				Latest:      e.Verdict,
				ScanCount:   1,
				FirstSeen:   e.Timestamp,
				LastScanned: e.Timestamp,
			})
			continue
		}
		rec := &out[i]
		firstURL := rec.Latest.URL
		rec.Latest = e.Verdict
		rec.Latest.URL = firstURL
		rec.ScanCount++
		rec.LastScanned = e.Timestamp
	}
	return out
}

// RegistrableDomain returns the eTLD+1 of the URL's host, the bare host for
// IP literals or when the suffix list has no answer, and "" without a host.
func RegistrableDomain(rawurl string) string {
	u, err := url.Parse(rawurl)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return ""
	}
	if net.ParseIP(host) != nil {
		return host
	}
	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return registrable
}
