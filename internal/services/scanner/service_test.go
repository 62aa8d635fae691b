package scanner

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	"phishguard/internal/adapters/memory"
	"phishguard/internal/domain"
	"phishguard/internal/services/history"
)

type fakeScorer struct {
	verdicts map[string]domain.Verdict
	err      error
	calls    int
}

func (f *fakeScorer) Score(_ context.Context, url string) (domain.Verdict, error) {
	f.calls++
	if f.err != nil {
		return domain.Verdict{}, f.err
	}
	v, ok := f.verdicts[url]
	if !ok {
		v = domain.Verdict{Status: domain.StatusSafe, RiskReasons: []string{}}
	}
	v.URL = url
	return v, nil
}

// failingStore breaks every write while still answering reads from memory.
type failingStore struct {
	*memory.Store
	failLedger    bool
	failAggregate bool
}

var errWrite = errors.New("disk on fire")

func (f *failingStore) AppendEntry(ctx context.Context, e domain.LedgerEntry) error {
	if f.failLedger {
		return errWrite
	}
	return f.Store.AppendEntry(ctx, e)
}

func (f *failingStore) UpsertAggregate(ctx context.Context, id string, v domain.Verdict, at time.Time) (domain.AggregateRecord, error) {
	if f.failAggregate {
		return domain.AggregateRecord{}, errWrite
	}
	return f.Store.UpsertAggregate(ctx, id, v, at)
}

func stepClock(start time.Time) func() time.Time {
	t := start
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func sampleVerdict() domain.Verdict {
	return domain.Verdict{
		URL:          "http://paypal-login.tk/verify",
		RiskScore:    91,
		Status:       domain.StatusPhishing,
		RiskLabel:    "High Risk",
		ResponseTime: 0.42,
		RiskReasons:  []string{"[HIGH RISK] Tokelau domain", "[WARN] keyword 'login'"},
	}
}

func TestRecordReturnsVerdictRegardlessOfStoreFailures(t *testing.T) {
	cases := []struct {
		name          string
		failLedger    bool
		failAggregate bool
	}{
		{name: "both_ok"},
		{name: "ledger_fails", failLedger: true},
		{name: "aggregate_fails", failAggregate: true},
		{name: "both_fail", failLedger: true, failAggregate: true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			store := &failingStore{Store: memory.New(), failLedger: tc.failLedger, failAggregate: tc.failAggregate}
			svc := New(&fakeScorer{}, store, store)
			v := sampleVerdict()

			out := svc.Record(context.Background(), v)
			if !reflect.DeepEqual(out.Verdict, v) {
				t.Fatalf("verdict changed: %+v", out.Verdict)
			}
			if (out.LedgerErr != nil) != tc.failLedger {
				t.Fatalf("ledger err = %v", out.LedgerErr)
			}
			if (out.AggregateErr != nil) != tc.failAggregate {
				t.Fatalf("aggregate err = %v", out.AggregateErr)
			}
			if out.Consistent() != (!tc.failLedger && !tc.failAggregate) {
				t.Fatalf("consistent = %v", out.Consistent())
			}

			// a failed ledger write must not stop the aggregate update
			_, found, _ := store.GetAggregateByURL(context.Background(), v.URL)
			if found == tc.failAggregate {
				t.Fatalf("aggregate found = %v", found)
			}
		})
	}
}

func TestRecordLogsDrift(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	store := &failingStore{Store: memory.New(), failAggregate: true}
	New(&fakeScorer{}, store, store).Record(context.Background(), sampleVerdict())
	if !strings.Contains(buf.String(), "out of sync for http://paypal-login.tk/verify") {
		t.Fatalf("missing drift line in log:\n%s", buf.String())
	}

	buf.Reset()
	clean := memory.New()
	New(&fakeScorer{}, clean, clean).Record(context.Background(), sampleVerdict())
	if strings.Contains(buf.String(), "out of sync") {
		t.Fatalf("unexpected drift line:\n%s", buf.String())
	}
}

func TestScanSameURLTwice(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	scorer := &fakeScorer{verdicts: map[string]domain.Verdict{}}
	svc := New(scorer, store, store, WithClock(stepClock(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))))

	scorer.verdicts["https://example.com"] = domain.Verdict{Status: domain.StatusSafe, RiskScore: 5, RiskReasons: []string{}}
	if _, err := svc.Scan(ctx, "https://example.com"); err != nil {
		t.Fatalf("scan 1: %v", err)
	}
	first, _, _ := store.GetAggregateByURL(ctx, "https://example.com")

	scorer.verdicts["https://example.com"] = domain.Verdict{Status: domain.StatusSuspicious, RiskScore: 40, RiskReasons: []string{"→ Suspicious TLD"}}
	got, err := svc.Scan(ctx, "https://example.com")
	if err != nil {
		t.Fatalf("scan 2: %v", err)
	}
	if got.Status != domain.StatusSuspicious {
		t.Fatalf("scan returned %+v", got)
	}

	second, _, _ := store.GetAggregateByURL(ctx, "https://example.com")
	if second.ScanCount != 2 {
		t.Fatalf("scan count = %d", second.ScanCount)
	}
	if !second.LastScanned.After(first.LastScanned) {
		t.Fatalf("last scanned did not advance: %v -> %v", first.LastScanned, second.LastScanned)
	}
	if !second.FirstSeen.Equal(first.FirstSeen) {
		t.Fatalf("first seen changed: %v -> %v", first.FirstSeen, second.FirstSeen)
	}
	if second.Latest.Status != domain.StatusSuspicious || second.Latest.RiskScore != 40 {
		t.Fatalf("aggregate not overwritten: %+v", second.Latest)
	}

	entries, _ := store.ListEntries(ctx, domain.Page{})
	if len(entries) != 2 {
		t.Fatalf("ledger entries = %d", len(entries))
	}
	if entries[0].Verdict.Status != domain.StatusSuspicious || entries[1].Verdict.Status != domain.StatusSafe {
		t.Fatalf("ledger order: %+v", entries)
	}
}

// Case variants share an aggregate but stay in separate exact-match history
// groups.
func TestCaseVariantsAggregateVsHistoryGrouping(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := New(&fakeScorer{}, store, store, WithClock(stepClock(time.Now())))

	for _, u := range []string{"HTTP://A.com", "http://a.com"} {
		if _, err := svc.Scan(ctx, u); err != nil {
			t.Fatalf("scan %s: %v", u, err)
		}
	}

	aggs, _ := store.ListAggregates(ctx)
	if len(aggs) != 1 || aggs[0].ScanCount != 2 {
		t.Fatalf("aggregates = %+v", aggs)
	}
	if aggs[0].Latest.URL != "HTTP://A.com" {
		t.Fatalf("aggregate url should keep first casing, got %q", aggs[0].Latest.URL)
	}

	groups, err := history.New(store, store).Groups(ctx, domain.Page{})
	if err != nil {
		t.Fatalf("groups: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 exact-match groups, got %d", len(groups))
	}
}

func TestScanScorerFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := New(&fakeScorer{err: domain.ErrScorerUnavailable}, store, store)

	_, err := svc.Scan(ctx, "https://a.com")
	if !errors.Is(err, domain.ErrScorerUnavailable) {
		t.Fatalf("err = %v", err)
	}
	if st, _ := store.SummarizeEntries(ctx); st.Total != 0 {
		t.Fatalf("ledger has %d entries", st.Total)
	}
	if aggs, _ := store.ListAggregates(ctx); len(aggs) != 0 {
		t.Fatalf("aggregates = %d", len(aggs))
	}
}

func TestScanRequiresURL(t *testing.T) {
	scorer := &fakeScorer{}
	store := memory.New()
	svc := New(scorer, store, store)
	for _, u := range []string{"", "   "} {
		_, err := svc.Scan(context.Background(), u)
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("Scan(%q) err = %v", u, err)
		}
	}
	if scorer.calls != 0 {
		t.Fatalf("scorer called %d times", scorer.calls)
	}
}

func TestRecordSurvivesCancelledContext(t *testing.T) {
	store := memory.New()
	svc := New(&fakeScorer{}, store, store)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := svc.Record(ctx, sampleVerdict())
	if !out.Consistent() {
		t.Fatalf("writes failed: %v / %v", out.LedgerErr, out.AggregateErr)
	}
}

func TestRebuildAggregatesFromLedger(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := New(&fakeScorer{}, store, store, WithClock(stepClock(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))))

	for _, u := range []string{"https://A.com", "https://a.com", "https://b.com"} {
		if _, err := svc.Scan(ctx, u); err != nil {
			t.Fatalf("scan: %v", err)
		}
	}
	// drift: drop the aggregate for a.com
	rec, _, _ := store.GetAggregateByURL(ctx, "https://a.com")
	if _, err := store.DeleteAggregate(ctx, rec.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	n, err := svc.RebuildAggregates(ctx)
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if n != 2 {
		t.Fatalf("rebuilt %d aggregates", n)
	}
	rebuilt, found, _ := store.GetAggregateByURL(ctx, "https://a.com")
	if !found || rebuilt.ScanCount != 2 || rebuilt.Latest.URL != "https://A.com" {
		t.Fatalf("rebuilt = %+v", rebuilt)
	}
	if !rebuilt.LastScanned.After(rebuilt.FirstSeen) {
		t.Fatalf("timestamps: %v %v", rebuilt.FirstSeen, rebuilt.LastScanned)
	}
}

func TestRegistrableDomain(t *testing.T) {
	cases := map[string]string{
		"https://login.paypal.co.uk/x": "paypal.co.uk",
		"HTTP://Sub.Example.COM":        "example.com",
		"http://192.168.1.10/login":     "192.168.1.10",
		"not a url":                     "",
		"":                              "",
	}
	for in, want := range cases {
		if got := RegistrableDomain(in); got != want {
			t.Fatalf("RegistrableDomain(%q) = %q, want %q", in, got, want)
		}
	}
}
