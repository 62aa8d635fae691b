package memory

import (
	"context"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"phishguard/internal/domain"
)

func TestUpsertAggregateKeepsFirstCase(t *testing.T) {
	ctx := context.Background()
	s := New()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	if _, err := s.UpsertAggregate(ctx, "a", domain.Verdict{URL: "HTTP://A.com", Status: domain.StatusSafe}, t0); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	rec, err := s.UpsertAggregate(ctx, "b", domain.Verdict{URL: "http://a.com", Status: domain.StatusPhishing}, t0.Add(time.Minute))
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if rec.ID != "a" || rec.ScanCount != 2 {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.Latest.URL != "HTTP://A.com" || rec.Latest.Status != domain.StatusPhishing {
		t.Fatalf("latest = %+v", rec.Latest)
	}
	if !rec.FirstSeen.Equal(t0) || !rec.LastScanned.Equal(t0.Add(time.Minute)) {
		t.Fatalf("timestamps: first %v last %v", rec.FirstSeen, rec.LastScanned)
	}
}

func TestUpsertAggregateConcurrentSameKey(t *testing.T) {
	ctx := context.Background()
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			url := "https://example.com"
			if i%2 == 0 {
				url = "HTTPS://EXAMPLE.COM"
			}
			_, _ = s.UpsertAggregate(ctx, fmt.Sprint(i), domain.Verdict{URL: url}, time.Now())
		}(i)
	}
	wg.Wait()

	recs, _ := s.ListAggregates(ctx)
	if len(recs) != 1 {
		t.Fatalf("expected one aggregate, got %d", len(recs))
	}
	if recs[0].ScanCount != 50 {
		t.Fatalf("scan count = %d", recs[0].ScanCount)
	}
}

func TestListEntriesNewestFirstWithPage(t *testing.T) {
	ctx := context.Background()
	s := New()
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_ = s.AppendEntry(ctx, domain.LedgerEntry{ID: fmt.Sprint(i), Timestamp: t0.Add(time.Duration(i) * time.Second)})
	}

	all, _ := s.ListEntries(ctx, domain.Page{})
	if len(all) != 5 || all[0].ID != "4" || all[4].ID != "0" {
		t.Fatalf("unexpected order: %v", ids(all))
	}
	page, _ := s.ListEntries(ctx, domain.Page{Limit: 2, Offset: 1})
	if len(page) != 2 || page[0].ID != "3" || page[1].ID != "2" {
		t.Fatalf("unexpected page: %v", ids(page))
	}
	past, _ := s.ListEntries(ctx, domain.Page{Limit: 2, Offset: 10})
	if len(past) != 0 {
		t.Fatalf("expected empty page, got %v", ids(past))
	}
	huge, _ := s.ListEntries(ctx, domain.Page{Limit: math.MaxInt, Offset: 1})
	if len(huge) != 4 || huge[0].ID != "3" {
		t.Fatalf("max limit page: %v", ids(huge))
	}
}

func TestListEntriesByURLIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	s := New()
	_ = s.AppendEntry(ctx, domain.LedgerEntry{ID: "1", Verdict: domain.Verdict{URL: "HTTP://A.com"}})
	_ = s.AppendEntry(ctx, domain.LedgerEntry{ID: "2", Verdict: domain.Verdict{URL: "http://a.com"}})
	_ = s.AppendEntry(ctx, domain.LedgerEntry{ID: "3", Verdict: domain.Verdict{URL: "http://b.com"}})

	got, _ := s.ListEntriesByURL(ctx, "http://A.COM")
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %v", ids(got))
	}
}

func TestListEntriesSameTimestampLatestInsertFirst(t *testing.T) {
	ctx := context.Background()
	s := New()
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, id := range []string{"a", "b", "c"} {
		_ = s.AppendEntry(ctx, domain.LedgerEntry{ID: id, Timestamp: at})
	}
	got, _ := s.ListEntries(ctx, domain.Page{})
	if fmt.Sprint(ids(got)) != "[c b a]" {
		t.Fatalf("order = %v", ids(got))
	}
	oldest, _ := s.ListEntriesOldestFirst(ctx)
	if fmt.Sprint(ids(oldest)) != "[a b c]" {
		t.Fatalf("oldest-first order = %v", ids(oldest))
	}
}

func ids(entries []domain.LedgerEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}
