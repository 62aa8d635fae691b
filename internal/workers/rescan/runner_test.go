package rescan

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"phishguard/internal/domain"
)

type countingScanner struct {
	mu   sync.Mutex
	seen map[string]int
	fail map[string]bool
}

func (c *countingScanner) Scan(ctx context.Context, url string) (domain.Verdict, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seen[url]++
	if c.fail[url] {
		return domain.Verdict{}, domain.ErrScorerUnavailable
	}
	return domain.Verdict{URL: url, Status: domain.StatusSafe}, nil
}

func TestRunScansEveryURLOnce(t *testing.T) {
	urls := []string{"https://a.com", "https://b.com", "https://c.com", "https://d.com", "https://e.com"}
	sc := &countingScanner{seen: map[string]int{}, fail: map[string]bool{"https://c.com": true}}

	results := Run(context.Background(), sc, urls, 3)
	if len(results) != len(urls) {
		t.Fatalf("results = %d", len(results))
	}
	sort.Slice(results, func(i, j int) bool { return results[i].URL < results[j].URL })
	for i, r := range results {
		if r.URL != urls[i] {
			t.Fatalf("result %d url = %s", i, r.URL)
		}
		if sc.seen[r.URL] != 1 {
			t.Fatalf("%s scanned %d times", r.URL, sc.seen[r.URL])
		}
		wantErr := r.URL == "https://c.com"
		if (r.Err != nil) != wantErr {
			t.Fatalf("%s err = %v", r.URL, r.Err)
		}
		if wantErr && !errors.Is(r.Err, domain.ErrScorerUnavailable) {
			t.Fatalf("%s err = %v", r.URL, r.Err)
		}
	}
}

func TestRunCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sc := &countingScanner{seen: map[string]int{}}

	results := Run(ctx, sc, []string{"https://a.com", "https://b.com"}, 0)
	if len(results) != 0 {
		t.Fatalf("results = %d", len(results))
	}
}

func TestRunNoURLs(t *testing.T) {
	if got := Run(context.Background(), &countingScanner{seen: map[string]int{}}, nil, 4); len(got) != 0 {
		t.Fatalf("results = %v", got)
	}
}

type gaugeScanner struct {
	mu       sync.Mutex
	inFlight int
	peak     int
	release  chan struct{}
}

func (g *gaugeScanner) Scan(ctx context.Context, url string) (domain.Verdict, error) {
	g.mu.Lock()
	g.inFlight++
	if g.inFlight > g.peak {
		g.peak = g.inFlight
	}
	g.mu.Unlock()
	<-g.release
	g.mu.Lock()
	g.inFlight--
	g.mu.Unlock()
	return domain.Verdict{URL: url}, nil
}

func TestRunRespectsConcurrency(t *testing.T) {
	g := &gaugeScanner{release: make(chan struct{})}
	urls := []string{"a", "b", "c", "d", "e", "f"}
	go func() {
		for range urls {
			g.release <- struct{}{}
		}
	}()
	results := Run(context.Background(), g, urls, 2)
	if len(results) != len(urls) {
		t.Fatalf("results = %d", len(results))
	}
	if g.peak > 2 {
		t.Fatalf("peak in-flight scans = %d", g.peak)
	}
}
