package rescan

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"phishguard/internal/domain"
	"phishguard/internal/ports"
)

// Result is the outcome of rescanning one URL.
type Result struct {
	URL     string
	Verdict domain.Verdict
	Err     error
}

// Run rescans urls with at most concurrency scans in flight and returns one
// result per dispatched URL, in no particular order. A failed scan never stops
// the others. Cancelling ctx stops dispatch; URLs not yet started are skipped.
func Run(ctx context.Context, scanner ports.Scanner, urls []string, concurrency int) []Result {
	if concurrency < 1 {
		concurrency = 1
	}
	var (
		g   errgroup.Group
		mu  sync.Mutex
		out = make([]Result, 0, len(urls))
	)
	g.SetLimit(concurrency)

	for _, u := range urls {
		if ctx.Err() != nil {
			log.Printf("rescan: stopping dispatch: %v", ctx.Err())
			break
		}
		u := u
		g.Go(func() error {
			v, err := scanner.Scan(ctx, u)
			if err != nil {
				log.Printf("rescan %s failed: %v", u, err)
			}
			mu.Lock()
			out = append(out, Result{URL: u, Verdict: v, Err: err})
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return out
}
