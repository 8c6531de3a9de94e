// Package bench measures scoring throughput over a fixed URL set, serially
// and with a worker pool. The scorer itself stays single-call synchronous;
// concurrency here lives entirely in the harness.
package bench

import (
	"context"
	"sync"
	"time"

	"github.com/MOYARU/crs/internal/scorer"
)

// DefaultURLs is a small mix of trusted and ordinary sites so benchmark runs
// also demonstrate score spread.
var DefaultURLs = []string{
	"https://www.nih.gov",
	"https://www.cdc.gov",
	"https://www.nature.com",
	"https://en.wikipedia.org/wiki/Main_Page",
	"https://example.com",
	"https://www.bbc.com",
	"https://www.nytimes.com",
	"https://www.whitehouse.gov",
}

type Stats struct {
	Mode    string
	Calls   int
	Workers int
	Total   time.Duration
	Avg     time.Duration
}

// RunSerial scores n URLs back to back on the calling goroutine.
func RunSerial(ctx context.Context, s *scorer.Scorer, urls []string, n int) Stats {
	if len(urls) == 0 {
		urls = DefaultURLs
	}

	start := time.Now()
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			n = i
			break
		}
		s.Score(ctx, urls[i%len(urls)])
	}
	total := time.Since(start)

	return Stats{Mode: "serial", Calls: n, Workers: 1, Total: total, Avg: avg(total, n)}
}

// RunConcurrent scores n URLs across a fixed pool of workers.
func RunConcurrent(ctx context.Context, s *scorer.Scorer, urls []string, n, workers int) Stats {
	if len(urls) == 0 {
		urls = DefaultURLs
	}
	if workers <= 0 {
		workers = 1
	}

	jobs := make(chan string)
	var wg sync.WaitGroup

	start := time.Now()
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for u := range jobs {
				s.Score(ctx, u)
			}
		}()
	}

	sent := 0
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			break
		}
		jobs <- urls[i%len(urls)]
		sent++
	}
	close(jobs)
	wg.Wait()
	total := time.Since(start)

	return Stats{Mode: "concurrent", Calls: sent, Workers: workers, Total: total, Avg: avg(total, sent)}
}

func avg(total time.Duration, n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return total / time.Duration(n)
}
