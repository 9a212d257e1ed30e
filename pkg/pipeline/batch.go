package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/routekit/elbow/pkg/router"
	"github.com/routekit/elbow/pkg/scenario"
)

// workers is the number of concurrent goroutines routing scenario requests.
// Routing is CPU-bound, so a small fixed pool keeps batches responsive
// without unbounded goroutine growth on large scenario files.
const workers = 8

// BatchOptions control scenario execution.
type BatchOptions struct {
	// Refresh bypasses the cache and overwrites stored entries.
	Refresh bool
}

// Outcome is the result of one request within a batch. Exactly one of
// Byproduct and Err is set.
type Outcome struct {
	Name      string
	Byproduct *router.Byproduct
	Err       error
	CacheHit  bool
	Duration  time.Duration
}

// BatchResult collects the outcomes of a scenario run in input order.
type BatchResult struct {
	RunID    string
	Outcomes []Outcome
	Duration time.Duration
}

// Failed reports how many requests ended in an error.
func (b *BatchResult) Failed() int {
	n := 0
	for _, o := range b.Outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}

// Execute routes every request in the scenario concurrently.
//
// Requests are independent, so individual failures are recorded in their
// outcome rather than aborting the batch. Outcomes keep the scenario's
// request order regardless of completion order.
func (r *Runner) Execute(ctx context.Context, s *scenario.Scenario, opts BatchOptions) (*BatchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &BatchResult{
		RunID:    uuid.NewString(),
		Outcomes: make([]Outcome, len(s.Routes)),
	}
	start := time.Now()

	r.Logger.Info("executing scenario",
		"run_id", result.RunID,
		"scenario", s.Name,
		"routes", len(s.Routes))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for range min(workers, len(s.Routes)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				result.Outcomes[i] = r.routeOne(ctx, s.Routes[i], opts)
			}
		}()
	}

	for i := range s.Routes {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	result.Duration = time.Since(start)
	r.Logger.Info("scenario complete",
		"run_id", result.RunID,
		"failed", result.Failed(),
		"duration", result.Duration)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// routeOne routes a single request and packages the outcome. Workers write
// to disjoint outcome slots, so no locking is needed.
func (r *Runner) routeOne(ctx context.Context, req scenario.Request, opts BatchOptions) Outcome {
	start := time.Now()
	bp, hit, err := r.RouteRequest(ctx, req, opts.Refresh)
	out := Outcome{
		Name:      req.Name,
		Byproduct: bp,
		Err:       err,
		CacheHit:  hit,
		Duration:  time.Since(start),
	}
	if err != nil {
		r.Logger.Warn("route failed", "route", req.Name, "err", err)
	} else {
		r.Logger.Debug("routed",
			"route", req.Name,
			"bends", bp.Bends(),
			"length", bp.Length(),
			"cache_hit", hit,
			"duration", out.Duration)
	}
	return out
}
