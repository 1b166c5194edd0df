package health

import (
	"context"
	"sync"
	"time"
)

// Registry holds the checkers consulted by the readiness probe.
type Registry struct {
	checkers []Checker
}

func NewRegistry(checkers ...Checker) *Registry {
	return &Registry{checkers: checkers}
}

// Register adds a checker. Not safe for use once probes are being served.
func (r *Registry) Register(c Checker) {
	r.checkers = append(r.checkers, c)
}

type CheckResult struct {
	Name       string `json:"name"`
	Status     Status `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

type ReadinessResponse struct {
	Status Status        `json:"status"`
	Checks []CheckResult `json:"checks,omitempty"`
}

// CheckAll runs every checker concurrently. The overall status is down as
// soon as one checker is down.
func (r *Registry) CheckAll(ctx context.Context) ReadinessResponse {
	if len(r.checkers) == 0 {
		return ReadinessResponse{Status: StatusUp}
	}

	results := make([]CheckResult, len(r.checkers))
	var wg sync.WaitGroup

	for i, checker := range r.checkers {
		i, checker := i, checker
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			res := checker.Check(ctx)
			results[i] = CheckResult{
				Name:       checker.Name(),
				Status:     res.Status,
				Message:    res.Message,
				DurationMs: time.Since(start).Milliseconds(),
			}
		}()
	}

	wg.Wait()

	overall := StatusUp
	for _, res := range results {
		if res.Status == StatusDown {
			overall = StatusDown
			break
		}
	}

	return ReadinessResponse{Status: overall, Checks: results}
}
