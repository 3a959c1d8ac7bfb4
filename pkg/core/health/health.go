// ============================================================================
// Cardano - Complex Arithmetic Service
// ============================================================================
//
// Package:     health
// Description: Health check registry feeding the gRPC health service
// Author:      msto63
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package health

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// DefaultCheckTimeout bounds a single check unless the registry overrides it
const DefaultCheckTimeout = 2 * time.Second

// Status represents the health status of a component
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
	StatusDegraded  Status = "degraded"
)

// CheckResult represents the result of a health check
type CheckResult struct {
	Name      string
	Status    Status
	Message   string
	Duration  time.Duration
	Timestamp time.Time
	Details   map[string]interface{}
}

// Checker is an interface for health checks
type Checker interface {
	Name() string
	Check(ctx context.Context) CheckResult
}

type namedChecker struct {
	name string
	fn   func(ctx context.Context) CheckResult
}

// NewChecker creates a named checker from a function
func NewChecker(name string, fn func(ctx context.Context) CheckResult) Checker {
	return &namedChecker{name: name, fn: fn}
}

func (c *namedChecker) Name() string {
	return c.name
}

func (c *namedChecker) Check(ctx context.Context) CheckResult {
	return c.fn(ctx)
}

// Registry runs a set of checkers concurrently
type Registry struct {
	mu           sync.RWMutex
	checkers     map[string]Checker
	service      string
	version      string
	startAt      time.Time
	checkTimeout time.Duration
}

// NewRegistry creates a new health check registry
func NewRegistry(service, version string) *Registry {
	return &Registry{
		checkers:     make(map[string]Checker),
		service:      service,
		version:      version,
		startAt:      time.Now(),
		checkTimeout: DefaultCheckTimeout,
	}
}

// WithCheckTimeout sets the deadline of each single check.
// Zero disables the per-check deadline.
func (r *Registry) WithCheckTimeout(d time.Duration) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkTimeout = d
	return r
}

// Register adds a checker, replacing one with the same name
func (r *Registry) Register(checker Checker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[checker.Name()] = checker
}

// Check runs all health checks and returns the overall status. A check that
// misses its deadline is reported unhealthy.
func (r *Registry) Check(ctx context.Context) *Report {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report := &Report{
		Service:   r.service,
		Version:   r.version,
		Uptime:    time.Since(r.startAt),
		Timestamp: time.Now(),
		Checks:    make([]CheckResult, 0, len(r.checkers)),
	}

	var wg sync.WaitGroup
	results := make(chan CheckResult, len(r.checkers))

	for _, checker := range r.checkers {
		wg.Add(1)
		go func(c Checker) {
			defer wg.Done()
			results <- r.run(ctx, c)
		}(checker)
	}

	wg.Wait()
	close(results)

	overallStatus := StatusHealthy
	for result := range results {
		report.Checks = append(report.Checks, result)
		switch result.Status {
		case StatusUnhealthy:
			overallStatus = StatusUnhealthy
		case StatusDegraded:
			if overallStatus != StatusUnhealthy {
				overallStatus = StatusDegraded
			}
		}
	}

	sort.Slice(report.Checks, func(i, j int) bool {
		return report.Checks[i].Name < report.Checks[j].Name
	})
	report.Status = overallStatus
	return report
}

func (r *Registry) run(ctx context.Context, c Checker) CheckResult {
	if r.checkTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.checkTimeout)
		defer cancel()
	}

	start := time.Now()
	result := c.Check(ctx)
	result.Duration = time.Since(start)
	result.Timestamp = time.Now()
	if result.Name == "" {
		result.Name = c.Name()
	}
	if ctx.Err() != nil && result.Status == StatusHealthy {
		result.Status = StatusUnhealthy
		result.Message = fmt.Sprintf("check did not finish: %v", ctx.Err())
	}
	return result
}

// Publish runs all checks and reports each service as serving unless the
// overall status is unhealthy. Degraded still counts as serving.
func (r *Registry) Publish(ctx context.Context, set func(service string, serving bool), services ...string) *Report {
	report := r.Check(ctx)
	serving := report.Status != StatusUnhealthy
	for _, service := range services {
		set(service, serving)
	}
	return report
}

// Report represents the overall health report
type Report struct {
	Service   string        `json:"service"`
	Version   string        `json:"version"`
	Status    Status        `json:"status"`
	Uptime    time.Duration `json:"uptime"`
	Timestamp time.Time     `json:"timestamp"`
	Checks    []CheckResult `json:"checks"`
}

// String returns a one line summary of the report
func (r *Report) String() string {
	return fmt.Sprintf("Service: %s, Status: %s, Uptime: %v, Checks: %d",
		r.Service, r.Status, r.Uptime.Truncate(time.Second), len(r.Checks))
}

// PingCheck reports unhealthy when ping fails
func PingCheck(name string, ping func(ctx context.Context) error) Checker {
	return NewChecker(name, func(ctx context.Context) CheckResult {
		if err := ping(ctx); err != nil {
			return CheckResult{
				Name:    name,
				Status:  StatusUnhealthy,
				Message: err.Error(),
			}
		}
		return CheckResult{Name: name, Status: StatusHealthy, Message: "ok"}
	})
}

// CountCheck reports degraded when count returns less than min entries
func CountCheck(name string, min int, count func() int) Checker {
	return NewChecker(name, func(ctx context.Context) CheckResult {
		n := count()
		result := CheckResult{
			Name:    name,
			Status:  StatusHealthy,
			Details: map[string]interface{}{"count": n, "min": min},
		}
		if n < min {
			result.Status = StatusDegraded
			result.Message = fmt.Sprintf("%d entries, want at least %d", n, min)
		}
		return result
	})
}
