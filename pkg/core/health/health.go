// Package health aggregates dependency checks of the SRO service into one
// report. The server maps the report onto the gRPC health protocol and the
// /healthz endpoint.
package health

import (
	"context"
	"fmt"
	"net"
	"sort"
	"strings"
	"sync"
	"time"
)

// Status represents the health status of a service
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
	StatusDegraded  Status = "degraded"
	StatusUnknown   Status = "unknown"
)

// severity orders statuses from best to worst
func (s Status) severity() int {
	switch s {
	case StatusHealthy:
		return 0
	case StatusDegraded:
		return 1
	case StatusUnhealthy:
		return 3
	default:
		return 2
	}
}

// CheckResult represents the result of a health check
type CheckResult struct {
	Name      string                 `json:"name"`
	Status    Status                 `json:"status"`
	Message   string                 `json:"message,omitempty"`
	Duration  time.Duration          `json:"duration"`
	Timestamp time.Time              `json:"timestamp"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// Checker is an interface for health checks
type Checker interface {
	Name() string
	Check(ctx context.Context) CheckResult
}

type checker struct {
	name string
	fn   func(ctx context.Context) CheckResult
}

func (c checker) Name() string                          { return c.name }
func (c checker) Check(ctx context.Context) CheckResult { return c.fn(ctx) }

// NewChecker creates a named checker from a function
func NewChecker(name string, fn func(ctx context.Context) CheckResult) Checker {
	return checker{name: name, fn: fn}
}

// Registry manages multiple health checkers
type Registry struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	service  string
	version  string
	startAt  time.Time
}

// NewRegistry creates a new health check registry
func NewRegistry(service, version string) *Registry {
	return &Registry{
		checkers: make(map[string]Checker),
		service:  service,
		version:  version,
		startAt:  time.Now(),
	}
}

// Register adds a checker, replacing one with the same name
func (r *Registry) Register(checker Checker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[checker.Name()] = checker
}

// RegisterFunc adds a check function to the registry
func (r *Registry) RegisterFunc(name string, fn func(ctx context.Context) CheckResult) {
	r.Register(NewChecker(name, fn))
}

// Names returns the registered check names in order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.checkers))
	for name := range r.checkers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Check runs all checks concurrently. The report lists them by name and
// its status is the worst status of any check.
func (r *Registry) Check(ctx context.Context) *Report {
	names := r.Names()

	r.mu.RLock()
	checkers := make([]Checker, len(names))
	for i, name := range names {
		checkers[i] = r.checkers[name]
	}
	r.mu.RUnlock()

	results := make([]CheckResult, len(checkers))
	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			result := c.Check(ctx)
			result.Name = c.Name()
			result.Duration = time.Since(start)
			result.Timestamp = time.Now()
			results[i] = result
		}()
	}
	wg.Wait()

	report := &Report{
		Service:   r.service,
		Version:   r.version,
		Status:    StatusHealthy,
		Uptime:    time.Since(r.startAt),
		Timestamp: time.Now(),
		Checks:    results,
	}
	for _, result := range results {
		if result.Status.severity() > report.Status.severity() {
			report.Status = result.Status
		}
	}
	return report
}

// CheckWithTimeout runs all health checks with a timeout
func (r *Registry) CheckWithTimeout(timeout time.Duration) *Report {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return r.Check(ctx)
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

// Serving reports whether the service can take requests. A degraded
// service still serves.
func (r *Report) Serving() bool {
	return r.Status != StatusUnhealthy
}

// Failing returns the names of all checks that are not healthy
func (r *Report) Failing() []string {
	var names []string
	for _, c := range r.Checks {
		if c.Status != StatusHealthy {
			names = append(names, c.Name)
		}
	}
	return names
}

// String returns a string representation of the report
func (r *Report) String() string {
	s := fmt.Sprintf("Service: %s, Status: %s, Uptime: %v, Checks: %d",
		r.Service, r.Status, r.Uptime.Round(time.Second), len(r.Checks))
	if failing := r.Failing(); len(failing) > 0 {
		s += ", Failing: " + strings.Join(failing, ",")
	}
	return s
}

// Pinger is implemented by dependencies that can verify their connection,
// such as the report store
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingCheck creates a check that is unhealthy when p.Ping fails
func PingCheck(name string, p Pinger) Checker {
	return NewChecker(name, func(ctx context.Context) CheckResult {
		if err := p.Ping(ctx); err != nil {
			return CheckResult{Status: StatusUnhealthy, Message: err.Error()}
		}
		return CheckResult{Status: StatusHealthy, Message: "reachable"}
	})
}

// TCPCheck reports degraded when nothing accepts connections on address.
// It is meant for auxiliary listeners such as the metrics endpoint.
func TCPCheck(name, address string, timeout time.Duration) Checker {
	return NewChecker(name, func(ctx context.Context) CheckResult {
		result := CheckResult{
			Status:  StatusHealthy,
			Message: "accepting connections",
			Details: map[string]interface{}{"address": address},
		}

		dialer := net.Dialer{Timeout: timeout}
		conn, err := dialer.DialContext(ctx, "tcp", address)
		if err != nil {
			result.Status = StatusDegraded
			result.Message = err.Error()
			return result
		}
		conn.Close()
		return result
	})
}

// AlwaysHealthy returns a checker that always reports healthy
func AlwaysHealthy(name string) Checker {
	return NewChecker(name, func(ctx context.Context) CheckResult {
		return CheckResult{Status: StatusHealthy}
	})
}
