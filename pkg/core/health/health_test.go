package health

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func result(status Status) func(ctx context.Context) CheckResult {
	return func(ctx context.Context) CheckResult {
		return CheckResult{Status: status}
	}
}

func TestNewChecker(t *testing.T) {
	checker := NewChecker("store", func(ctx context.Context) CheckResult {
		return CheckResult{Status: StatusHealthy, Message: "ok"}
	})

	if checker.Name() != "store" {
		t.Errorf("Name() = %v, want store", checker.Name())
	}
	if got := checker.Check(context.Background()); got.Message != "ok" {
		t.Errorf("Message = %v, want ok", got.Message)
	}
}

func TestRegistry_Check(t *testing.T) {
	registry := NewRegistry("sro", "1.0.0")
	registry.RegisterFunc("store", func(ctx context.Context) CheckResult {
		// a checker that forgets its name still gets it
		return CheckResult{Name: "wrong", Status: StatusHealthy}
	})
	registry.Register(AlwaysHealthy("validator"))

	report := registry.Check(context.Background())
	if report.Service != "sro" || report.Version != "1.0.0" {
		t.Errorf("Service/Version = %v/%v", report.Service, report.Version)
	}
	if report.Status != StatusHealthy {
		t.Errorf("Status = %v, want healthy", report.Status)
	}
	if len(report.Checks) != 2 || report.Checks[0].Name != "store" || report.Checks[1].Name != "validator" {
		t.Errorf("Checks = %+v", report.Checks)
	}
	if report.Checks[0].Timestamp.IsZero() {
		t.Error("Timestamp not set")
	}
}

func TestRegistry_OverallStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		want     Status
		serving  bool
	}{
		{"empty", nil, StatusHealthy, true},
		{"healthy", []Status{StatusHealthy, StatusHealthy}, StatusHealthy, true},
		{"degraded", []Status{StatusHealthy, StatusDegraded}, StatusDegraded, true},
		{"unknown", []Status{StatusDegraded, StatusUnknown}, StatusUnknown, true},
		{"unhealthy wins", []Status{StatusUnhealthy, StatusDegraded, StatusUnknown}, StatusUnhealthy, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewRegistry("sro", "1.0.0")
			for i, s := range tt.statuses {
				registry.RegisterFunc(string(rune('a'+i)), result(s))
			}
			report := registry.Check(context.Background())
			if report.Status != tt.want {
				t.Errorf("Status = %v, want %v", report.Status, tt.want)
			}
			if report.Serving() != tt.serving {
				t.Errorf("Serving() = %v, want %v", report.Serving(), tt.serving)
			}
		})
	}
}

func TestRegistry_Register_Replaces(t *testing.T) {
	registry := NewRegistry("sro", "1.0.0")
	registry.RegisterFunc("store", result(StatusUnhealthy))
	registry.RegisterFunc("store", result(StatusHealthy))

	if names := registry.Names(); len(names) != 1 {
		t.Fatalf("Names() = %v, want one entry", names)
	}
	if report := registry.Check(context.Background()); report.Status != StatusHealthy {
		t.Errorf("Status = %v, want healthy", report.Status)
	}
}

func TestRegistry_ConcurrentChecks(t *testing.T) {
	registry := NewRegistry("sro", "1.0.0")

	var running, peak int32
	for i := 0; i < 5; i++ {
		registry.RegisterFunc("check"+string(rune('A'+i)), func(ctx context.Context) CheckResult {
			n := atomic.AddInt32(&running, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(50 * time.Millisecond)
			atomic.AddInt32(&running, -1)
			return CheckResult{Status: StatusHealthy}
		})
	}

	report := registry.CheckWithTimeout(5 * time.Second)
	if len(report.Checks) != 5 {
		t.Errorf("Checks count = %v, want 5", len(report.Checks))
	}
	if atomic.LoadInt32(&peak) < 2 {
		t.Errorf("peak concurrency = %d, checks ran sequentially", peak)
	}
}

func TestReport_FailingAndString(t *testing.T) {
	report := &Report{
		Service: "sro",
		Status:  StatusUnhealthy,
		Uptime:  time.Hour,
		Checks: []CheckResult{
			{Name: "metrics", Status: StatusDegraded},
			{Name: "store", Status: StatusUnhealthy},
			{Name: "validator", Status: StatusHealthy},
		},
	}

	failing := report.Failing()
	if len(failing) != 2 || failing[0] != "metrics" || failing[1] != "store" {
		t.Errorf("Failing() = %v", failing)
	}
	if s := report.String(); !strings.Contains(s, "Failing: metrics,store") {
		t.Errorf("String() = %q", s)
	}
}

func TestReport_JSON(t *testing.T) {
	registry := NewRegistry("sro", "1.0.0")
	registry.Register(AlwaysHealthy("validator"))

	data, err := json.Marshal(registry.Check(context.Background()))
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["status"] != "healthy" {
		t.Errorf("status = %v", decoded["status"])
	}
	checks, _ := decoded["checks"].([]interface{})
	if len(checks) != 1 || checks[0].(map[string]interface{})["name"] != "validator" {
		t.Errorf("checks = %v", decoded["checks"])
	}
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestPingCheck(t *testing.T) {
	ok := PingCheck("store", pingerFunc(func(ctx context.Context) error { return nil }))
	if result := ok.Check(context.Background()); result.Status != StatusHealthy {
		t.Errorf("Status = %v, want healthy", result.Status)
	}

	failing := PingCheck("store", pingerFunc(func(ctx context.Context) error {
		return errors.New("database is closed")
	}))
	result := failing.Check(context.Background())
	if result.Status != StatusUnhealthy {
		t.Errorf("Status = %v, want unhealthy", result.Status)
	}
	if result.Message != "database is closed" {
		t.Errorf("Message = %v, want 'database is closed'", result.Message)
	}
}

func TestTCPCheck(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := ln.Addr().String()

	checker := TCPCheck("metrics", addr, time.Second)
	result := checker.Check(context.Background())
	if result.Status != StatusHealthy {
		t.Errorf("Status = %v, want healthy (%s)", result.Status, result.Message)
	}
	if result.Details["address"] != addr {
		t.Errorf("Details[address] = %v, want %v", result.Details["address"], addr)
	}

	ln.Close()
	result = checker.Check(context.Background())
	if result.Status != StatusDegraded {
		t.Errorf("Status after close = %v, want degraded", result.Status)
	}
}
