package health

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func fixed(name string, status Status) Checker {
	return NewChecker(name, func(ctx context.Context) CheckResult {
		return CheckResult{Status: status}
	})
}

func TestNewChecker(t *testing.T) {
	checker := NewChecker("catalog", func(ctx context.Context) CheckResult {
		return CheckResult{Status: StatusHealthy, Message: "58 operations"}
	})

	if checker.Name() != "catalog" {
		t.Errorf("Name() = %v, want catalog", checker.Name())
	}
	result := checker.Check(context.Background())
	if result.Status != StatusHealthy || result.Message != "58 operations" {
		t.Errorf("Check() = %+v", result)
	}
}

func TestRegistry_Check(t *testing.T) {
	registry := NewRegistry("cardano", "1.0.0")
	registry.Register(fixed("history", StatusHealthy))
	registry.Register(fixed("catalog", StatusHealthy))

	report := registry.Check(context.Background())

	if report.Service != "cardano" || report.Version != "1.0.0" {
		t.Errorf("report = %+v", report)
	}
	if report.Status != StatusHealthy {
		t.Errorf("Status = %v, want healthy", report.Status)
	}
	if len(report.Checks) != 2 {
		t.Fatalf("Checks count = %v, want 2", len(report.Checks))
	}
	if report.Checks[0].Name != "catalog" || report.Checks[1].Name != "history" {
		t.Errorf("checks not sorted by name: %v, %v", report.Checks[0].Name, report.Checks[1].Name)
	}
	if report.Checks[0].Timestamp.IsZero() {
		t.Error("Timestamp not set")
	}
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	registry := NewRegistry("cardano", "1.0.0")
	registry.Register(fixed("history", StatusUnhealthy))
	registry.Register(fixed("history", StatusHealthy))

	report := registry.Check(context.Background())
	if len(report.Checks) != 1 || report.Status != StatusHealthy {
		t.Errorf("report = %+v", report)
	}
}

func TestRegistry_OverallStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []Status
		want     Status
	}{
		{"empty", nil, StatusHealthy},
		{"all healthy", []Status{StatusHealthy, StatusHealthy}, StatusHealthy},
		{"one degraded", []Status{StatusHealthy, StatusDegraded}, StatusDegraded},
		{"unhealthy wins", []Status{StatusDegraded, StatusUnhealthy, StatusHealthy}, StatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry := NewRegistry("cardano", "1.0.0")
			for i, s := range tt.statuses {
				registry.Register(fixed(string(rune('a'+i)), s))
			}
			if got := registry.Check(context.Background()).Status; got != tt.want {
				t.Errorf("Status = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRegistry_ConcurrentChecks(t *testing.T) {
	registry := NewRegistry("cardano", "1.0.0")

	var counter int32
	for i := 0; i < 5; i++ {
		registry.Register(NewChecker("check"+string(rune('A'+i)), func(ctx context.Context) CheckResult {
			atomic.AddInt32(&counter, 1)
			time.Sleep(10 * time.Millisecond)
			return CheckResult{Status: StatusHealthy}
		}))
	}

	start := time.Now()
	report := registry.Check(context.Background())
	duration := time.Since(start)

	if atomic.LoadInt32(&counter) != 5 {
		t.Errorf("Counter = %v, want 5", counter)
	}
	if duration > 100*time.Millisecond {
		t.Errorf("Duration = %v, expected concurrent execution", duration)
	}
	if len(report.Checks) != 5 {
		t.Errorf("Checks count = %v, want 5", len(report.Checks))
	}
}

func TestRegistry_CheckTimeout(t *testing.T) {
	registry := NewRegistry("cardano", "1.0.0").WithCheckTimeout(20 * time.Millisecond)
	registry.Register(NewChecker("history", func(ctx context.Context) CheckResult {
		<-ctx.Done()
		return CheckResult{Status: StatusHealthy}
	}))

	report := registry.Check(context.Background())
	if report.Status != StatusUnhealthy {
		t.Errorf("Status = %v, want unhealthy", report.Status)
	}
	if !strings.Contains(report.Checks[0].Message, "did not finish") {
		t.Errorf("Message = %q", report.Checks[0].Message)
	}
}

func TestRegistry_Uptime(t *testing.T) {
	registry := NewRegistry("cardano", "1.0.0")
	time.Sleep(10 * time.Millisecond)

	if report := registry.Check(context.Background()); report.Uptime < 10*time.Millisecond {
		t.Errorf("Uptime = %v, expected >= 10ms", report.Uptime)
	}
}

func TestReport_String(t *testing.T) {
	report := &Report{
		Service: "cardano",
		Status:  StatusDegraded,
		Uptime:  90 * time.Minute,
		Checks:  []CheckResult{{}, {}},
	}

	want := "Service: cardano, Status: degraded, Uptime: 1h30m0s, Checks: 2"
	if got := report.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPingCheck(t *testing.T) {
	ok := PingCheck("history", func(ctx context.Context) error { return nil })
	if ok.Name() != "history" {
		t.Errorf("Name() = %v, want history", ok.Name())
	}
	if got := ok.Check(context.Background()).Status; got != StatusHealthy {
		t.Errorf("Status = %v, want healthy", got)
	}

	failing := PingCheck("history", func(ctx context.Context) error { return errors.New("database is locked") })
	result := failing.Check(context.Background())
	if result.Status != StatusUnhealthy {
		t.Errorf("Status = %v, want unhealthy", result.Status)
	}
	if result.Message != "database is locked" {
		t.Errorf("Message = %q", result.Message)
	}
}

func TestCountCheck(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  Status
	}{
		{"enough", 40, StatusHealthy},
		{"exact", 1, StatusHealthy},
		{"empty", 0, StatusDegraded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := CountCheck("catalog", 1, func() int { return tt.count })
			result := checker.Check(context.Background())
			if result.Status != tt.want {
				t.Errorf("Status = %v, want %v", result.Status, tt.want)
			}
			if result.Details["count"] != tt.count {
				t.Errorf("Details[count] = %v", result.Details["count"])
			}
		})
	}
}

func TestRegistry_Publish(t *testing.T) {
	registry := NewRegistry("cardano", "1.0.0")
	registry.Register(CountCheck("catalog", 1, func() int { return 0 }))

	published := map[string]bool{}
	set := func(service string, serving bool) { published[service] = serving }

	report := registry.Publish(context.Background(), set, "", "cardano.v1.Calculator")
	if report.Status != StatusDegraded {
		t.Errorf("Status = %v, want degraded", report.Status)
	}
	if !published[""] || !published["cardano.v1.Calculator"] {
		t.Errorf("degraded should still publish serving: %v", published)
	}

	registry.Register(PingCheck("history", func(ctx context.Context) error { return errors.New("closed") }))
	registry.Publish(context.Background(), set, "cardano.v1.Calculator")
	if published["cardano.v1.Calculator"] {
		t.Error("unhealthy should publish not serving")
	}
}
