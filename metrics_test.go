package goSession

import (
	"context"
	"sync"
	"testing"
)

func TestMetricsDisabledIsNoOp(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: false})
	m.Inc(MetricLoginSuccess)
	if m.Value(MetricLoginSuccess) != 0 {
		t.Fatal("disabled metrics must not record")
	}
	if m.Enabled() {
		t.Fatal("Enabled must report false")
	}

	var nilMetrics *Metrics
	nilMetrics.Inc(MetricLoginSuccess)
	if nilMetrics.Value(MetricLoginSuccess) != 0 {
		t.Fatal("nil metrics must read zero")
	}
	if got := nilMetrics.Snapshot(); len(got.Counters) != 0 {
		t.Fatal("nil metrics snapshot must be empty")
	}
}

func TestMetricsCountsConcurrently(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Inc(MetricGuardAllow)
			}
		}()
	}
	wg.Wait()

	if got := m.Value(MetricGuardAllow); got != 1000 {
		t.Fatalf("expected 1000, got %d", got)
	}

	snap := m.Snapshot()
	if snap.Counters[MetricGuardAllow] != 1000 {
		t.Fatalf("snapshot disagrees: %d", snap.Counters[MetricGuardAllow])
	}
	if snap.Counters[MetricLogout] != 0 {
		t.Fatalf("untouched counter must be zero, got %d", snap.Counters[MetricLogout])
	}
}

func TestMetricsIgnoresUnknownID(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})
	m.Inc(MetricID(1000))
	if m.Value(MetricID(1000)) != 0 {
		t.Fatal("out-of-range IDs must be ignored")
	}
}

func TestSessionRecordsLifecycleMetrics(t *testing.T) {
	backend := newFakeBackend()
	session, _ := newTestSession(t, backend, func(b *Builder) {
		b.WithMetricsEnabled(true)
	})

	if _, err := session.Login(context.Background(), "ada@acme.com", "pw"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	session.Logout()
	session.HydrateFromStorage(context.Background())

	snap := session.MetricsSnapshot()
	if snap.Counters[MetricLoginSuccess] != 1 {
		t.Fatalf("login not counted: %v", snap.Counters)
	}
	if snap.Counters[MetricIdentityRefreshSuccess] != 1 {
		t.Fatalf("identity refresh not counted: %v", snap.Counters)
	}
	if snap.Counters[MetricLogout] != 1 {
		t.Fatalf("logout not counted: %v", snap.Counters)
	}
	if snap.Counters[MetricHydrateNoCredentials] != 1 {
		t.Fatalf("empty hydrate not counted: %v", snap.Counters)
	}
}
