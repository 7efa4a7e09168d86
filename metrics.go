package goSession

import "sync/atomic"

// MetricID identifies a specific counter in the in-process metrics system.
type MetricID uint16

const (
	// MetricLoginSuccess counts logins the server accepted.
	MetricLoginSuccess MetricID = iota
	// MetricLoginFailure counts rejected or malformed logins.
	MetricLoginFailure
	// MetricRegisterSuccess counts accepted registrations.
	MetricRegisterSuccess
	// MetricRegisterFailure counts rejected registrations.
	MetricRegisterFailure
	// MetricIdentityRefreshSuccess counts identity fetches that confirmed a
	// principal.
	MetricIdentityRefreshSuccess
	// MetricIdentityRefreshFailure counts identity fetches that downgraded
	// the session.
	MetricIdentityRefreshFailure
	// MetricTokenRefreshSuccess counts access-token rotations.
	MetricTokenRefreshSuccess
	// MetricTokenRefreshFailure counts failed access-token rotations.
	MetricTokenRefreshFailure
	// MetricHydrateSkipped counts bootstrap calls that were already
	// hydrated.
	MetricHydrateSkipped
	// MetricHydrateNoCredentials counts bootstraps resolved without a
	// network call because no token was stored.
	MetricHydrateNoCredentials
	// MetricSessionInvalidated counts downgrades to unauthenticated state.
	MetricSessionInvalidated
	// MetricLogout counts explicit logouts.
	MetricLogout
	// MetricGuardAllow counts navigations the guard let through.
	MetricGuardAllow
	// MetricGuardRedirectSignin counts navigations redirected to sign-in.
	MetricGuardRedirectSignin
	// MetricGuardRedirectHome counts navigations redirected away from
	// public auth pages or denied routes.
	MetricGuardRedirectHome

	metricIDCount
)

type paddedCounter struct {
	value uint64
	_     [56]byte
}

// Metrics holds atomic counters for session and guard outcomes. A nil or
// disabled Metrics is a no-op on every path.
type Metrics struct {
	enabled  bool
	counters [metricIDCount]paddedCounter
}

// NewMetrics creates a [Metrics] instance configured by the given
// [MetricsConfig]. When Enabled is false, all operations are no-ops.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{enabled: cfg.Enabled}
}

// Enabled reports whether counters are recording.
func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// Inc increments the counter for id.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Value reads a single counter.
func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || id >= metricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

// MetricsSnapshot is a point-in-time deep copy of all counters.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// Snapshot copies every counter. Safe to call concurrently with Inc.
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil || !m.enabled {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}

	s := MetricsSnapshot{
		Counters: make(map[MetricID]uint64, int(metricIDCount)),
	}
	for id := MetricID(0); id < metricIDCount; id++ {
		s.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}
	return s
}
