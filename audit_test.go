package goSession

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	internalaudit "github.com/MrEthical07/goSession/internal/audit"
)

func collectEvents(t *testing.T, sink *ChannelSink, want int) []AuditEvent {
	t.Helper()
	events := make([]AuditEvent, 0, want)
	timeout := time.After(2 * time.Second)
	for len(events) < want {
		select {
		case event := <-sink.Events():
			events = append(events, event)
		case <-timeout:
			t.Fatalf("timed out after %d of %d events", len(events), want)
		}
	}
	return events
}

func TestSessionEmitsLifecycleEvents(t *testing.T) {
	backend := newFakeBackend()
	sink := NewChannelSink(16)
	session, _ := newTestSession(t, backend, func(b *Builder) {
		cfg := b.config
		cfg.Audit.Enabled = true
		b.WithConfig(cfg).WithAuditSink(sink)
	})

	if _, err := session.Login(context.Background(), "ada@acme.com", "pw"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	session.Logout()

	events := collectEvents(t, sink, 3)

	if events[0].EventType != EventLoginSuccess || !events[0].Success {
		t.Fatalf("unexpected first event: %+v", events[0])
	}
	if events[1].EventType != EventIdentityRefreshSuccess {
		t.Fatalf("unexpected second event: %+v", events[1])
	}
	if events[1].PrincipalID != "u1" || events[1].OrganizationID != "o1" {
		t.Fatalf("identity refresh event missing identity: %+v", events[1])
	}
	if events[2].EventType != EventLogout {
		t.Fatalf("unexpected third event: %+v", events[2])
	}
	if events[2].PrincipalID != "" {
		t.Fatalf("logout event must not carry a stale principal: %+v", events[2])
	}
}

func TestFailureEventCarriesError(t *testing.T) {
	backend := newFakeBackend()
	backend.set(func(b *fakeBackend) {
		b.loginStatus = 401
		b.loginBody = `{"status":"error","data":{},"message":"Invalid credentials"}`
	})
	sink := NewChannelSink(16)
	session, _ := newTestSession(t, backend, func(b *Builder) {
		cfg := b.config
		cfg.Audit.Enabled = true
		b.WithConfig(cfg).WithAuditSink(sink)
	})

	session.Login(context.Background(), "ada@acme.com", "bad")

	events := collectEvents(t, sink, 1)
	if events[0].EventType != EventLoginFailure || events[0].Success {
		t.Fatalf("unexpected event: %+v", events[0])
	}
	if events[0].Error != "Invalid credentials" {
		t.Fatalf("event must carry the failure reason: %+v", events[0])
	}
}

func TestDisabledAuditIsSilent(t *testing.T) {
	backend := newFakeBackend()
	sink := NewChannelSink(16)
	session, _ := newTestSession(t, backend, func(b *Builder) {
		b.WithAuditSink(sink) // Audit.Enabled stays false
	})

	if _, err := session.Login(context.Background(), "ada@acme.com", "pw"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	select {
	case event := <-sink.Events():
		t.Fatalf("disabled audit emitted %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
	if session.AuditDropped() != 0 {
		t.Fatal("disabled audit must not count drops")
	}
}

func TestJSONWriterSinkWritesOneLinePerEvent(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONWriterSink(&buf)

	sink.Emit(context.Background(), AuditEvent{
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		EventType: EventLoginSuccess,
		Success:   true,
	})
	sink.Emit(context.Background(), AuditEvent{
		EventType: EventLogout,
		Success:   true,
	})

	scanner := bufio.NewScanner(&buf)
	var lines int
	for scanner.Scan() {
		lines++
		var event AuditEvent
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			t.Fatalf("line %d not valid JSON: %v", lines, err)
		}
	}
	if lines != 2 {
		t.Fatalf("expected 2 lines, got %d", lines)
	}
}

func TestDispatcherDrainsOnClose(t *testing.T) {
	sink := internalaudit.NewChannelSink(8)
	d := internalaudit.NewDispatcher(internalaudit.Config{
		Enabled:    true,
		BufferSize: 8,
		DropIfFull: true,
	}, sink)

	for i := 0; i < 4; i++ {
		d.Emit(context.Background(), internalaudit.Event{EventType: EventLogout})
	}
	d.Close()

	received := 0
	for {
		select {
		case <-sink.Events():
			received++
		default:
			if received != 4 {
				t.Fatalf("expected 4 drained events, got %d", received)
			}
			return
		}
	}
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	// A slow sink with a buffer of one fills the channel immediately.
	d := internalaudit.NewDispatcher(internalaudit.Config{
		Enabled:    true,
		BufferSize: 1,
		DropIfFull: true,
	}, slowSink{})
	defer d.Close()

	for i := 0; i < 50; i++ {
		d.Emit(context.Background(), internalaudit.Event{EventType: EventLogout})
	}
	if d.Dropped() == 0 {
		t.Fatal("expected drops under backpressure")
	}
}

type slowSink struct{}

func (slowSink) Emit(context.Context, internalaudit.Event) {
	time.Sleep(10 * time.Millisecond)
}
