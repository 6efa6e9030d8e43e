package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker(3, time.Minute, 1)
	for i := 0; i < 3; i++ {
		if err := b.Allow(); err != nil {
			t.Fatalf("closed breaker rejected request %d: %v", i, err)
		}
		b.RecordFailure()
	}

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected open circuit, got %v", err)
	}
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker(1, 10*time.Millisecond, 1)
	current := time.Now()
	b.now = func() time.Time { return current }

	b.RecordFailure()
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected open circuit, got %v", err)
	}

	current = current.Add(20 * time.Millisecond)
	if err := b.Allow(); err != nil {
		t.Fatalf("half-open probe rejected: %v", err)
	}
	b.RecordSuccess()

	if got := b.State(); got != CircuitStateClosed {
		t.Fatalf("state = %s, want closed", got)
	}
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker(1, 10*time.Millisecond, 1)
	current := time.Now()
	b.now = func() time.Time { return current }

	b.RecordFailure()
	current = current.Add(20 * time.Millisecond)
	if err := b.Allow(); err != nil {
		t.Fatalf("half-open probe rejected: %v", err)
	}
	b.RecordFailure()

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected reopened circuit, got %v", err)
	}
}

func TestNormalizeCircuitBreakerConfig(t *testing.T) {
	t.Parallel()

	got := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{Enabled: true})
	if got.FailureThreshold != 5 || got.OpenTimeout != 15*time.Second || got.HalfOpenMaxReq != 2 {
		t.Fatalf("defaults not applied: %+v", got)
	}
}
