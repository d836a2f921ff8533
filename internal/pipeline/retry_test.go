package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/closingdesk/contract-extract/internal/vision"
)

func fakeSleep(record *[]time.Duration) func(context.Context, time.Duration) error {
	return func(_ context.Context, d time.Duration) error {
		*record = append(*record, d)
		return nil
	}
}

func TestExponentialBackoffSchedule(t *testing.T) {
	backoff := ExponentialBackoff(time.Second, 10*time.Second)
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, time.Second},
		{2, 2 * time.Second},
		{3, 4 * time.Second},
		{4, 8 * time.Second},
		{5, 10 * time.Second}, // capped
		{9, 10 * time.Second},
	}
	for _, tt := range tests {
		if got := backoff(tt.attempt); got != tt.want {
			t.Errorf("backoff(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestRetryTransientThenSuccess(t *testing.T) {
	var slept []time.Duration
	p := DefaultRetryPolicy()
	p.Sleep = fakeSleep(&slept)

	calls := 0
	err := p.Do(context.Background(), nil, "test", func(context.Context) error {
		calls++
		if calls < 3 {
			return vision.Transient("test", 503, errors.New("unavailable"))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected eventual success, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
	want := []time.Duration{time.Second, 2 * time.Second}
	if len(slept) != len(want) || slept[0] != want[0] || slept[1] != want[1] {
		t.Fatalf("backoff delays = %v, want %v", slept, want)
	}
}

func TestRetryTerminalStopsImmediately(t *testing.T) {
	var slept []time.Duration
	p := DefaultRetryPolicy()
	p.Sleep = fakeSleep(&slept)

	calls := 0
	terminal := vision.Terminal("test", 400, errors.New("bad request"))
	err := p.Do(context.Background(), nil, "test", func(context.Context) error {
		calls++
		return terminal
	})
	if !errors.Is(err, terminal.Err) && err != terminal {
		t.Fatalf("expected the terminal error back, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("terminal error must not be retried, calls = %d", calls)
	}
	if len(slept) != 0 {
		t.Fatalf("no backoff should happen for terminal errors, slept %v", slept)
	}
}

func TestRetryExhaustionReturnsLastError(t *testing.T) {
	var slept []time.Duration
	p := DefaultRetryPolicy()
	p.Sleep = fakeSleep(&slept)

	calls := 0
	err := p.Do(context.Background(), nil, "test", func(context.Context) error {
		calls++
		return vision.Transient("test", 429, errors.New("rate limited"))
	})
	if err == nil {
		t.Fatal("expected error after exhaustion")
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want 3 (attempt budget)", calls)
	}
	if len(slept) != 2 {
		t.Fatalf("expected 2 backoff sleeps between 3 attempts, got %v", slept)
	}
}

func TestRetryCancelledContext(t *testing.T) {
	p := DefaultRetryPolicy()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := p.Do(ctx, nil, "test", func(context.Context) error {
		calls++
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("cancelled context must prevent the call, calls = %d", calls)
	}
}

func TestIsTransientClassification(t *testing.T) {
	if !vision.IsTransient(vision.Transient("x", 503, errors.New("boom"))) {
		t.Error("5xx should be transient")
	}
	if !vision.IsTransient(vision.Transient("x", 429, errors.New("slow down"))) {
		t.Error("429 should be transient")
	}
	if vision.IsTransient(vision.Terminal("x", 422, errors.New("schema"))) {
		t.Error("4xx should be terminal")
	}
	if vision.IsTransient(context.Canceled) {
		t.Error("cancellation is not retryable")
	}
	if !vision.IsTransient(errors.New("connection reset")) {
		t.Error("unclassified errors default to transient")
	}
}

func TestGate(t *testing.T) {
	g := NewGate(1)
	if err := g.Acquire(context.Background()); err != nil {
		t.Fatalf("first acquire: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := g.Acquire(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("second acquire on a full gate should block until deadline, got %v", err)
	}

	g.Release()
	if err := g.Acquire(context.Background()); err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
}
