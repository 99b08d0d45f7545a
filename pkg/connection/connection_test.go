package connection

import (
	"context"
	"testing"
	"time"
)

func TestBackoff(t *testing.T) {
	t.Run("DefaultSequence", func(t *testing.T) {
		b := NewBackoff()

		expected := []time.Duration{
			1 * time.Second,
			2 * time.Second,
			4 * time.Second,
			8 * time.Second,
			16 * time.Second,
			30 * time.Second,
			30 * time.Second, // stays at max
		}

		for i, exp := range expected {
			base := b.Current()
			_ = b.Next()
			if base != exp {
				t.Errorf("Attempt %d: base = %v, want %v", i, base, exp)
			}
		}
	})

	t.Run("Jitter", func(t *testing.T) {
		seen := make(map[time.Duration]bool)
		for range 10 {
			d := NewBackoff().Next()
			if d < InitialBackoff || d > InitialBackoff+InitialBackoff/4 {
				t.Errorf("first delay %v outside [1s, 1.25s]", d)
			}
			seen[d] = true
		}
		if len(seen) < 2 {
			t.Error("jitter produced identical delays")
		}
	})

	t.Run("LongRunStaysCapped", func(t *testing.T) {
		b := NewBackoffWithConfig(BackoffConfig{Initial: time.Second, Max: 4 * time.Second, Multiplier: 3})
		for range 200 {
			b.Next()
		}
		if got := b.Current(); got != 4*time.Second {
			t.Errorf("Current() = %v after many attempts, want 4s", got)
		}
	})

	t.Run("Reset", func(t *testing.T) {
		b := NewBackoff()
		for i := 0; i < 5; i++ {
			b.Next()
		}
		if b.Current() <= InitialBackoff {
			t.Error("Backoff should have increased")
		}

		b.Reset()

		if b.Current() != InitialBackoff {
			t.Errorf("Current() = %v after reset, want %v", b.Current(), InitialBackoff)
		}
		if b.Attempts() != 0 {
			t.Errorf("Attempts() = %d after reset, want 0", b.Attempts())
		}
	})

	t.Run("CustomConfig", func(t *testing.T) {
		b := NewBackoffWithConfig(BackoffConfig{
			Initial:    100 * time.Millisecond,
			Max:        500 * time.Millisecond,
			Multiplier: 2.0,
		})

		expected := []time.Duration{
			100 * time.Millisecond,
			200 * time.Millisecond,
			400 * time.Millisecond,
			500 * time.Millisecond,
			500 * time.Millisecond,
		}
		for i, exp := range expected {
			if got := b.Next(); got != exp {
				t.Errorf("Attempt %d: got %v, want %v", i, got, exp)
			}
		}
	})

	t.Run("MaxBelowInitial", func(t *testing.T) {
		b := NewBackoffWithConfig(BackoffConfig{Initial: time.Second, Max: time.Millisecond})
		if got := b.Next(); got != time.Second {
			t.Errorf("Next() = %v, want 1s", got)
		}
		if got := b.Current(); got != time.Second {
			t.Errorf("Current() = %v, want 1s", got)
		}
	})
}

func TestRetryPolicyValidate(t *testing.T) {
	if err := DefaultRetryPolicy().Validate(); err != nil {
		t.Errorf("default policy invalid: %v", err)
	}
	if err := (RetryPolicy{}).Validate(); err == nil {
		t.Error("zero MaxAttempts should be rejected")
	}
	if err := (RetryPolicy{MaxAttempts: 1, Backoff: BackoffConfig{Jitter: -1}}).Validate(); err == nil {
		t.Error("negative jitter should be rejected")
	}
}

func TestRetrier(t *testing.T) {
	r := NewRetrier(RetryPolicy{
		MaxAttempts: 3,
		Backoff:     BackoffConfig{Initial: 10 * time.Millisecond, Max: time.Second, Multiplier: 2},
	})

	want := []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 40 * time.Millisecond}
	for i, exp := range want {
		d, ok := r.Next()
		if !ok {
			t.Fatalf("attempt %d refused", i+1)
		}
		if d != exp {
			t.Errorf("attempt %d: delay %v, want %v", i+1, d, exp)
		}
	}

	if _, ok := r.Next(); ok {
		t.Error("fourth attempt should be refused")
	}
	if r.Attempts() != 3 {
		t.Errorf("Attempts() = %d, want 3", r.Attempts())
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", r.Remaining())
	}

	r.Reset()
	d, ok := r.Next()
	if !ok || d != 10*time.Millisecond {
		t.Errorf("after Reset: Next() = %v, %v", d, ok)
	}
}

func TestSleep(t *testing.T) {
	start := time.Now()
	if err := Sleep(context.Background(), 20*time.Millisecond); err != nil {
		t.Fatalf("Sleep: %v", err)
	}
	if time.Since(start) < 20*time.Millisecond {
		t.Error("Sleep returned early")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Sleep(ctx, time.Hour); err != context.Canceled {
		t.Errorf("Sleep on cancelled ctx = %v, want context.Canceled", err)
	}
	if err := Sleep(ctx, 0); err != context.Canceled {
		t.Errorf("Sleep(0) on cancelled ctx = %v, want context.Canceled", err)
	}
}
