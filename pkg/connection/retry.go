package connection

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// DefaultMaxAttempts is the default number of reconnect attempts.
const DefaultMaxAttempts = 5

// ErrRetriesExhausted is returned once a RetryPolicy allows no more attempts.
var ErrRetriesExhausted = errors.New("reconnect attempts exhausted")

// RetryPolicy bounds reconnect attempts and spaces them out.
type RetryPolicy struct {
	// MaxAttempts is the number of attempts allowed between successful
	// connections. Must be positive.
	MaxAttempts int `yaml:"max_attempts"`

	// Backoff shapes the delay before each attempt.
	Backoff BackoffConfig `yaml:"backoff"`
}

// DefaultRetryPolicy returns the default policy: five attempts with the
// default backoff.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: DefaultMaxAttempts,
		Backoff:     DefaultBackoffConfig(),
	}
}

// Validate checks the policy.
func (p RetryPolicy) Validate() error {
	if p.MaxAttempts <= 0 {
		return fmt.Errorf("max attempts must be positive, got %d", p.MaxAttempts)
	}
	if p.Backoff.Jitter < 0 {
		return fmt.Errorf("jitter must not be negative")
	}
	return nil
}

// Retrier tracks attempts against a RetryPolicy. Safe for concurrent use.
type Retrier struct {
	policy  RetryPolicy
	backoff *Backoff

	mu       sync.Mutex
	attempts int
}

// NewRetrier creates a retrier for policy.
func NewRetrier(policy RetryPolicy) *Retrier {
	return &Retrier{
		policy:  policy,
		backoff: NewBackoffWithConfig(policy.Backoff),
	}
}

// Next counts an attempt and returns the delay to wait before making it.
// ok is false when the policy allows no more attempts; the counter is then
// left unchanged.
func (r *Retrier) Next() (delay time.Duration, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.attempts >= r.policy.MaxAttempts {
		return 0, false
	}
	r.attempts++
	return r.backoff.Next(), true
}

// Attempts returns the attempts made since the last Reset.
func (r *Retrier) Attempts() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.attempts
}

// Remaining returns how many attempts are left.
func (r *Retrier) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.policy.MaxAttempts - r.attempts
}

// Reset clears the attempt counter and the backoff.
func (r *Retrier) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts = 0
	r.backoff.Reset()
}

// Sleep waits for d or until ctx is done, returning ctx.Err() in the
// latter case.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
