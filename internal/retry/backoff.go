package retry

import "time"

const (
	DefaultInitialDelay = 50 * time.Millisecond
	DefaultMaxDelay     = time.Second
)

// Backoff doubles the wait after every failed attempt, capped at a maximum.
// Lock holders on a local disk let go quickly, so delays stay short.
type Backoff struct {
	initialDelay time.Duration
	maxDelay     time.Duration
	maxAttempts  int
}

// BackoffOption configures a Backoff.
type BackoffOption func(*Backoff)

// WithInitialDelay sets the wait before the first retry.
func WithInitialDelay(d time.Duration) BackoffOption {
	return func(b *Backoff) {
		b.initialDelay = d
	}
}

// WithMaxDelay caps the wait between attempts.
func WithMaxDelay(d time.Duration) BackoffOption {
	return func(b *Backoff) {
		b.maxDelay = d
	}
}

// NewBackoff creates a doubling backoff allowing maxAttempts retries.
func NewBackoff(maxAttempts int, opts ...BackoffOption) *Backoff {
	b := &Backoff{
		initialDelay: DefaultInitialDelay,
		maxDelay:     DefaultMaxDelay,
		maxAttempts:  maxAttempts,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NextDelay returns initialDelay * 2^attempt, never more than maxDelay.
func (b *Backoff) NextDelay(attempt int) time.Duration {
	delay := b.initialDelay
	for i := 0; i < attempt; i++ {
		if delay >= b.maxDelay/2 {
			return b.maxDelay
		}
		delay *= 2
	}
	if delay > b.maxDelay {
		return b.maxDelay
	}
	return delay
}

// MaxAttempts returns the maximum number of retry attempts.
func (b *Backoff) MaxAttempts() int {
	return b.maxAttempts
}
