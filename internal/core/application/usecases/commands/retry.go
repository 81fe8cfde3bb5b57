package commands

import (
	"context"
	"errors"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/metrics"

	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultMaxAttempts   = 3
	DefaultRetryInterval = 20 * time.Millisecond
)

// RetryPolicy bounds how often a command is re-run from a fresh read after losing
// an optimistic-concurrency race.
type RetryPolicy struct {
	MaxAttempts int
	Interval    time.Duration
}

// DefaultRetryPolicy allows three attempts with a short constant pause.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: DefaultMaxAttempts, Interval: DefaultRetryInterval}
}

// run calls attempt until it succeeds, fails with anything but a concurrent
// modification, or the attempts are used up. The last ConcurrentModificationError
// is returned in that case.
func (p RetryPolicy) run(ctx context.Context, attempt func() error) error {
	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	operation := func() error {
		err := attempt()
		if err == nil {
			return nil
		}
		if errors.Is(err, errs.ErrConcurrentModification) {
			return err
		}
		return backoff.Permanent(err)
	}

	notify := func(error, time.Duration) {
		metrics.RecordWriteConflict("retried")
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(p.Interval), uint64(maxAttempts-1)),
		ctx,
	)

	err := backoff.RetryNotify(operation, policy, notify)
	if errors.Is(err, errs.ErrConcurrentModification) {
		metrics.RecordWriteConflict("exhausted")
	}
	return err
}
