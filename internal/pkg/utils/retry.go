package utils

import (
	"context"
	"thirdopinion-service/internal/pkg/exceptions"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryWithBackoff runs op under an exponential backoff policy until it
// succeeds, the context is cancelled, or maxElapsed is exceeded.
func RetryWithBackoff(ctx context.Context, maxElapsed time.Duration, op func() error) error {
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = maxElapsed
	return backoff.Retry(op, backoff.WithContext(policy, ctx))
}

// WaitForCondition polls probe at a fixed interval until it reports done or
// the wall-clock timeout elapses. waitingFor names the awaited resource in
// the timeout error.
func WaitForCondition(ctx context.Context, waitingFor string, interval, timeout time.Duration, probe func(context.Context) (bool, error)) error {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		done, err := probe(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if time.Now().After(deadline) {
			return exceptions.ErrPollTimeout(waitingFor, timeout.String())
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
