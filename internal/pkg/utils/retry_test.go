package utils

import (
	"context"
	"errors"
	"testing"
	"thirdopinion-service/internal/pkg/exceptions"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryWithBackoff(t *testing.T) {
	t.Run("Flaky operation eventually succeeds", func(t *testing.T) {
		attempts := 0
		err := RetryWithBackoff(context.Background(), 5*time.Second, func() error {
			attempts++
			if attempts < 3 {
				return errors.New("transient failure")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("Persistent failure surfaces the last error", func(t *testing.T) {
		err := RetryWithBackoff(context.Background(), 50*time.Millisecond, func() error {
			return errors.New("still failing")
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "still failing")
	})

	t.Run("Cancelled context stops retrying", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := RetryWithBackoff(ctx, time.Minute, func() error {
			return errors.New("never succeeds")
		})
		require.Error(t, err)
	})
}

func TestWaitForCondition(t *testing.T) {
	t.Run("Succeeds once the probe reports done", func(t *testing.T) {
		probes := 0
		err := WaitForCondition(context.Background(), "test resource", time.Millisecond, time.Second, func(context.Context) (bool, error) {
			probes++
			return probes >= 3, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, probes)
	})

	t.Run("Times out with the awaited resource in the error", func(t *testing.T) {
		err := WaitForCondition(context.Background(), "test resource", time.Millisecond, 10*time.Millisecond, func(context.Context) (bool, error) {
			return false, nil
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Contains(t, customErr.DevMessage, "test resource")
	})

	t.Run("Probe error aborts immediately", func(t *testing.T) {
		probes := 0
		err := WaitForCondition(context.Background(), "test resource", time.Millisecond, time.Second, func(context.Context) (bool, error) {
			probes++
			return false, errors.New("probe broke")
		})
		require.Error(t, err)
		assert.Equal(t, 1, probes)
		assert.Contains(t, err.Error(), "probe broke")
	})
}
