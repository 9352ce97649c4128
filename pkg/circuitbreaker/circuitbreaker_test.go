package circuitbreaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/drivehub/rental-service/pkg/circuitbreaker"
	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	successfulService := func() error {
		return nil
	}
	failingService := func() error {
		return errors.New("service error")
	}

	cb := circuitbreaker.New(10, 200*time.Millisecond, 0.30, 3)

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(successfulService))
	}

	// trip the breaker with failures
	var sawOpen bool
	for i := 0; i < 20; i++ {
		if err := cb.Call(failingService); errors.Is(err, circuitbreaker.ErrOpen) {
			sawOpen = true
		}
	}
	require.True(t, sawOpen)

	// still open before the timeout elapses
	require.ErrorIs(t, cb.Call(successfulService), circuitbreaker.ErrOpen)

	// half-open after the timeout, successes close it again
	time.Sleep(300 * time.Millisecond)
	for i := 0; i < 10; i++ {
		require.NoError(t, cb.Call(successfulService))
	}

	// a failure while half-open snaps back to open
	for i := 0; i < 20; i++ {
		_ = cb.Call(failingService)
	}
	time.Sleep(300 * time.Millisecond)
	require.Error(t, cb.Call(failingService))
	require.ErrorIs(t, cb.Call(successfulService), circuitbreaker.ErrOpen)
}
