package infra_test

import (
	"errors"
	"testing"
	"time"

	"github.com/eder5on/Estoque/internal/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSMTP = errors.New("smtp: connection refused")

func failing() error { return errSMTP }
func succeeding() error { return nil }

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb := infra.NewCircuitBreaker(infra.CircuitBreakerConfig{
		FailureThreshold: 3,
		SuccessThreshold: 1,
		OpenTimeout:      time.Minute,
	})

	for i := 0; i < 3; i++ {
		require.ErrorIs(t, cb.Execute(failing), errSMTP)
	}
	assert.Equal(t, infra.CBOpen, cb.State())

	// Calls are rejected without invoking the function while open.
	assert.ErrorIs(t, cb.Execute(succeeding), infra.ErrCircuitOpen)
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb := infra.NewCircuitBreaker(infra.CircuitBreakerConfig{
		FailureThreshold: 1,
		SuccessThreshold: 2,
		OpenTimeout:      10 * time.Millisecond,
	})

	require.ErrorIs(t, cb.Execute(failing), errSMTP)
	require.Equal(t, infra.CBOpen, cb.State())

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, infra.CBHalfOpen, cb.State())

	require.NoError(t, cb.Execute(succeeding))
	assert.Equal(t, infra.CBHalfOpen, cb.State(), "one success is not enough to close")
	require.NoError(t, cb.Execute(succeeding))
	assert.Equal(t, infra.CBClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := infra.NewCircuitBreaker(infra.CircuitBreakerConfig{
		FailureThreshold: 1,
		SuccessThreshold: 2,
		OpenTimeout:      10 * time.Millisecond,
	})

	require.ErrorIs(t, cb.Execute(failing), errSMTP)
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, infra.CBHalfOpen, cb.State())

	require.ErrorIs(t, cb.Execute(failing), errSMTP)
	assert.Equal(t, infra.CBOpen, cb.State())
}
