package httpx

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
)

func TestCircuitBreaker_Success(t *testing.T) {
	breaker := NewCircuitBreaker("success-test", 30*time.Second, 3)

	err := breaker.Execute(func() error {
		return nil
	})

	assert.NoError(t, err)
}

func TestCircuitBreaker_WrapsFailure(t *testing.T) {
	breaker := NewCircuitBreaker("failure-test", 30*time.Second, 3)
	testError := errors.New("upstream exploded")

	err := breaker.Execute(func() error {
		return testError
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "breaker (failure-test)")
	assert.Contains(t, err.Error(), testError.Error())
}

func TestCircuitBreaker_RecoversPanic(t *testing.T) {
	breaker := NewCircuitBreaker("panic-test", 30*time.Second, 3)

	err := breaker.Execute(func() error {
		panic("provider client blew up")
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "panic recovered:")
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	breaker := NewCircuitBreaker("open-test", 100*time.Millisecond, 1)

	err := breaker.Execute(func() error {
		return errors.New("first failure")
	})
	assert.Error(t, err)

	err = breaker.Execute(func() error {
		return errors.New("never reached")
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker is open")
}

func TestCircuitBreaker_ClosesAfterTimeout(t *testing.T) {
	breaker := NewCircuitBreaker("recovery-test", 50*time.Millisecond, 1)

	err := breaker.Execute(func() error {
		return errors.New("trigger failure")
	})
	assert.Error(t, err)

	time.Sleep(100 * time.Millisecond)

	err = breaker.Execute(func() error {
		return nil
	})
	assert.NoError(t, err)
}

func TestCircuitBreaker_CountsResetOnSuccess(t *testing.T) {
	breaker := NewCircuitBreaker("counts-test", 30*time.Second, 3)
	wrapper, _ := breaker.(*circuitBreakerWrapper) //nolint:errcheck

	_ = breaker.Execute(func() error { return nil })                //nolint:errcheck
	_ = breaker.Execute(func() error { return errors.New("fail") }) //nolint:errcheck
	_ = breaker.Execute(func() error { return nil })                //nolint:errcheck

	counts := wrapper.breaker.Counts()
	assert.Equal(t, uint32(3), counts.Requests)
	assert.Equal(t, uint32(1), counts.TotalFailures)
	assert.Equal(t, uint32(0), counts.ConsecutiveFailures)
	assert.Equal(t, gobreaker.StateClosed, wrapper.breaker.State())
}
