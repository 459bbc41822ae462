package retry

import (
	"context"
	"errors"
	"net/http"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() Config {
	return Config{
		MaxAttempts:    3,
		InitialDelay:   time.Millisecond,
		MaxDelay:       5 * time.Millisecond,
		Multiplier:     2.0,
		JitterFraction: 0,
	}
}

func TestWithBackoff_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := WithBackoff(context.Background(), fastConfig(), func() error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithBackoff_RetriesRetryableError(t *testing.T) {
	calls := 0
	err := WithBackoff(context.Background(), fastConfig(), func() error {
		calls++
		if calls < 3 {
			return syscall.ECONNRESET
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithBackoff_AbortsOnNonRetryableError(t *testing.T) {
	wantErr := errors.New("bad request")
	calls := 0
	err := WithBackoff(context.Background(), fastConfig(), func() error {
		calls++
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)
	assert.Equal(t, 1, calls)
}

func TestWithBackoff_ExhaustsAttempts(t *testing.T) {
	calls := 0
	err := WithBackoff(context.Background(), fastConfig(), func() error {
		calls++
		return syscall.ECONNREFUSED
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, syscall.ECONNREFUSED)
	assert.Equal(t, 3, calls)
}

func TestWithBackoff_RespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithBackoff(ctx, fastConfig(), func() error {
		return syscall.ECONNRESET
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"context canceled", context.Canceled, false},
		{"deadline exceeded", context.DeadlineExceeded, false},
		{"connection refused", syscall.ECONNREFUSED, true},
		{"plain error", errors.New("oops"), false},
		{"http 500", &HTTPError{StatusCode: 500, Message: "server error"}, true},
		{"http 429", &HTTPError{StatusCode: http.StatusTooManyRequests, Message: "slow down"}, true},
		{"http 400", &HTTPError{StatusCode: 400, Message: "bad request"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}
