package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errTemporary = errors.New("temporary")

func always(error) bool { return true }

func TestDoIf_SucceedsAfterRetries(t *testing.T) {
	calls := 0
	err := DoIf(context.Background(), []time.Duration{time.Millisecond, time.Millisecond}, func(context.Context) error {
		calls++
		if calls < 3 {
			return errTemporary
		}
		return nil
	}, always)

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoIf_StopsOnNonRetriable(t *testing.T) {
	fatal := errors.New("fatal")
	calls := 0
	err := DoIf(context.Background(), []time.Duration{time.Millisecond}, func(context.Context) error {
		calls++
		return fatal
	}, func(err error) bool { return !errors.Is(err, fatal) })

	assert.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, calls)
}

func TestDoIf_ReturnsLastError(t *testing.T) {
	calls := 0
	err := DoIf(context.Background(), []time.Duration{time.Millisecond, time.Millisecond}, func(context.Context) error {
		calls++
		return errTemporary
	}, always)

	assert.ErrorIs(t, err, errTemporary)
	assert.Equal(t, 3, calls)
}

func TestDoIf_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := DoIf(ctx, []time.Duration{time.Hour}, func(context.Context) error {
		return errTemporary
	}, always)

	assert.ErrorIs(t, err, context.Canceled)
}
