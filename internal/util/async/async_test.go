package async

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_NoTasks(t *testing.T) {
	assert.NoError(t, Run(context.Background()))
}

func TestRun_AllSucceed(t *testing.T) {
	var count atomic.Int32
	task := Task{Name: "count", Func: func(context.Context) error {
		count.Add(1)
		return nil
	}}

	require.NoError(t, Run(context.Background(), task, task, task))
	assert.Equal(t, int32(3), count.Load())
}

func TestRun_SingleTaskError(t *testing.T) {
	cause := errors.New("boom")
	err := Run(context.Background(), Task{Name: "fetch the team", Func: func(context.Context) error {
		return cause
	}})

	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "failed to fetch the team: boom")
}

func TestRun_FirstErrorCancelsOthers(t *testing.T) {
	cause := errors.New("boom")
	var cancelled atomic.Bool

	err := Run(context.Background(),
		Task{Name: "fail", Func: func(context.Context) error { return cause }},
		Task{Name: "wait", Func: func(ctx context.Context) error {
			select {
			case <-ctx.Done():
				cancelled.Store(true)
				return ctx.Err()
			case <-time.After(5 * time.Second):
				return nil
			}
		}},
	)

	assert.ErrorIs(t, err, cause)
	assert.True(t, cancelled.Load())
}
