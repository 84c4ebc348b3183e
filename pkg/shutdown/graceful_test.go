package shutdown_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gonotes/pkg/shutdown"
)

func TestWaitExecutesHooks(t *testing.T) {
	var calls atomic.Int32
	hook := func(context.Context) error {
		calls.Add(1)
		return nil
	}
	failing := func(context.Context) error {
		calls.Add(1)
		return errors.New("close failed")
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		shutdown.Wait(ctx, time.Second, hook, failing)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait did not return after cancellation")
	}
	assert.Equal(t, int32(2), calls.Load())
}

func TestWaitRespectsTimeout(t *testing.T) {
	var completed atomic.Bool
	slowHook := func(ctx context.Context) error {
		select {
		case <-time.After(2 * time.Second):
			completed.Store(true)
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	shutdown.Wait(ctx, 200*time.Millisecond, slowHook)

	assert.Less(t, time.Since(start), time.Second)
	assert.False(t, completed.Load())
}

func TestWaitRunsHooksConcurrently(t *testing.T) {
	sleeper := func(context.Context) error {
		time.Sleep(300 * time.Millisecond)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	shutdown.Wait(ctx, 2*time.Second, sleeper, sleeper, sleeper)

	assert.Less(t, time.Since(start), 800*time.Millisecond, "hooks appear to run sequentially")
}
