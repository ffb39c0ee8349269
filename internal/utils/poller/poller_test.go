package poller

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollerRunsImmediately(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	called := make(chan struct{}, 1)
	p := NewPoller("test", time.Hour, func(ctx context.Context) error {
		called <- struct{}{}
		return nil
	})

	done := make(chan struct{})
	go func() {
		p.Start(ctx)
		close(done)
	}()

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("poll method was not called at startup")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after context cancellation")
	}
}

func TestPollerKeepsPollingAfterErrors(t *testing.T) {
	var calls atomic.Int32
	p := NewPoller("test", 5*time.Millisecond, func(ctx context.Context) error {
		calls.Add(1)
		return errors.New("boom")
	})

	done := make(chan struct{})
	go func() {
		p.Start(t.Context())
		close(done)
	}()

	require.Eventually(t, func() bool {
		return calls.Load() >= 3
	}, 2*time.Second, 5*time.Millisecond)

	p.Stop()
	<-done
}

func TestPollerRunsDoNotOverlap(t *testing.T) {
	var running, overlaps, calls atomic.Int32
	p := NewPoller("test", time.Millisecond, func(ctx context.Context) error {
		if running.Add(1) > 1 {
			overlaps.Add(1)
		}
		time.Sleep(10 * time.Millisecond)
		running.Add(-1)
		calls.Add(1)
		return nil
	})

	done := make(chan struct{})
	go func() {
		p.Start(t.Context())
		close(done)
	}()

	require.Eventually(t, func() bool {
		return calls.Load() >= 3
	}, 2*time.Second, time.Millisecond)

	p.Stop()
	<-done
	assert.Zero(t, overlaps.Load())
}
