package loop

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehsaniara/fmjob/pkg/errors"
	"github.com/ehsaniara/fmjob/pkg/logger"
)

func newTestLoop() *Loop {
	return New(WithLogger(logger.Discard()))
}

func TestLoop_RunsCallbacksInOrder(t *testing.T) {
	l := newTestLoop()
	var got []int

	for i := 0; i < 5; i++ {
		i := i
		require.NoError(t, l.Post(func() { got = append(got, i) }))
	}
	require.NoError(t, l.Post(l.Quit))

	assert.Equal(t, 6, l.Pending())
	require.NoError(t, l.Run(context.Background()))

	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
	assert.Equal(t, uint64(6), l.Dispatched())
	assert.Equal(t, 0, l.Pending())
}

func TestLoop_RunStopsOnContext(t *testing.T) {
	l := newTestLoop()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := l.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLoop_PostFromOtherGoroutines(t *testing.T) {
	l := newTestLoop()
	const n = 100

	var wg sync.WaitGroup
	count := 0
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, l.Post(func() { count++ }))
		}()
	}
	go func() {
		wg.Wait()
		_ = l.Post(l.Quit)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, l.Run(ctx))

	// every callback ran on the Run goroutine, so count needs no lock
	assert.Equal(t, n, count)
}

func TestLoop_PumpNestedInsideRun(t *testing.T) {
	l := newTestLoop()
	var order []string
	until := make(chan struct{})

	require.NoError(t, l.Post(func() {
		order = append(order, "outer-start")
		go func() {
			_ = l.Post(func() {
				order = append(order, "nested")
				assert.Equal(t, 2, l.Depth())
			})
			_ = l.Post(func() { close(until) })
		}()
		require.NoError(t, l.Pump(until))
		order = append(order, "outer-end")
	}))
	require.NoError(t, l.Post(l.Quit))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, l.Run(ctx))

	assert.Equal(t, []string{"outer-start", "nested", "outer-end"}, order)
	assert.Equal(t, 0, l.Depth())
}

func TestLoop_QuitDuringPumpStopsOuterRun(t *testing.T) {
	l := newTestLoop()
	until := make(chan struct{})
	ranAfter := false

	require.NoError(t, l.Post(func() {
		require.NoError(t, l.Post(func() {
			l.Quit()
			_ = l.Post(func() { ranAfter = true })
			close(until)
		}))
		require.NoError(t, l.Pump(until))
	}))

	require.NoError(t, l.Run(context.Background()))
	assert.False(t, ranAfter, "Run should stop right after the pumped Quit")
	assert.Equal(t, 1, l.Pending())
}

func TestLoop_Close(t *testing.T) {
	l := newTestLoop()
	require.NoError(t, l.Post(func() {}))
	require.NoError(t, l.Post(func() {}))

	l.Close()
	l.Close()

	assert.Equal(t, 0, l.Pending())
	assert.ErrorIs(t, l.Post(func() {}), errors.ErrLoopClosed)

	select {
	case <-l.Done():
	default:
		t.Fatal("Done should be closed after Close")
	}

	assert.ErrorIs(t, l.Run(context.Background()), errors.ErrLoopClosed)
	assert.ErrorIs(t, l.Pump(make(chan struct{})), errors.ErrLoopClosed)
}

func TestLoop_CloseWakesPump(t *testing.T) {
	l := newTestLoop()
	result := make(chan error, 1)

	go func() {
		result <- l.Pump(make(chan struct{}))
	}()

	time.Sleep(10 * time.Millisecond)
	l.Close()

	select {
	case err := <-result:
		assert.ErrorIs(t, err, errors.ErrLoopClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("Pump did not return after Close")
	}
}

func TestLoop_RecoversPanics(t *testing.T) {
	l := newTestLoop()
	after := false

	require.NoError(t, l.Post(func() { panic("boom") }))
	require.NoError(t, l.Post(func() { after = true }))
	require.NoError(t, l.Post(l.Quit))

	require.NoError(t, l.Run(context.Background()))
	assert.True(t, after)
	assert.Equal(t, uint64(3), l.Dispatched())
}

func TestLoop_PostNilIsIgnored(t *testing.T) {
	l := newTestLoop()
	assert.NoError(t, l.Post(nil))
	assert.Equal(t, 0, l.Pending())
}
