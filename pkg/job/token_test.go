package job

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_SetIsIdempotent(t *testing.T) {
	token := NewToken()
	assert.False(t, token.IsSet())

	fired := 0
	token.onSet(func() { fired++ })

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token.Set()
		}()
	}
	wg.Wait()

	assert.True(t, token.IsSet())
	assert.Equal(t, 1, fired)
}

func TestToken_OnSetAfterSetRunsImmediately(t *testing.T) {
	token := NewToken()
	token.Set()

	fired := false
	token.onSet(func() { fired = true })
	assert.True(t, fired)
}

func TestToken_StopUnregisters(t *testing.T) {
	token := NewToken()
	fired := false
	stop := token.onSet(func() { fired = true })

	stop()
	token.Set()
	assert.False(t, fired)
}

func TestToken_DoesNotTouchJobFlag(t *testing.T) {
	token := NewToken()
	var ctxErr error
	j := New(RunnerFunc(func(ctx context.Context, j *Job) error {
		token.Set()
		<-ctx.Done()
		ctxErr = ctx.Err()
		return nil
	}), WithToken(token))

	require.NoError(t, j.RunSync())

	assert.ErrorIs(t, ctxErr, context.Canceled)
	assert.True(t, j.IsCancelled())
	assert.False(t, j.cancelled.Load(), "the token cancels without setting the job's own flag")
	assert.Equal(t, StateCancelled, j.State())
}

func TestRegistry_PublishOrder(t *testing.T) {
	var r registry
	var order []int

	for i := 0; i < 3; i++ {
		i := i
		_, err := r.subscribe(EventError, func(Event) { order = append(order, i) })
		require.NoError(t, err)
	}
	r.publish(Event{Kind: EventError})
	r.publish(Event{Kind: EventAsk})

	assert.Equal(t, []int{0, 1, 2}, order)

	r.close()
	r.publish(Event{Kind: EventError})
	assert.Len(t, order, 3)
}
