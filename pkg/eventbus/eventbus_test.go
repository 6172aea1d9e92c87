package eventbus

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEvent struct{ name string }

func (e testEvent) Name() string { return e.name }

func TestPublish_DeliversToSubscribers(t *testing.T) {
	bus := New(zap.NewNop())

	var first, second, other atomic.Int32
	bus.Subscribe("a", func(ctx context.Context, e Event) error { first.Add(1); return nil })
	bus.Subscribe("a", func(ctx context.Context, e Event) error { second.Add(1); return errors.New("ignored") })
	bus.Subscribe("b", func(ctx context.Context, e Event) error { other.Add(1); return nil })

	bus.Publish(context.Background(), testEvent{name: "a"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, bus.Wait(ctx))

	assert.Equal(t, int32(1), first.Load())
	assert.Equal(t, int32(1), second.Load())
	assert.Equal(t, int32(0), other.Load())
}

func TestPublish_ListenerContextOutlivesCaller(t *testing.T) {
	bus := New(zap.NewNop())

	errCh := make(chan error, 1)
	bus.Subscribe("a", func(ctx context.Context, e Event) error {
		errCh <- ctx.Err()
		return nil
	})

	caller, cancel := context.WithCancel(context.Background())
	cancel()
	bus.Publish(caller, testEvent{name: "a"})

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("listener not called")
	}
}

func TestPublish_RecoversPanics(t *testing.T) {
	bus := New(zap.NewNop())
	var called atomic.Bool
	bus.SubscribeMany(func(ctx context.Context, e Event) error {
		if e.Name() == "boom" {
			panic("boom")
		}
		called.Store(true)
		return nil
	}, "boom", "ok")

	bus.Publish(context.Background(), testEvent{name: "boom"})
	bus.Publish(context.Background(), testEvent{name: "ok"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, bus.Wait(ctx))
	assert.True(t, called.Load())
}
