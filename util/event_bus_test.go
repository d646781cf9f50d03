package util

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/backoffice/model"
)

func TestEventBus_PublishReachesEverySubscriber(t *testing.T) {
	bus := NewEventBus()
	received := make(chan string, 2)

	bus.Subscribe("group.created", func(ctx context.Context, e Event) error {
		received <- "graph:" + e.Payload.(model.Group).ID
		return nil
	})
	bus.Subscribe("group.created", func(ctx context.Context, e Event) error {
		received <- "notify:" + e.Payload.(model.Group).ID
		return nil
	})
	bus.Subscribe("user.created", func(ctx context.Context, e Event) error {
		t.Error("unrelated subscriber invoked")
		return nil
	})

	bus.Publish(context.Background(), "group.created", model.Group{ID: "g1"})

	got := make([]string, 0, 2)
	for i := 0; i < 2; i++ {
		select {
		case v := <-received:
			got = append(got, v)
		case <-time.After(time.Second):
			require.FailNow(t, "subscriber not invoked")
		}
	}
	assert.ElementsMatch(t, []string{"graph:g1", "notify:g1"}, got)
}

func TestEventBus_FailuresCarryEventType(t *testing.T) {
	bus := NewEventBus()
	boom := errors.New("boom")
	bus.Subscribe("user.created", func(ctx context.Context, e Event) error { return boom })
	bus.Subscribe("group.created", func(ctx context.Context, e Event) error { panic("nil payload") })

	bus.Publish(context.Background(), "user.created", nil)
	bus.Publish(context.Background(), "group.created", nil)
	require.NoError(t, bus.Drain(context.Background()))

	byType := map[string]error{}
	for i := 0; i < 2; i++ {
		select {
		case err := <-bus.failures:
			byType[err.EventType] = err
		case <-time.After(time.Second):
			require.FailNow(t, "failure not reported")
		}
	}
	assert.ErrorIs(t, byType["user.created"], boom)
	assert.Contains(t, byType["group.created"].Error(), "panic: nil payload")

	var handlerErr *HandlerError
	require.ErrorAs(t, byType["user.created"], &handlerErr)
	assert.Equal(t, "user.created", handlerErr.EventType)
}

func TestEventBus_Drain(t *testing.T) {
	t.Run("waits for running handlers", func(t *testing.T) {
		bus := NewEventBus()
		var handled atomic.Int32
		bus.Subscribe("action.recorded", func(ctx context.Context, e Event) error {
			time.Sleep(20 * time.Millisecond)
			handled.Add(1)
			return nil
		})

		bus.Publish(context.Background(), "action.recorded", nil)
		bus.Publish(context.Background(), "action.recorded", nil)

		require.NoError(t, bus.Drain(context.Background()))
		assert.Equal(t, int32(2), handled.Load())
	})

	t.Run("gives up when ctx ends", func(t *testing.T) {
		bus := NewEventBus()
		release := make(chan struct{})
		defer close(release)
		bus.Subscribe("action.recorded", func(ctx context.Context, e Event) error {
			<-release
			return nil
		})
		bus.Publish(context.Background(), "action.recorded", nil)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		assert.ErrorIs(t, bus.Drain(ctx), context.DeadlineExceeded)
	})

	t.Run("nothing published", func(t *testing.T) {
		assert.NoError(t, NewEventBus().Drain(context.Background()))
	})
}

func TestNotificationService(t *testing.T) {
	n := NewNotificationService("noreply@example.com")
	ctx := context.Background()

	assert.NoError(t, n.SendVerificationCode(ctx, model.User{Username: "alice", Email: "alice@example.com"}, "123456"))
	assert.Error(t, n.SendVerificationCode(ctx, model.User{Username: "alice"}, "123456"))
	assert.NoError(t, n.NotifyGroupChange(ctx, "created", model.Group{ID: "g1"}))
	assert.Error(t, n.NotifyGroupChange(ctx, "archived", model.Group{ID: "g1"}))
}
