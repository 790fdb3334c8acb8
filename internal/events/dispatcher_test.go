package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatcherInvokesSubscribersInOrder(t *testing.T) {
	d := NewInMemoryDispatcher()
	var seen []string

	d.Subscribe(EventTicketCreated, func(ctx context.Context, event Event) error {
		seen = append(seen, "first")
		return nil
	})
	d.Subscribe(EventTicketCreated, func(ctx context.Context, event Event) error {
		seen = append(seen, "second")
		return nil
	})
	d.Subscribe(EventTicketDeleted, func(ctx context.Context, event Event) error {
		seen = append(seen, "unrelated")
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventTicketCreated, TicketID: 1}))
	require.Equal(t, []string{"first", "second"}, seen)
}

func TestDispatcherSwallowsHandlerErrors(t *testing.T) {
	d := NewInMemoryDispatcher()
	invoked := false

	d.Subscribe(EventTicketUpdated, func(ctx context.Context, event Event) error {
		return errors.New("handler failure")
	})
	d.Subscribe(EventTicketUpdated, func(ctx context.Context, event Event) error {
		invoked = true
		return nil
	})

	require.NoError(t, d.Publish(context.Background(), Event{Type: EventTicketUpdated, TicketID: 2}))
	require.True(t, invoked)
}
