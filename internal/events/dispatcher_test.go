package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatcherInvokesSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var seen []string
	dispatcher.Subscribe(EventApplicationSubmitted, func(_ context.Context, event Event) error {
		seen = append(seen, event.SubjectID)
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventApplicationSubmitted, SubjectID: "app-1"}))
	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventTaskAssigned, SubjectID: "task-1"}))
	require.Equal(t, []string{"app-1"}, seen)
}

func TestDispatcherContinuesPastHandlerError(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var called bool
	dispatcher.Subscribe(EventTaskAssigned, func(context.Context, Event) error {
		return errors.New("boom")
	})
	dispatcher.Subscribe(EventTaskAssigned, func(context.Context, Event) error {
		called = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventTaskAssigned}))
	require.True(t, called)
}
