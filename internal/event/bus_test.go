package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishReachesTopicSubscribersInOrder(t *testing.T) {
	bus := NewBus()
	var got []string

	bus.Subscribe(AuthChanged, func(Topic) { got = append(got, "first") })
	bus.Subscribe(AuthChanged, func(Topic) { got = append(got, "second") })
	bus.Subscribe(FavoritesChanged, func(Topic) { got = append(got, "other") })

	bus.Publish(AuthChanged)

	assert.Equal(t, []string{"first", "second"}, got)
}

func TestPublishPassesTheTopic(t *testing.T) {
	bus := NewBus()
	var seen Topic
	bus.Subscribe(BookingsChanged, func(tp Topic) { seen = tp })

	bus.Publish(BookingsChanged)

	assert.Equal(t, BookingsChanged, seen)
}

func TestPublishWithoutSubscribersIsSafe(t *testing.T) {
	bus := NewBus()
	assert.NotPanics(t, func() { bus.Publish(FavoritesChanged) })
}
