package sse

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_BroadcastsToEverySubscriber(t *testing.T) {
	hub := NewHub()
	a, cleanupA := hub.Subscribe("user-a")
	defer cleanupA()
	b, cleanupB := hub.Subscribe("user-b")
	defer cleanupB()

	event := Event{Table: "employees", Action: ActionDeleted, ID: "emp-1"}
	hub.Publish(event)

	assert.Equal(t, event, <-a)
	assert.Equal(t, event, <-b)
}

func TestHub_CleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe("user-a")
	_, cleanup2 := hub.Subscribe("user-a")
	assert.Equal(t, 2, hub.SubscriberCount("user-a"))

	cleanup()
	cleanup()
	assert.Equal(t, 1, hub.SubscriberCount("user-a"))

	_, open := <-ch
	assert.False(t, open)

	cleanup2()
	assert.Zero(t, hub.TotalSubscribers())
}

func TestHub_PublishNeverBlocks(t *testing.T) {
	hub := NewHub()
	ch, cleanup := hub.Subscribe("slow")
	defer cleanup()

	for i := 0; i < hub.bufferSize*3; i++ {
		hub.Publish(Event{Table: "jobs", Action: ActionUpdated})
	}
	assert.Len(t, ch, hub.bufferSize)
}

func TestHub_ConcurrentPublishAndSubscribe(t *testing.T) {
	hub := NewHub()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, cleanup := hub.Subscribe("user")
			cleanup()
		}()
		go func() {
			defer wg.Done()
			hub.Publish(Event{Table: "contracts", Action: ActionCreated})
		}()
	}
	wg.Wait()
	require.Zero(t, hub.TotalSubscribers())
}
