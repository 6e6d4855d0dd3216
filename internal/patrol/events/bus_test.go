package events

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/GuardPatrol/internal/patrol/core"
)

type recordingSubscriber struct {
	id       string
	interest string
	mu       sync.Mutex
	received []Event
}

func (s *recordingSubscriber) ID() string { return s.id }

func (s *recordingSubscriber) InterestedIn(eventType string) bool {
	return s.interest == "" || s.interest == eventType
}

func (s *recordingSubscriber) HandleEvent(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.received = append(s.received, e)
}

func TestEventBus(t *testing.T) {
	bus := NewEventBus()

	var receivedEvent Event
	bus.SubscribeFunc(TypeSimulationCompleted, func(e Event) {
		receivedEvent = e
	})

	bus.Publish(NewSimulationCompletedEvent("test-run", "exited", 10, 6))

	if assert.NotNil(t, receivedEvent, "Event should have been received") {
		assert.Equal(t, TypeSimulationCompleted, receivedEvent.Type())
		assert.Equal(t, "test-run", receivedEvent.RunID())
		assert.False(t, receivedEvent.Timestamp().IsZero())
	}
}

func TestEventBusSubscriberFiltering(t *testing.T) {
	bus := NewEventBus()
	all := &recordingSubscriber{id: "all"}
	searchOnly := &recordingSubscriber{id: "search", interest: TypeSearchCompleted}
	bus.Subscribe(all)
	bus.Subscribe(searchOnly)
	assert.Equal(t, 2, bus.GetSubscriberCount())

	bus.Publish(NewCandidateEvaluatedEvent("r", core.NewCoordinate(1, 1), "exited", 3))
	bus.Publish(NewSearchCompletedEvent("r", 1, 0, 0))

	assert.Len(t, all.received, 2)
	assert.Len(t, searchOnly.received, 1)

	bus.Unsubscribe("all")
	assert.Equal(t, 1, bus.GetSubscriberCount())
	bus.Publish(NewSearchCompletedEvent("r", 1, 0, 0))
	assert.Len(t, all.received, 2)
	assert.Len(t, searchOnly.received, 2)
}

func TestEventBusRecoversFromPanics(t *testing.T) {
	bus := NewEventBus()

	called := false
	bus.SubscribeFunc(TypeSearchCompleted, func(e Event) { panic("boom") })
	bus.SubscribeFunc(TypeSearchCompleted, func(e Event) { called = true })
	assert.Equal(t, 2, bus.GetFuncHandlerCount(TypeSearchCompleted))

	assert.NotPanics(t, func() {
		bus.Publish(NewSearchCompletedEvent("r", 0, 0, 0))
	})
	assert.True(t, called, "handler after a panicking one should still run")
}

func TestEventBusConcurrentPublish(t *testing.T) {
	bus := NewEventBus()
	var count int64
	bus.SubscribeFunc(TypeCandidateEvaluated, func(e Event) {
		atomic.AddInt64(&count, 1)
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				bus.Publish(NewCandidateEvaluatedEvent("r", core.NewCoordinate(i, j), "exited", j))
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(400), atomic.LoadInt64(&count))
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NotPanics(t, func() { p.Publish(NewSearchCompletedEvent("r", 0, 0, 0)) })
}
