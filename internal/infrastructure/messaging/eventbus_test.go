package messaging

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/academy-hub/academy-record-keeper/internal/domain/shared"
)

func TestEventBus_SubscribeAndPublish(t *testing.T) {
	bus := NewInMemoryEventBus(DefaultConfig())
	defer bus.Close()

	var received []shared.Event
	err := bus.Subscribe(shared.EventUserRegistered, func(e shared.Event) error {
		received = append(received, e)
		return nil
	})
	assert.NoError(t, err)

	event := shared.NewUserRegisteredEvent("u-1", "alice", "Alice", "student")
	assert.NoError(t, bus.Publish(event))

	assert.Len(t, received, 1)
	assert.Equal(t, shared.EventUserRegistered, received[0].EventType())
	assert.Equal(t, "u-1", received[0].AggregateID())
}

func TestEventBus_TypeFiltering(t *testing.T) {
	bus := NewInMemoryEventBus(DefaultConfig())
	defer bus.Close()

	var enrolled int
	assert.NoError(t, bus.Subscribe(shared.EventStudentEnrolled, func(shared.Event) error {
		enrolled++
		return nil
	}))

	assert.NoError(t, bus.Publish(shared.NewUserRegisteredEvent("u-1", "alice", "Alice", "student")))
	assert.NoError(t, bus.Publish(shared.NewStudentEnrolledEvent("c-1", "Algebra", "u-1", "alice")))

	assert.Equal(t, 1, enrolled)
}

func TestEventBus_SubscribeAll(t *testing.T) {
	bus := NewInMemoryEventBus(DefaultConfig())
	defer bus.Close()

	var types []shared.EventType
	assert.NoError(t, bus.SubscribeAll(func(e shared.Event) error {
		types = append(types, e.EventType())
		return nil
	}))

	assert.NoError(t, bus.Publish(shared.NewCourseCreatedEvent("c-1", "Algebra", "t-1")))
	assert.NoError(t, bus.Publish(shared.NewGradeRecordedEvent("c-1", "s-1", 80, 1)))

	assert.Equal(t, []shared.EventType{shared.EventCourseCreated, shared.EventGradeRecorded}, types)
}

func TestEventBus_HandlerErrorDoesNotStopDelivery(t *testing.T) {
	bus := NewInMemoryEventBus(DefaultConfig())
	defer bus.Close()

	assert.NoError(t, bus.Subscribe(shared.EventCourseCreated, func(shared.Event) error {
		return errors.New("boom")
	}))

	var delivered bool
	assert.NoError(t, bus.Subscribe(shared.EventCourseCreated, func(shared.Event) error {
		delivered = true
		return nil
	}))

	assert.NoError(t, bus.Publish(shared.NewCourseCreatedEvent("c-1", "Algebra", "t-1")))

	assert.True(t, delivered)

	total, failed := bus.Metrics().Executions()
	assert.Equal(t, int64(2), total)
	assert.Equal(t, int64(1), failed)
}

func TestEventBus_NilArguments(t *testing.T) {
	bus := NewInMemoryEventBus(DefaultConfig())
	defer bus.Close()

	assert.ErrorIs(t, bus.Subscribe(shared.EventUserRegistered, nil), ErrNilHandler)
	assert.ErrorIs(t, bus.SubscribeAll(nil), ErrNilHandler)
	assert.ErrorIs(t, bus.Publish(nil), ErrNilEvent)
}

func TestEventBus_Closed(t *testing.T) {
	bus := NewInMemoryEventBus(DefaultConfig())
	assert.NoError(t, bus.Close())
	assert.NoError(t, bus.Close())

	err := bus.Publish(shared.NewCourseCreatedEvent("c-1", "Algebra", "t-1"))
	assert.ErrorIs(t, err, ErrEventBusClosed)

	err = bus.Subscribe(shared.EventCourseCreated, func(shared.Event) error { return nil })
	assert.ErrorIs(t, err, ErrEventBusClosed)
}

func TestEventBus_AsyncMode(t *testing.T) {
	bus := NewInMemoryEventBus(Config{AsyncMode: true, WorkerPoolSize: 2})

	var (
		mu    sync.Mutex
		count int
	)
	assert.NoError(t, bus.SubscribeAll(func(shared.Event) error {
		mu.Lock()
		defer mu.Unlock()
		count++
		return nil
	}))

	for i := 0; i < 10; i++ {
		assert.NoError(t, bus.Publish(shared.NewGradeRecordedEvent("c-1", "s-1", 80, 1)))
	}

	// Close waits for all pending async handlers.
	assert.NoError(t, bus.Close())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 10, count)
}

func TestEventBus_Metrics(t *testing.T) {
	bus := NewInMemoryEventBus(DefaultConfig())
	defer bus.Close()

	assert.NoError(t, bus.Publish(shared.NewCourseCreatedEvent("c-1", "Algebra", "t-1")))
	assert.NoError(t, bus.Publish(shared.NewCourseCreatedEvent("c-2", "Geometry", "t-1")))
	assert.NoError(t, bus.Publish(shared.NewUserRegisteredEvent("u-1", "alice", "Alice", "student")))

	assert.Equal(t, int64(3), bus.Metrics().PublishedTotal())
	assert.Equal(t, int64(2), bus.Metrics().PublishedByType(shared.EventCourseCreated))
}
