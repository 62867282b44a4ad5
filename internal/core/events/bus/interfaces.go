package bus

import "time"

// EventBus is an in-process pub/sub bus.
//
// Handlers subscribe by event type and are called synchronously in the
// publisher's goroutine, in subscription order. Handler errors are joined and
// returned from Publish. All methods are safe for concurrent use.
type EventBus interface {
	Publish(event Event) error
	PublishAsync(event Event) <-chan error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
	Unsubscribe(Subscription) error

	AddObserver(obs EventBusObserver)
	RemoveObserver(obs EventBusObserver)
	GetMetrics() EventBusMetrics
}

// Event is an immutable message transported by the bus.
type Event struct {
	Type      string
	Source    string
	Timestamp time.Time
	Data      any
}

type EventHandler func(event Event) error

// Subscription is a registered handler. Cancel is idempotent.
type Subscription interface {
	ID() string
	EventType() string
	IsActive() bool
	Cancel() error
}

// EventBusObserver is notified after each delivery. Observers should return quickly.
type EventBusObserver interface {
	OnDelivered(eventType string, handlers int, err error, duration time.Duration)
}

// EventBusMetrics are collected only while at least one observer is registered.
type EventBusMetrics struct {
	Published         uint64
	DeliveredHandlers uint64
	Errors            uint64
	SubscribersActive uint64
}
