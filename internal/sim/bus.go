/*
Package sim
File: bus.go
Description:
    A topic-keyed publish/subscribe bus decoupling the simulation systems
    from presentation and narrative consumers. Dispatch is synchronous and
    single-threaded: Emit invokes handlers on the calling goroutine, in
    registration order, before returning.

    Re-entrancy policy: Emit iterates a snapshot of the handler list taken
    when the emit starts. A handler that subscribes or unsubscribes during
    dispatch affects later emits only.
*/

package sim

// Topic names an event channel on the bus.
type Topic string

const (
	TopicFuelEmpty        Topic = "fuel:empty"
	TopicFuelRefueled     Topic = "fuel:refueled"
	TopicObstacleHit      Topic = "obstacle:hit"
	TopicCapsuleCollected Topic = "data-capsule:collected"
	TopicCapsulesComplete Topic = "data-capsules:complete"
)

// Handler receives the payload published on a topic.
type Handler func(payload any)

// Subscription identifies a registered handler. Go funcs are not comparable,
// so Off takes the token returned by On instead of the handler itself.
type Subscription uint64

type subscriber struct {
	id Subscription
	fn Handler
}

// EventBus is not safe for concurrent use; all publishers and subscribers
// live on the game-loop goroutine.
type EventBus struct {
	nextSub  Subscription
	handlers map[Topic][]subscriber
}

func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[Topic][]subscriber)}
}

// On registers a handler for the topic and returns its subscription token.
func (b *EventBus) On(topic Topic, fn Handler) Subscription {
	b.nextSub++
	id := b.nextSub
	b.handlers[topic] = append(b.handlers[topic], subscriber{id: id, fn: fn})
	return id
}

// Off removes the subscription. The handler slice is rebuilt rather than
// edited in place so an emit already iterating the old slice is unaffected.
func (b *EventBus) Off(topic Topic, sub Subscription) {
	old := b.handlers[topic]
	if len(old) == 0 {
		return
	}
	next := make([]subscriber, 0, len(old))
	for _, s := range old {
		if s.id != sub {
			next = append(next, s)
		}
	}
	if len(next) == 0 {
		delete(b.handlers, topic)
		return
	}
	b.handlers[topic] = next
}

// Emit synchronously invokes every handler registered for the topic, in
// registration order.
func (b *EventBus) Emit(topic Topic, payload any) {
	subs := b.handlers[topic]
	for _, s := range subs {
		s.fn(payload)
	}
}

// Event payloads. The bus itself is untyped; these are the records the core
// systems publish.

// FuelEmptyEvent fires at most once per continuous empty period.
type FuelEmptyEvent struct {
	Entity EntityID
}

// FuelRefueledEvent carries the requested amount, not the clamped delta.
type FuelRefueledEvent struct {
	Entity EntityID
	Amount float64
}

// ObstacleHitEvent fires when a ship takes a cooldown-gated obstacle hit.
type ObstacleHitEvent struct {
	Ship     EntityID
	Obstacle EntityID
}

// CapsuleCollectedEvent fires once per collected capsule. Fact is nil when
// the capsule carried no facts.
type CapsuleCollectedEvent struct {
	CapsuleID string
	Fact      *Fact
	Collected int
	Total     int
}

// CapsulesCompleteEvent fires after the last capsule, carrying every
// collected fact in collection order.
type CapsulesCompleteEvent struct {
	Facts []Fact
}
