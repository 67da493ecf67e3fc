package events

// EventQueue is a FIFO buffer of pending game events
// Not safe for concurrent use: producers and the consumer share the owner goroutine
type EventQueue struct {
	pending []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event
func (eq *EventQueue) Push(event GameEvent) {
	eq.pending = append(eq.pending, event)
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.pending) == 0 {
		return nil
	}
	out := eq.pending
	eq.pending = nil
	return out
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return len(eq.pending)
}
