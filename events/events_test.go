package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	types []EventType
	seen  []EventType
	chain func(q *EventQueue, ev GameEvent)
	queue *EventQueue
}

func (h *recordingHandler) EventTypes() []EventType { return h.types }

func (h *recordingHandler) HandleEvent(ctx string, ev GameEvent) {
	h.seen = append(h.seen, ev.Type)
	if h.chain != nil {
		h.chain(h.queue, ev)
	}
}

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	assert.Nil(t, q.Consume())

	q.Push(GameEvent{Type: EventAttackStarted})
	q.Push(GameEvent{Type: EventAttackResolved})
	require.Equal(t, 2, q.Len())

	got := q.Consume()
	require.Len(t, got, 2)
	assert.Equal(t, EventAttackStarted, got[0].Type)
	assert.Equal(t, EventAttackResolved, got[1].Type)
	assert.Equal(t, 0, q.Len())
}

func TestRouterDispatchesByType(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[string](q)

	attacks := &recordingHandler{types: []EventType{EventAttackStarted, EventAttackResolved}}
	outcomes := &recordingHandler{types: []EventType{EventSessionFailed}}
	r.Register(attacks)
	r.Register(outcomes)

	q.Push(GameEvent{Type: EventAttackStarted})
	q.Push(GameEvent{Type: EventSessionFailed})
	q.Push(GameEvent{Type: EventAttackResolved})

	assert.Equal(t, 3, r.DispatchAll("ctx"))
	assert.Equal(t, []EventType{EventAttackStarted, EventAttackResolved}, attacks.seen)
	assert.Equal(t, []EventType{EventSessionFailed}, outcomes.seen)
	assert.Equal(t, 2, r.HandlerCount(EventAttackStarted)+r.HandlerCount(EventSessionFailed))
}

func TestRouterDeliversEventsPushedDuringDispatch(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[string](q)

	follower := &recordingHandler{types: []EventType{EventSessionSucceeded}}
	leader := &recordingHandler{
		types: []EventType{EventAttackResolved},
		queue: q,
		chain: func(q *EventQueue, ev GameEvent) {
			q.Push(GameEvent{Type: EventSessionSucceeded})
		},
	}
	r.Register(leader)
	r.Register(follower)

	q.Push(GameEvent{Type: EventAttackResolved})
	assert.Equal(t, 2, r.DispatchAll("ctx"))
	assert.Equal(t, []EventType{EventSessionSucceeded}, follower.seen)
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "AttackResolved", EventAttackResolved.String())
	assert.Equal(t, "Unknown", EventType(-1).String())
	assert.Equal(t, "Unknown", eventTypeCount.String())
}
