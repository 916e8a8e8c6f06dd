package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct{ got []EventType }

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e.Type) }

func TestDispatchInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(EnemyKilled, ListenerFunc(func(Event) { order = append(order, "a") }))
	d.Subscribe(EnemyKilled, ListenerFunc(func(Event) { order = append(order, "b") }))

	d.Dispatch(Event{Type: EnemyKilled})
	d.Dispatch(Event{Type: PlayerDied})
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(OrbCollected, r)
	d.Dispatch(Event{Type: OrbCollected, Data: OrbCollectedData{XPValue: 1}})
	d.Unsubscribe(OrbCollected, r)
	d.Dispatch(Event{Type: OrbCollected})
	d.Unsubscribe(PlayerDied, r)

	assert.Equal(t, []EventType{OrbCollected}, r.got)
}
