package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(RoundEnded, ListenerFunc(func(Event) { order = append(order, "first") }))
	d.Subscribe(RoundEnded, ListenerFunc(func(Event) { order = append(order, "second") }))

	d.Dispatch(Event{Type: RoundEnded})
	d.Dispatch(Event{Type: RoundStarted})

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestToastAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(Toast, r)

	d.Toast("Dash!", 0.6)
	if assert.Len(t, r.got, 1) {
		assert.Equal(t, ToastData{Text: "Dash!", Duration: 0.6}, r.got[0].Data)
	}

	d.Unsubscribe(Toast, r)
	d.Toast("ignored", 1)
	assert.Len(t, r.got, 1)
}
