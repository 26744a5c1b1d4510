// internal/event/event.go
package event

// EventType names a kind of event.
type EventType string

// Any subscribes a listener to every event type.
const Any EventType = "*"

// Event is a single notification. Data carries the typed payload, if any.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener receives events from a Dispatcher.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher delivers events synchronously, in subscription order.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for eventType.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe removes the first registration of listener for eventType.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				updated := make([]Listener, 0, len(listeners)-1)
				updated = append(updated, listeners[:i]...)
				d.listeners[eventType] = append(updated, listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch sends event to the listeners of its type, then to the Any listeners.
func (d *Dispatcher) Dispatch(event Event) {
	// Iterate over a snapshot so a listener may subscribe or unsubscribe mid-dispatch.
	if listeners := d.listeners[event.Type]; len(listeners) > 0 {
		for _, listener := range append([]Listener(nil), listeners...) {
			listener.OnEvent(event)
		}
	}
	if event.Type == Any {
		return
	}
	if listeners := d.listeners[Any]; len(listeners) > 0 {
		for _, listener := range append([]Listener(nil), listeners...) {
			listener.OnEvent(event)
		}
	}
}

// Recorder is a Listener that keeps every event it receives, in order.
// Handy for tests and for debugging overlays.
type Recorder struct {
	Events []Event
}

// OnEvent implements Listener.
func (r *Recorder) OnEvent(e Event) {
	r.Events = append(r.Events, e)
}

// Count returns how many recorded events have the given type.
func (r *Recorder) Count(eventType EventType) int {
	n := 0
	for _, e := range r.Events {
		if e.Type == eventType {
			n++
		}
	}
	return n
}

// OfType returns the recorded events of the given type.
func (r *Recorder) OfType(eventType EventType) []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.Events = nil
}
