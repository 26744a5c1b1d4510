package event

import "testing"

type unsubscriber struct {
	d     *Dispatcher
	calls int
}

func (u *unsubscriber) OnEvent(e Event) {
	u.calls++
	u.d.Unsubscribe(e.Type, u)
}

func TestDispatcher_OrderAndAny(t *testing.T) {
	d := NewDispatcher()
	first, second, all := &Recorder{}, &Recorder{}, &Recorder{}
	d.Subscribe(WaveStarted, first)
	d.Subscribe(Any, all)
	d.Subscribe(WaveStarted, second)

	d.Dispatch(Event{Type: WaveStarted, Data: WavePayload{WaveNumber: 1}})
	d.Dispatch(Event{Type: WaveEnded})

	if first.Count(WaveStarted) != 1 || second.Count(WaveStarted) != 1 {
		t.Errorf("Expected both listeners to receive WaveStarted")
	}
	if first.Count(WaveEnded) != 0 {
		t.Errorf("Listener received an event it did not subscribe to")
	}
	if len(all.Events) != 2 {
		t.Errorf("Expected the Any listener to see 2 events, got %d", len(all.Events))
	}
}

func TestDispatcher_UnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	u := &unsubscriber{d: d}
	after := &Recorder{}
	d.Subscribe(RoundEnded, u)
	d.Subscribe(RoundEnded, after)

	d.Dispatch(Event{Type: RoundEnded})
	d.Dispatch(Event{Type: RoundEnded})

	if u.calls != 1 {
		t.Errorf("Expected 1 call before unsubscribing, got %d", u.calls)
	}
	if after.Count(RoundEnded) != 2 {
		t.Errorf("Expected the later listener to get both events, got %d", after.Count(RoundEnded))
	}
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	r.OnEvent(Event{Type: Upgraded})
	r.OnEvent(Event{Type: MergeSkipped})
	r.OnEvent(Event{Type: Upgraded})

	if r.Count(Upgraded) != 2 || len(r.OfType(MergeSkipped)) != 1 {
		t.Errorf("Unexpected counts in %+v", r.Events)
	}
	r.Reset()
	if len(r.Events) != 0 {
		t.Error("Expected Reset to drop everything")
	}
}
