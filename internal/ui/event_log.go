// internal/ui/event_log.go
package ui

import (
	"fmt"

	"go-merge-defense/internal/event"
)

// EventLog keeps a short, human-readable tail of gameplay events for the HUD.
type EventLog struct {
	capacity int
	lines    []string
}

func NewEventLog(capacity int) *EventLog {
	return &EventLog{capacity: capacity}
}

// OnEvent implements event.Listener. Noisy events are skipped.
func (l *EventLog) OnEvent(e event.Event) {
	var line string
	switch data := e.Data.(type) {
	case event.WavePayload:
		line = fmt.Sprintf("%s: wave %d", e.Type, data.WaveNumber)
	case event.UpgradePayload:
		line = fmt.Sprintf("Upgraded: 3 x %s -> %s", data.Tag, data.Yield.Tag)
	case event.MergeSkippedPayload:
		line = fmt.Sprintf("No upgrade for %s", data.Tag)
		if data.Suggestion != "" {
			line += fmt.Sprintf(" (did you mean %s?)", data.Suggestion)
		}
	default:
		switch e.Type {
		case event.BoardLocked, event.BoardUnlocked, event.LevelUp, event.GameWon:
			line = string(e.Type)
		default:
			return
		}
	}
	l.lines = append(l.lines, line)
	if len(l.lines) > l.capacity {
		l.lines = l.lines[len(l.lines)-l.capacity:]
	}
}

// Lines returns the retained lines, oldest first.
func (l *EventLog) Lines() []string {
	return append([]string(nil), l.lines...)
}
