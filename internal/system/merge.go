// internal/system/merge.go
package system

import (
	"log"

	"go-merge-defense/internal/component"
	"go-merge-defense/internal/config"
	"go-merge-defense/internal/defs"
	"go-merge-defense/internal/entity"
	"go-merge-defense/internal/event"
	"go-merge-defense/internal/interfaces"
)

// MergeSystem turns every complete group of three same-tag items into one upgraded item.
// While the board is locked, added items are queued and evaluated later by ProcessBuffer.
type MergeSystem struct {
	inventory       interfaces.Inventory
	lock            interfaces.LockProvider
	board           interfaces.BoardPresence
	links           *defs.UpgradeTable
	eventDispatcher *event.Dispatcher
	threshold       int
	pending         []component.Item
}

func NewMergeSystem(inventory interfaces.Inventory, lock interfaces.LockProvider, board interfaces.BoardPresence, links *defs.UpgradeTable, eventDispatcher *event.Dispatcher) *MergeSystem {
	s := &MergeSystem{
		inventory:       inventory,
		lock:            lock,
		board:           board,
		links:           links,
		eventDispatcher: eventDispatcher,
		threshold:       config.MergeThreshold,
	}
	eventDispatcher.Subscribe(event.ItemAdded, s)
	eventDispatcher.Subscribe(event.BoardUnlocked, s)
	return s
}

// OnEvent handles inventory adds and replays the buffer once the board unlocks.
func (s *MergeSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.ItemAdded:
		if item, ok := e.Data.(component.Item); ok {
			s.OnItemAdded(item)
		}
	case event.BoardUnlocked:
		s.ProcessBuffer()
	}
}

// OnItemAdded queues item while the board is locked, otherwise evaluates its tag right away.
func (s *MergeSystem) OnItemAdded(item component.Item) {
	if s.lock.IsLocked() {
		s.pending = append(s.pending, item)
		return
	}
	s.EvaluateMerge(item.Tag)
}

// ProcessBuffer replays the queued notifications in arrival order, once each.
// It does not look at the lock: the caller releases it before replaying.
func (s *MergeSystem) ProcessBuffer() {
	if len(s.pending) == 0 {
		return
	}
	// Detach first; anything queued during the replay belongs to the next one.
	buffered := s.pending
	s.pending = nil
	for _, item := range buffered {
		s.EvaluateMerge(item.Tag)
	}
}

// EvaluateMerge merges the live items carrying tag, three at a time in enumeration order.
// Leftovers (count mod 3) stay untouched. Returns how many upgrades were made.
func (s *MergeSystem) EvaluateMerge(tag string) int {
	group := s.inventory.ItemsByTag(tag)
	if len(group) < s.threshold {
		return 0
	}

	yield, ok := s.GetYieldFor(tag)
	if !ok {
		s.reportMissingYield(tag, len(group))
		return 0
	}

	upgrades := 0
	for start := 0; start+s.threshold <= len(group); start += s.threshold {
		consumed := group[start : start+s.threshold]
		// A cascade triggered by an earlier triple may already have taken some of these.
		if !s.allLive(tag, consumed) {
			continue
		}
		for _, item := range consumed {
			s.inventory.Remove(item.ID)
			s.board.Clear(item.ID)
		}

		upgraded := entity.Instantiate(yield)
		s.inventory.Add(upgraded)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.Upgraded,
			Data: event.UpgradePayload{
				Tag:      tag,
				Yield:    upgraded,
				Consumed: append([]component.Item(nil), consumed...),
			},
		})
		upgrades++
	}
	return upgrades
}

// GetYieldFor returns the first configured yield for tag.
func (s *MergeSystem) GetYieldFor(tag string) (defs.ItemTemplate, bool) {
	return s.links.GetYieldFor(tag)
}

func (s *MergeSystem) allLive(tag string, items []component.Item) bool {
	live := s.inventory.ItemsByTag(tag)
	for _, item := range items {
		if !containsItem(live, item) {
			return false
		}
	}
	return true
}

func containsItem(items []component.Item, target component.Item) bool {
	for _, item := range items {
		if item.ID == target.ID {
			return true
		}
	}
	return false
}

func (s *MergeSystem) reportMissingYield(tag string, groupSize int) {
	suggestion, _ := s.links.Suggest(tag)
	if suggestion != "" {
		log.Printf("Could not get yield for tag %q (%d items), did you mean %q?", tag, groupSize, suggestion)
	} else {
		log.Printf("Could not get yield for tag %q (%d items)", tag, groupSize)
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.MergeSkipped,
		Data: event.MergeSkippedPayload{Tag: tag, GroupSize: groupSize, Suggestion: suggestion},
	})
}
