// internal/entity/board.go
package entity

import (
	"errors"

	"go-merge-defense/internal/component"
	"go-merge-defense/internal/event"

	"github.com/google/uuid"
)

var (
	ErrSlotOutOfRange = errors.New("board slot out of range")
	ErrSlotOccupied   = errors.New("board slot occupied")
)

// Board tracks where items are placed and owns the logical drag lock.
// While locked, inventory changes are deferred by the merge system.
type Board struct {
	slots           []uuid.UUID // uuid.Nil marks an empty slot
	locked          bool
	eventDispatcher *event.Dispatcher
}

func NewBoard(slotCount int, eventDispatcher *event.Dispatcher) *Board {
	b := &Board{
		slots:           make([]uuid.UUID, slotCount),
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.ItemRemoved, b)
	return b
}

// OnEvent clears the placement of items that leave the inventory.
func (b *Board) OnEvent(e event.Event) {
	if e.Type != event.ItemRemoved {
		return
	}
	if item, ok := e.Data.(component.Item); ok {
		b.Clear(item.ID)
	}
}

// Lock starts a drag. Locking twice is harmless.
func (b *Board) Lock() {
	if b.locked {
		return
	}
	b.locked = true
	b.eventDispatcher.Dispatch(event.Event{Type: event.BoardLocked})
}

// Unlock ends a drag and dispatches event.BoardUnlocked if the board was locked.
func (b *Board) Unlock() {
	if !b.locked {
		return
	}
	b.locked = false
	b.eventDispatcher.Dispatch(event.Event{Type: event.BoardUnlocked})
}

func (b *Board) IsLocked() bool {
	return b.locked
}

// Place puts id into slot, moving it if it was already placed elsewhere.
func (b *Board) Place(id uuid.UUID, slot int) error {
	if slot < 0 || slot >= len(b.slots) {
		return ErrSlotOutOfRange
	}
	if occupant := b.slots[slot]; occupant != uuid.Nil && occupant != id {
		return ErrSlotOccupied
	}
	b.Clear(id)
	b.slots[slot] = id
	return nil
}

// Clear removes id from the board. Unknown ids are ignored.
func (b *Board) Clear(id uuid.UUID) {
	for i, occupant := range b.slots {
		if occupant == id {
			b.slots[i] = uuid.Nil
		}
	}
}

// SlotOf returns the slot holding id.
func (b *Board) SlotOf(id uuid.UUID) (int, bool) {
	if id == uuid.Nil {
		return 0, false
	}
	for i, occupant := range b.slots {
		if occupant == id {
			return i, true
		}
	}
	return 0, false
}

// FreeSlot returns the first empty slot.
func (b *Board) FreeSlot() (int, bool) {
	for i, occupant := range b.slots {
		if occupant == uuid.Nil {
			return i, true
		}
	}
	return 0, false
}

// Occupied returns the number of filled slots.
func (b *Board) Occupied() int {
	n := 0
	for _, occupant := range b.slots {
		if occupant != uuid.Nil {
			n++
		}
	}
	return n
}

func (b *Board) Slots() int {
	return len(b.slots)
}
