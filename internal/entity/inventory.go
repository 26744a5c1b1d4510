// internal/entity/inventory.go
package entity

import (
	"go-merge-defense/internal/component"
	"go-merge-defense/internal/event"

	"github.com/google/uuid"
)

// Inventory keeps the player's items in insertion order and announces every change.
type Inventory struct {
	items           []component.Item
	eventDispatcher *event.Dispatcher
}

func NewInventory(eventDispatcher *event.Dispatcher) *Inventory {
	return &Inventory{eventDispatcher: eventDispatcher}
}

// Add appends item and dispatches event.ItemAdded.
func (inv *Inventory) Add(item component.Item) {
	inv.items = append(inv.items, item)
	inv.eventDispatcher.Dispatch(event.Event{Type: event.ItemAdded, Data: item})
}

// Remove deletes the item with id, keeping the order of the rest.
func (inv *Inventory) Remove(id uuid.UUID) bool {
	for i, item := range inv.items {
		if item.ID != id {
			continue
		}
		inv.items = append(inv.items[:i:i], inv.items[i+1:]...)
		inv.eventDispatcher.Dispatch(event.Event{Type: event.ItemRemoved, Data: item})
		return true
	}
	return false
}

// ItemsByTag returns the live items with tag, in enumeration order.
func (inv *Inventory) ItemsByTag(tag string) []component.Item {
	var out []component.Item
	for _, item := range inv.items {
		if item.Tag == tag {
			out = append(out, item)
		}
	}
	return out
}

// Get looks an item up by id.
func (inv *Inventory) Get(id uuid.UUID) (component.Item, bool) {
	for _, item := range inv.items {
		if item.ID == id {
			return item, true
		}
	}
	return component.Item{}, false
}

func (inv *Inventory) Contains(id uuid.UUID) bool {
	_, ok := inv.Get(id)
	return ok
}

// Items returns a copy of every item.
func (inv *Inventory) Items() []component.Item {
	return append([]component.Item(nil), inv.items...)
}

func (inv *Inventory) Len() int {
	return len(inv.items)
}

// CountByTag returns how many items carry each tag.
func (inv *Inventory) CountByTag() map[string]int {
	counts := make(map[string]int)
	for _, item := range inv.items {
		counts[item.Tag]++
	}
	return counts
}
