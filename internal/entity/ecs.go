// internal/entity/ecs.go
package entity

import (
	"go-merge-defense/internal/component"
	"go-merge-defense/internal/defs"
	"go-merge-defense/internal/types"

	"github.com/google/uuid"
)

// Allocator hands out enemy ids, starting at 1. Zero is never a valid id.
type Allocator struct {
	NextID types.EntityID
}

func NewAllocator() *Allocator {
	return &Allocator{NextID: 1}
}

func (a *Allocator) NewEntity() types.EntityID {
	id := a.NextID
	a.NextID++
	return id
}

// Instantiate creates a fresh inventory item from a template.
func Instantiate(tmpl defs.ItemTemplate) component.Item {
	return component.Item{
		ID:   uuid.New(),
		Tag:  tmpl.Tag,
		Name: tmpl.DisplayName(),
		Tier: tmpl.Tier,
	}
}
