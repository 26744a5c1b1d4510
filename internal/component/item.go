// internal/component/item.go
package component

import "github.com/google/uuid"

// Item is one inventory entry. Items with the same Tag merge together.
type Item struct {
	ID   uuid.UUID
	Tag  string
	Name string
	Tier int
}
