// internal/defs/types.go
package defs

// ItemTemplate describes an item that can be instantiated into the inventory.
type ItemTemplate struct {
	Tag  string `json:"tag"`
	Name string `json:"name,omitempty"`
	Tier int    `json:"tier"`
}

// DisplayName falls back to the tag when no name is configured.
func (t ItemTemplate) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Tag
}
