package types

// EntityID identifies a live enemy on the field.
type EntityID uint64
