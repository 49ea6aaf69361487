package types

// EntityID is a stable identifier for a live entity. Zero means "none".
type EntityID uint64
