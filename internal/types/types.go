// internal/types/types.go
package types

// EntityID identifies an enemy for the lifetime of a Game.
type EntityID uint64
