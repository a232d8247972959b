package model

import "github.com/google/uuid"

// IDGenerator issues identifiers that are never reused within a process lifetime.
type IDGenerator interface {
	NewID() uuid.UUID
}

// UUIDGenerator issues random (v4) UUIDs.
type UUIDGenerator struct{}

// NewID returns a fresh random UUID.
func (UUIDGenerator) NewID() uuid.UUID {
	return uuid.New()
}
