// Package idgen provides the id generation adapter for new orders.
package idgen

import (
	"shop/internal/core/domain/model/kernel"
)

// UUIDGenerator issues random version 4 UUIDs.
type UUIDGenerator struct{}

// NewUUIDGenerator creates a UUIDGenerator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// GenerateID returns a fresh unique id.
func (g *UUIDGenerator) GenerateID() kernel.UUID {
	return kernel.NewUUID()
}
