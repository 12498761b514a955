package ports

import (
	"shop/internal/core/domain/model/kernel"
)

// IDGenerator produces identifiers for new orders. Implementations must
// guarantee uniqueness across the process lifetime; generated ids are never
// reused, not even after an order is removed.
type IDGenerator interface {
	GenerateID() kernel.UUID
}
