package order

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/product"
	"shop/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder. This ensures all orders are
// properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order represents a purchase request in the shop. It is the aggregate root
// that carries the order identity, the products it was placed with, the
// placement time, and the lifecycle status.
//
// Order maintains these invariants:
//   - the id is valid and unique among all orders ever created
//   - products is a non-empty ordered sequence of resolved snapshots;
//     duplicates are allowed, and the sequence never changes after placement
//   - orderedAt is set once at placement
//   - the only field that changes across the order's life is the status,
//     and it changes by copy-and-replace via ChangeStatus
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// products holds the resolved product snapshots in placement order
	products []product.Product

	// status represents the current state in the order lifecycle
	status Status

	// orderedAt is the placement timestamp
	orderedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with validation. The order starts in
// Processing status with orderedAt set to the given placement time.
//
// Parameters:
//   - id: unique identifier, minted by the caller's id generator
//   - products: resolved product snapshots in placement order (at least one)
//   - orderedAt: placement timestamp (must be non-zero)
//
// The product slice is copied, so the caller may reuse its own slice.
func NewOrder(id kernel.UUID, products []product.Product, orderedAt time.Time) (*Order, error) {
	o := &Order{
		status:        Processing,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setProducts(products),
		o.setOrderedAt(orderedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence with an explicit
// status. It applies the same field validation as NewOrder plus status
// validity, and is intended for repository implementations only.
func RestoreOrder(
	id kernel.UUID,
	products []product.Product,
	status Status,
	orderedAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setProducts(products),
		o.setStatus(status),
		o.setOrderedAt(orderedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Products returns the product snapshots the order was placed with, in
// placement order. The returned slice is a copy.
func (o *Order) Products() []product.Product {
	products := make([]product.Product, len(o.products))
	copy(products, o.products)
	return products
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// OrderedAt returns the placement timestamp.
func (o *Order) OrderedAt() time.Time {
	return o.orderedAt
}

// ChangeStatus returns a copy of the order with the status replaced.
//
// Transitions are deliberately unrestricted: any valid status may replace
// any other, including itself, so repeated calls with the same status are
// idempotent. Only statuses outside the enumeration are rejected. The
// receiver is never mutated; id, products, and orderedAt carry over
// unchanged into the copy.
func (o *Order) ChangeStatus(status Status) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	updated := *o
	updated.status = status
	return &updated, nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setProducts validates and snapshots the product sequence.
// At least one product is required and every entry must be constructed.
func (o *Order) setProducts(products []product.Product) error {
	if len(products) == 0 {
		return errs.NewValueIsRequiredError("products")
	}

	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
	}

	o.products = make([]product.Product, len(products))
	copy(o.products, products)
	return nil
}

// setStatus validates and sets the lifecycle status.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setOrderedAt validates and sets the placement timestamp.
func (o *Order) setOrderedAt(orderedAt time.Time) error {
	if orderedAt.IsZero() {
		return errs.NewValueIsRequiredError("orderedAt")
	}
	o.orderedAt = orderedAt
	return nil
}
