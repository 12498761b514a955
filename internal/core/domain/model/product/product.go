// Package product provides the catalog entry value object for the shop
// domain. Products are immutable: they are registered once with an
// externally assigned id and a display name, and never change afterwards.
// Orders copy resolved products at placement time, so later catalog changes
// do not affect existing orders.
package product

import (
	"errors"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct constructor.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalog item. Its id is assigned by the caller (not
// generated) and identifies the product across the whole catalog.
//
// Product is a value object: two products with the same id are the same
// catalog entry, and an order holds copies of the products it was placed
// with rather than references into the catalog.
type Product struct { //nolint:recvcheck //pointer receivers used for construction only
	id   string
	name string

	guard guard.ConstructorGuard
}

// NewProduct creates a Product with validation. Both the id and the display
// name must be non-empty.
func NewProduct(id string, name string) (Product, error) {
	p := Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
	); err != nil {
		return Product{}, err
	}

	return p, nil
}

// Validate ensures the Product was created through NewProduct.
func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the externally assigned product identifier.
func (p Product) ID() string {
	return p.id
}

// Name returns the product display name.
func (p Product) Name() string {
	return p.name
}

// IsEqual compares two products by identifier.
func (p Product) IsEqual(other Product) bool {
	return p.id == other.id
}

func (p *Product) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}
