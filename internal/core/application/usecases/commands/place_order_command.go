package commands

import (
	"errors"

	"shop/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrProductIDsAreRequired = errors.New("at least one product id is required")
)

// PlaceOrderCommand represents a request to place an order against catalog
// product ids. The ids keep their input order and may repeat; every id must
// resolve in the catalog for the order to be created.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	productIDs []string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order. At least one
// product id is required and none may be empty. The slice is copied.
func NewPlaceOrderCommand(productIDs []string) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setProductIDs(productIDs); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// ProductIDs returns the requested product ids in input order.
// The returned slice is a copy.
func (c PlaceOrderCommand) ProductIDs() []string {
	ids := make([]string, len(c.productIDs))
	copy(ids, c.productIDs)
	return ids
}

func (c *PlaceOrderCommand) setProductIDs(productIDs []string) error {
	if len(productIDs) == 0 {
		return ErrProductIDsAreRequired
	}

	for _, id := range productIDs {
		if id == "" {
			return ErrProductIDIsRequired
		}
	}

	c.productIDs = make([]string, len(productIDs))
	copy(c.productIDs, productIDs)
	return nil
}
