package commands

import (
	"errors"

	"shop/internal/pkg/guard"
)

var (
	ErrAddProductCommandIsNotConstructed = errors.New(
		"AddProductCommand must be created via NewAddProductCommand constructor",
	)
	ErrProductIDIsRequired   = errors.New("product id is required")
	ErrProductNameIsRequired = errors.New("product name is required")
)

// AddProductCommand represents a request to register a catalog entry.
// Registering an id that already exists overwrites the previous entry.
type AddProductCommand struct { //nolint:recvcheck //using for validation
	productID string
	name      string

	guard guard.ConstructorGuard
}

// NewAddProductCommand creates a command to register a product.
// Both the id and the display name must be non-empty.
func NewAddProductCommand(productID string, name string) (AddProductCommand, error) {
	cmd := AddProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setName(name),
	); err != nil {
		return AddProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddProductCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCommandIsNotConstructed)
}

// ProductID returns the externally assigned product identifier.
func (c AddProductCommand) ProductID() string {
	return c.productID
}

// Name returns the product display name.
func (c AddProductCommand) Name() string {
	return c.name
}

func (c *AddProductCommand) setProductID(productID string) error {
	if productID == "" {
		return ErrProductIDIsRequired
	}

	c.productID = productID
	return nil
}

func (c *AddProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}
