// Package productrepo provides data transfer objects and mapping functions
// for catalog persistence. It implements the repository pattern for the
// product value object, converting between domain entities and database rows.
package productrepo

import (
	"shop/internal/core/domain/model/product"
)

// ProductDTO represents the database structure for persisting catalog
// entries.
type ProductDTO struct {
	ID   string `gorm:"primaryKey"`
	Name string
}

// TableName specifies the database table name for catalog entries.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product to its database representation.
func fromDomain(p product.Product) ProductDTO {
	return ProductDTO{
		ID:   p.ID(),
		Name: p.Name(),
	}
}

// toDomain converts a database row back to a product.
func toDomain(dto ProductDTO) (product.Product, error) {
	return product.NewProduct(dto.ID, dto.Name)
}
