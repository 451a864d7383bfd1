package domain

import "strings"

const maxProductNameLen = 50

// Product belongs to exactly one category and may appear in any number of
// orders through the order/product association.
type Product struct {
	ID         int64
	Name       string
	Price      float64
	CategoryID int64
}

// NewProduct builds a product from raw input, enforcing field invariants.
func NewProduct(name string, price float64, categoryID int64) (*Product, error) {
	product := &Product{
		Name:       strings.TrimSpace(name),
		Price:      price,
		CategoryID: categoryID,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	return product, nil
}

// Validate checks field invariants and reports every violation per field.
func (p *Product) Validate() error {
	verr := &ValidationError{}
	if p.Name == "" {
		verr.add("product_name", "product_name is required")
	} else if len(p.Name) > maxProductNameLen {
		verr.add("product_name", "product_name must be at most 50 characters")
	}
	if p.Price < 0 {
		verr.add("price", "Price must be positive!")
	}
	if p.CategoryID <= 0 {
		verr.add("category_id", "category_id is required")
	}
	return verr.orNil()
}
