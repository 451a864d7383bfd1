package domain

import "strings"

const maxCategoryNameLen = 100

// Category groups products. Deleting a category deletes every product in it.
type Category struct {
	ID   int64
	Name string
}

// NewCategory builds a category from raw input, enforcing field invariants.
func NewCategory(name string) (*Category, error) {
	category := &Category{Name: strings.TrimSpace(name)}
	if err := category.Validate(); err != nil {
		return nil, err
	}
	return category, nil
}

// Validate checks field invariants and reports every violation per field.
func (c *Category) Validate() error {
	verr := &ValidationError{}
	if c.Name == "" {
		verr.add("category_name", "category_name is required")
	} else if len(c.Name) > maxCategoryNameLen {
		verr.add("category_name", "category_name must be at most 100 characters")
	}
	return verr.orNil()
}
