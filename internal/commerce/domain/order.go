package domain

import "time"

// Order belongs to exactly one user and holds a set of products. A product
// appears in an order at most once; there is no quantity.
type Order struct {
	ID         int64
	OrderDate  time.Time
	UserID     int64
	ProductIDs []int64
}

// NewOrder builds an order stamped with the given creation time. The order
// date is never user-settable and is immutable afterwards.
func NewOrder(userID int64, productIDs []int64, orderDate time.Time) (*Order, error) {
	order := &Order{
		OrderDate:  orderDate,
		UserID:     userID,
		ProductIDs: append([]int64(nil), productIDs...),
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// Validate checks field invariants. An order must reference a user and carry
// at least one product.
func (o *Order) Validate() error {
	verr := &ValidationError{}
	if o.UserID <= 0 {
		verr.add("user_id", "user_id is required")
	}
	if len(o.ProductIDs) == 0 {
		verr.add("product_ids", "At least one product is required")
	}
	return verr.orNil()
}

// HasProduct reports whether the order's product set contains id.
func (o *Order) HasProduct(id int64) bool {
	for _, pid := range o.ProductIDs {
		if pid == id {
			return true
		}
	}
	return false
}

// RemoveProduct drops id from the order's product set if present. The order
// itself survives even when its last product is removed.
func (o *Order) RemoveProduct(id int64) {
	kept := o.ProductIDs[:0]
	for _, pid := range o.ProductIDs {
		if pid != id {
			kept = append(kept, pid)
		}
	}
	o.ProductIDs = kept
}
