package entity

import (
	"gorm.io/gorm"
)

// OrderItem is a snapshot of a catalog item at order time. Name and price
// are copied so menu edits never rewrite history.
type OrderItem struct {
	gorm.Model
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`

	OrderID uint  `json:"-"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}
