package entity

import (
	"gorm.io/gorm"
)

// PlaceholderImage is used when an item is created without a picture.
const PlaceholderImage = "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg"

const (
	CategoryBreakfast = "Breakfast"
	CategoryLunch     = "Lunch"
	CategoryDinner    = "Dinner"
	CategorySnacks    = "Snacks"
	CategoryBeverages = "Beverages"
	CategoryDesserts  = "Desserts"
)

var categories = []string{
	CategoryBreakfast, CategoryLunch, CategoryDinner,
	CategorySnacks, CategoryBeverages, CategoryDesserts,
}

func ValidCategory(c string) bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

type MenuItem struct {
	gorm.Model
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	IsAvailable bool    `gorm:"default:true" json:"isAvailable"`

	// minutes; feeds the estimated-ready-time computation on orders
	PreparationTime int `gorm:"default:10" json:"preparationTime"`

	OrderItems []OrderItem `gorm:"foreignKey:MenuItemID" json:"-"`
}
