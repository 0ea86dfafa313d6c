package entity

import (
	"gorm.io/gorm"
)

// Size is a (name, price) row owned by one menu item, e.g. "Large"/1599.
// Rows are replaced wholesale on every item edit.
type Size struct {
	gorm.Model
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
}
