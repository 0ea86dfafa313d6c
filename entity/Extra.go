package entity

import (
	"gorm.io/gorm"
)

// Extra is a paid add-on owned by one menu item.
type Extra struct {
	gorm.Model
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
}
