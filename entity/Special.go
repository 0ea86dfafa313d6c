package entity

import (
	"gorm.io/gorm"
)

// Special puts a menu item on special for one weekday with an overriding
// price. One row per (item, day); the same item can run on several days via
// several rows. The day is fixed at creation.
type Special struct {
	gorm.Model
	MenuItemID  uint    `gorm:"uniqueIndex:idx_special_item_day" json:"menuItemId"`
	Day         Weekday `gorm:"uniqueIndex:idx_special_item_day" json:"day"`
	PriceCents  int64   `json:"priceCents"`
	Description string  `json:"description"` // optional override

	MenuItem MenuItem `json:"-"` // preload for admin views only
}
