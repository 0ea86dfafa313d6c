package entity

import (
	"gorm.io/gorm"
)

// Side is shared across many items via item_sides. Deleting one is blocked
// while any association references it.
type Side struct {
	gorm.Model
	Name        string       `json:"name"`
	Description string       `json:"description"`
	PriceCents  *int64       `json:"priceCents"` // nil when included with the item
	Category    SideCategory `json:"category"`
	IsActive    bool         `json:"isActive"`

	ItemSides []ItemSide `json:"-"`
}
