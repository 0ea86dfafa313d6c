package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PriceCents  *int64   `json:"priceCents"` // nil when the sizes carry the price
	Category    Category `json:"category"`
	Day         *Weekday `json:"day,omitempty"` // set for day-scoped items only
	IsSpecial   bool     `json:"isSpecial"`
	Picture     string   `json:"picture"`

	Sizes    []Size     `json:"sizes"`
	Extras   []Extra    `json:"extras"`
	Sides    []ItemSide `json:"sides"`
	Specials []Special  `json:"specials"`
}
