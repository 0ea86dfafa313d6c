package entity

import (
	"gorm.io/gorm"
)

// ContentBlock is a keyed freeform text value (dressings list, disclaimers,
// hours) addressed by a well-known key.
type ContentBlock struct {
	gorm.Model
	Key   string `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}

// Keys the site reads; seeded empty at startup so the admin can fill them in.
const (
	ContentDressings  = "dressings"
	ContentDisclaimer = "disclaimer"
	ContentHours      = "hours"
)
