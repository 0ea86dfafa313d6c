package entity

import (
	"time"

	"gorm.io/gorm"
)

// Event is either a one-time occurrence (Date set, Days empty) or a weekly
// recurring one (Days set, Date nil). Times are "HH:MM" strings.
type Event struct {
	gorm.Model
	Title       string     `json:"title"`
	Description string     `json:"description"`
	IsRecurring bool       `json:"isRecurring"`
	Date        *time.Time `json:"date,omitempty"`
	Days        []Weekday  `gorm:"serializer:json" json:"days,omitempty"`
	StartTime   string     `json:"startTime"`
	EndTime     string     `json:"endTime"`
}
