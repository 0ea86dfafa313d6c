package entity

import (
	"gorm.io/gorm"
)

type JobApplication struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Position string `json:"position"`
	Message  string `gorm:"type:text" json:"message"`
}
