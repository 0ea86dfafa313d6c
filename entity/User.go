package entity

import (
	"gorm.io/gorm"
)

// User is a back-office operator account. There is no public signup; accounts
// are seeded or created by another admin.
type User struct {
	gorm.Model
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string `json:"-"` // bcrypt hash
	Name     string `json:"name"`
	Role     string `json:"role"` // "admin"
}
