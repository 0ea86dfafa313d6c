package configs

import (
	"log"

	"github.com/moeinteractive/ohtommys-sub000/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the first operator account from env, once.
func SeedAdmin(db *gorm.DB, email, pass string) error {
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedContent makes sure the well-known content keys exist so the site never
// 404s on them; values start empty for the admin to fill in.
func SeedContent(db *gorm.DB) error {
	for _, key := range []string{
		entity.ContentDressings,
		entity.ContentDisclaimer,
		entity.ContentHours,
	} {
		block := entity.ContentBlock{Key: key}
		if err := db.Where(entity.ContentBlock{Key: key}).FirstOrCreate(&block).Error; err != nil {
			return err
		}
	}
	return nil
}
