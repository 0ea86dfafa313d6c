package configs

import (
	"github.com/moeinteractive/ohtommys-sub000/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens the store once per process; the handle is passed down
// explicitly from main, never read from a global.
func ConnectDB(source string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(source), &gorm.Config{})
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Side{},
		&entity.MenuItem{}, &entity.Size{}, &entity.Extra{}, &entity.ItemSide{},
		&entity.Special{},
		&entity.Event{},
		&entity.ContentBlock{},
		&entity.JobApplication{},
	)
}
