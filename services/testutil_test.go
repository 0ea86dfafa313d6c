package services

import (
	"fmt"
	"testing"

	"github.com/moeinteractive/ohtommys-sub000/entity"
	"github.com/moeinteractive/ohtommys-sub000/repository"

	qt "github.com/frankban/quicktest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite store, named per test so parallel
// tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Side{},
		&entity.MenuItem{}, &entity.Size{}, &entity.Extra{}, &entity.ItemSide{},
		&entity.Special{},
		&entity.Event{},
		&entity.ContentBlock{},
		&entity.JobApplication{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newMenuService(db *gorm.DB) *MenuService {
	return NewMenuService(db, repository.NewMenuItemRepository(db))
}

func newSideService(db *gorm.DB) *SideService {
	return NewSideService(repository.NewSideRepository(db))
}

func newSpecialService(db *gorm.DB) *SpecialService {
	return NewSpecialService(
		repository.NewSpecialRepository(db),
		repository.NewMenuItemRepository(db),
	)
}

func cents(v int64) *int64 { return &v }

func mustCreateSide(c *qt.C, db *gorm.DB, name string) *entity.Side {
	side, err := newSideService(db).Create(&SaveSideIn{
		Name:     name,
		Category: entity.SideStandard,
		IsActive: true,
	})
	c.Assert(err, qt.IsNil)
	return side
}
