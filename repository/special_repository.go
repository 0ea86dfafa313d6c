package repository

import (
	"errors"

	"github.com/moeinteractive/ohtommys-sub000/entity"
	"gorm.io/gorm"
)

type SpecialRepository struct {
	DB *gorm.DB
}

func NewSpecialRepository(db *gorm.DB) *SpecialRepository {
	return &SpecialRepository{DB: db}
}

func (r *SpecialRepository) FindAll() ([]entity.Special, error) {
	var specials []entity.Special
	err := r.DB.Preload("MenuItem").Order("day, menu_item_id").Find(&specials).Error
	return specials, err
}

func (r *SpecialRepository) FindByID(id uint) (*entity.Special, error) {
	var sp entity.Special
	err := r.DB.Preload("MenuItem").First(&sp, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sp, nil
}

// CreateBatch inserts one row per weekday in a single statement.
func (r *SpecialRepository) CreateBatch(rows []entity.Special) error {
	if len(rows) == 0 {
		return nil
	}
	return r.DB.Omit("MenuItem").Create(&rows).Error
}

// Update mutates item reference, price and description in place. The day is
// fixed at creation and never part of an update.
func (r *SpecialRepository) Update(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.Special{}).Where("id = ?", id).Updates(fields).Error
}

func (r *SpecialRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&entity.Special{}, id).Error
}

// ExistsForDay reports whether the item already runs a special on that day.
func (r *SpecialRepository) ExistsForDay(itemID uint, day entity.Weekday) (bool, error) {
	var n int64
	err := r.DB.Model(&entity.Special{}).
		Where("menu_item_id = ? AND day = ?", itemID, day).
		Count(&n).Error
	return n > 0, err
}
