package repository

import (
	"errors"

	"github.com/moeinteractive/ohtommys-sub000/entity"
	"gorm.io/gorm"
)

type SideRepository struct {
	DB *gorm.DB
}

func NewSideRepository(db *gorm.DB) *SideRepository {
	return &SideRepository{DB: db}
}

func (r *SideRepository) FindAll() ([]entity.Side, error) {
	var sides []entity.Side
	err := r.DB.Order("category, name").Find(&sides).Error
	return sides, err
}

func (r *SideRepository) FindActive() ([]entity.Side, error) {
	var sides []entity.Side
	err := r.DB.Where("is_active = ?", true).Order("category, name").Find(&sides).Error
	return sides, err
}

func (r *SideRepository) FindByID(id uint) (*entity.Side, error) {
	var side entity.Side
	err := r.DB.First(&side, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &side, nil
}

func (r *SideRepository) Create(side *entity.Side) error {
	return r.DB.Create(side).Error
}

func (r *SideRepository) Update(side *entity.Side) error {
	return r.DB.Save(side).Error
}

func (r *SideRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Side{}, id).Error
}

// CountAssociations backs the deletion guard: a side still attached to any
// item must not be deleted.
func (r *SideRepository) CountAssociations(sideID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.ItemSide{}).Where("side_id = ?", sideID).Count(&n).Error
	return n, err
}
