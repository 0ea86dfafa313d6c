// repository/menu_item_repository.go
package repository

import (
	"errors"

	"github.com/moeinteractive/ohtommys-sub000/entity"
	"gorm.io/gorm"
)

type MenuItemRepository struct {
	DB *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

// FindAll returns every item with its dependent rows attached, ordered by
// category then name. Full-table fetch; the menu is tens of rows.
func (r *MenuItemRepository) FindAll() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Preload("Sizes").
		Preload("Extras").
		Preload("Sides.Side").
		Preload("Specials").
		Order("category, name").
		Find(&items).Error
	return items, err
}

// FindByID returns (nil, nil) when the item does not exist.
func (r *MenuItemRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.
		Preload("Sizes").
		Preload("Extras").
		Preload("Sides.Side").
		Preload("Specials").
		First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create writes only the scalar columns; dependents are inserted separately.
func (r *MenuItemRepository) Create(tx *gorm.DB, item *entity.MenuItem) error {
	return tx.Omit("Sizes", "Extras", "Sides", "Specials").Create(item).Error
}

func (r *MenuItemRepository) UpdateScalars(tx *gorm.DB, id uint, fields map[string]any) error {
	return tx.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(fields).Error
}

func (r *MenuItemRepository) Delete(tx *gorm.DB, id uint) error {
	return tx.Unscoped().Delete(&entity.MenuItem{}, id).Error
}

// ----- dependent rows (replaced wholesale on every edit) -----

func (r *MenuItemRepository) DeleteSizes(tx *gorm.DB, itemID uint) error {
	return tx.Unscoped().Where("menu_item_id = ?", itemID).Delete(&entity.Size{}).Error
}

func (r *MenuItemRepository) DeleteExtras(tx *gorm.DB, itemID uint) error {
	return tx.Unscoped().Where("menu_item_id = ?", itemID).Delete(&entity.Extra{}).Error
}

func (r *MenuItemRepository) DeleteItemSides(tx *gorm.DB, itemID uint) error {
	return tx.Where("menu_item_id = ?", itemID).Delete(&entity.ItemSide{}).Error
}

func (r *MenuItemRepository) DeleteSpecials(tx *gorm.DB, itemID uint) error {
	return tx.Unscoped().Where("menu_item_id = ?", itemID).Delete(&entity.Special{}).Error
}

func (r *MenuItemRepository) InsertSizes(tx *gorm.DB, rows []entity.Size) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func (r *MenuItemRepository) InsertExtras(tx *gorm.DB, rows []entity.Extra) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Create(&rows).Error
}

func (r *MenuItemRepository) InsertItemSides(tx *gorm.DB, rows []entity.ItemSide) error {
	if len(rows) == 0 {
		return nil
	}
	return tx.Omit("Side").Create(&rows).Error
}

// CountSpecials backs the delete guard.
func (r *MenuItemRepository) CountSpecials(itemID uint) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Special{}).Where("menu_item_id = ?", itemID).Count(&n).Error
	return n, err
}
