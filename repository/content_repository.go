package repository

import (
	"errors"

	"github.com/moeinteractive/ohtommys-sub000/entity"
	"gorm.io/gorm"
)

type ContentRepository struct {
	DB *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

func (r *ContentRepository) FindAll() ([]entity.ContentBlock, error) {
	var blocks []entity.ContentBlock
	err := r.DB.Order("key").Find(&blocks).Error
	return blocks, err
}

// FindByKey returns (nil, nil) for an unknown key.
func (r *ContentRepository) FindByKey(key string) (*entity.ContentBlock, error) {
	var block entity.ContentBlock
	err := r.DB.Where("key = ?", key).First(&block).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &block, nil
}

// Upsert creates the key on first write, updates the value afterwards.
func (r *ContentRepository) Upsert(key, value string) (*entity.ContentBlock, error) {
	block := entity.ContentBlock{Key: key}
	if err := r.DB.Where(entity.ContentBlock{Key: key}).FirstOrCreate(&block).Error; err != nil {
		return nil, err
	}
	block.Value = value
	if err := r.DB.Save(&block).Error; err != nil {
		return nil, err
	}
	return &block, nil
}
