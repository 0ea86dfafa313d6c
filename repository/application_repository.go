package repository

import (
	"github.com/moeinteractive/ohtommys-sub000/entity"
	"gorm.io/gorm"
)

type ApplicationRepository struct {
	DB *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{DB: db}
}

func (r *ApplicationRepository) Create(app *entity.JobApplication) error {
	return r.DB.Create(app).Error
}

func (r *ApplicationRepository) FindAll() ([]entity.JobApplication, error) {
	var apps []entity.JobApplication
	err := r.DB.Order("created_at desc").Find(&apps).Error
	return apps, err
}
