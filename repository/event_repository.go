package repository

import (
	"errors"

	"github.com/moeinteractive/ohtommys-sub000/entity"
	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

// FindAll returns recurring events first, then one-time events by date.
func (r *EventRepository) FindAll() ([]entity.Event, error) {
	var events []entity.Event
	err := r.DB.Order("is_recurring desc, date, start_time").Find(&events).Error
	return events, err
}

func (r *EventRepository) FindByID(id uint) (*entity.Event, error) {
	var ev entity.Event
	err := r.DB.First(&ev, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *EventRepository) Create(ev *entity.Event) error {
	return r.DB.Create(ev).Error
}

func (r *EventRepository) Update(ev *entity.Event) error {
	return r.DB.Save(ev).Error
}

func (r *EventRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Event{}, id).Error
}
