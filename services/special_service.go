package services

import (
	"fmt"

	"github.com/moeinteractive/ohtommys-sub000/entity"
	"github.com/moeinteractive/ohtommys-sub000/repository"
)

type SpecialService struct {
	Repo     *repository.SpecialRepository
	ItemRepo *repository.MenuItemRepository
}

func NewSpecialService(repo *repository.SpecialRepository, itemRepo *repository.MenuItemRepository) *SpecialService {
	return &SpecialService{Repo: repo, ItemRepo: itemRepo}
}

type CreateSpecialIn struct {
	MenuItemID  uint             `json:"menuItemId"`
	PriceCents  int64            `json:"priceCents"`
	Description string           `json:"description"`
	Days        []entity.Weekday `json:"days"`
}

// UpdateSpecialIn edits a single row in place. The day is not editable; a
// special moves to another day by delete and recreate.
type UpdateSpecialIn struct {
	MenuItemID  uint   `json:"menuItemId"`
	PriceCents  int64  `json:"priceCents"`
	Description string `json:"description"`
}

func (s *SpecialService) List() ([]entity.Special, error) {
	return s.Repo.FindAll()
}

func (s *SpecialService) Get(id uint) (*entity.Special, error) {
	return s.Repo.FindByID(id)
}

// Create inserts one row per selected weekday in a single batch. Every
// requested day must be free for the item; one special per (item, day).
func (s *SpecialService) Create(in *CreateSpecialIn) ([]entity.Special, error) {
	if in.MenuItemID == 0 {
		return nil, fmt.Errorf("%w: menu item is required", ErrInvalid)
	}
	if in.PriceCents < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalid)
	}
	if len(in.Days) == 0 {
		return nil, fmt.Errorf("%w: pick at least one day", ErrInvalid)
	}
	seen := make(map[entity.Weekday]bool)
	for _, day := range in.Days {
		if !day.Valid() {
			return nil, fmt.Errorf("%w: unknown day %q", ErrInvalid, day)
		}
		if seen[day] {
			return nil, fmt.Errorf("%w: day %q listed twice", ErrInvalid, day)
		}
		seen[day] = true
	}

	item, err := s.ItemRepo.FindByID(in.MenuItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: menu item %d", ErrNotFound, in.MenuItemID)
	}

	for _, day := range in.Days {
		exists, err := s.Repo.ExistsForDay(in.MenuItemID, day)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: %q is already on special for %s", ErrInvalid, item.Name, day)
		}
	}

	rows := make([]entity.Special, 0, len(in.Days))
	for _, day := range in.Days {
		rows = append(rows, entity.Special{
			MenuItemID:  in.MenuItemID,
			Day:         day,
			PriceCents:  in.PriceCents,
			Description: in.Description,
		})
	}
	if err := s.Repo.CreateBatch(rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *SpecialService) Update(id uint, in *UpdateSpecialIn) (*entity.Special, error) {
	if in.MenuItemID == 0 {
		return nil, fmt.Errorf("%w: menu item is required", ErrInvalid)
	}
	if in.PriceCents < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalid)
	}

	sp, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, fmt.Errorf("%w: special %d", ErrNotFound, id)
	}

	if in.MenuItemID != sp.MenuItemID {
		item, err := s.ItemRepo.FindByID(in.MenuItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, fmt.Errorf("%w: menu item %d", ErrNotFound, in.MenuItemID)
		}
		exists, err := s.Repo.ExistsForDay(in.MenuItemID, sp.Day)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: %q is already on special for %s", ErrInvalid, item.Name, sp.Day)
		}
	}

	fields := map[string]any{
		"menu_item_id": in.MenuItemID,
		"price_cents":  in.PriceCents,
		"description":  in.Description,
	}
	if err := s.Repo.Update(id, fields); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}

func (s *SpecialService) Delete(id uint) error {
	sp, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}
	if sp == nil {
		return fmt.Errorf("%w: special %d", ErrNotFound, id)
	}
	return s.Repo.Delete(id)
}
