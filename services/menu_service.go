// services/menu_service.go
package services

import (
	"fmt"
	"strings"

	"github.com/moeinteractive/ohtommys-sub000/entity"
	"github.com/moeinteractive/ohtommys-sub000/repository"

	"gorm.io/gorm"
)

// MenuService owns the menu item aggregate: the scalar row plus its sizes,
// extras and side associations. Edits replace the dependent rows wholesale
// from the submitted form state; the whole sequence runs in one transaction
// so a mid-sequence failure cannot leave the aggregate half-updated.
type MenuService struct {
	DB   *gorm.DB
	Repo *repository.MenuItemRepository
}

func NewMenuService(db *gorm.DB, repo *repository.MenuItemRepository) *MenuService {
	return &MenuService{DB: db, Repo: repo}
}

// ----- DTOs from Controller -----

type SizeIn struct {
	Name       string `json:"name" binding:"required"`
	PriceCents int64  `json:"priceCents"`
}

type ExtraIn struct {
	Name       string `json:"name" binding:"required"`
	PriceCents int64  `json:"priceCents"`
}

type SideSelectionIn struct {
	SideID    uint `json:"sideId" binding:"required"`
	IsDefault bool `json:"isDefault"`
}

type SaveMenuItemIn struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	PriceCents  *int64            `json:"priceCents"`
	Category    entity.Category   `json:"category"`
	Day         *entity.Weekday   `json:"day"`
	IsSpecial   bool              `json:"isSpecial"`
	Picture     string            `json:"picture"`
	Sizes       []SizeIn          `json:"sizes"`
	Extras      []ExtraIn         `json:"extras"`
	Sides       []SideSelectionIn `json:"sides"`
}

func (in *SaveMenuItemIn) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if in.Category != "" && !in.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalid, in.Category)
	}
	if in.Day != nil && !in.Day.Valid() {
		return fmt.Errorf("%w: unknown day %q", ErrInvalid, *in.Day)
	}
	if in.PriceCents != nil && *in.PriceCents < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalid)
	}
	for _, sz := range in.Sizes {
		if strings.TrimSpace(sz.Name) == "" {
			return fmt.Errorf("%w: size name is required", ErrInvalid)
		}
		if sz.PriceCents < 0 {
			return fmt.Errorf("%w: size price must not be negative", ErrInvalid)
		}
	}
	for _, ex := range in.Extras {
		if strings.TrimSpace(ex.Name) == "" {
			return fmt.Errorf("%w: extra name is required", ErrInvalid)
		}
		if ex.PriceCents < 0 {
			return fmt.Errorf("%w: extra price must not be negative", ErrInvalid)
		}
	}
	for _, sel := range in.Sides {
		if sel.SideID == 0 {
			return fmt.Errorf("%w: side id is required", ErrInvalid)
		}
	}
	return nil
}

func (in *SaveMenuItemIn) scalarFields() map[string]any {
	return map[string]any{
		"name":        strings.TrimSpace(in.Name),
		"description": in.Description,
		"price_cents": in.PriceCents,
		"category":    in.Category,
		"day":         in.Day,
		"is_special":  in.IsSpecial,
		"picture":     in.Picture,
	}
}

func (s *MenuService) List() ([]entity.MenuItem, error) {
	return s.Repo.FindAll()
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	return s.Repo.FindByID(id)
}

// Create writes the scalar row and the full dependent set in one transaction,
// then re-fetches the aggregate so the caller sees exactly what was stored.
func (s *MenuService) Create(in *SaveMenuItemIn) (*entity.MenuItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var itemID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		item := entity.MenuItem{
			Name:        strings.TrimSpace(in.Name),
			Description: in.Description,
			PriceCents:  in.PriceCents,
			Category:    in.Category,
			Day:         in.Day,
			IsSpecial:   in.IsSpecial,
			Picture:     in.Picture,
		}
		if err := s.Repo.Create(tx, &item); err != nil {
			return err
		}
		itemID = item.ID
		return s.insertDependents(tx, itemID, in)
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.FindByID(itemID)
}

// Update rewrites the scalar columns, deletes every existing size, extra and
// side association, and reinserts the submitted sets. No diffing: the form
// state is the whole truth.
func (s *MenuService) Update(id uint, in *SaveMenuItemIn) (*entity.MenuItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	existing, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: menu item %d", ErrNotFound, id)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.UpdateScalars(tx, id, in.scalarFields()); err != nil {
			return err
		}
		if err := s.Repo.DeleteSizes(tx, id); err != nil {
			return err
		}
		if err := s.Repo.DeleteExtras(tx, id); err != nil {
			return err
		}
		if err := s.Repo.DeleteItemSides(tx, id); err != nil {
			return err
		}
		return s.insertDependents(tx, id, in)
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}

func (s *MenuService) insertDependents(tx *gorm.DB, itemID uint, in *SaveMenuItemIn) error {
	sizes := make([]entity.Size, 0, len(in.Sizes))
	for _, sz := range in.Sizes {
		sizes = append(sizes, entity.Size{
			MenuItemID: itemID,
			Name:       strings.TrimSpace(sz.Name),
			PriceCents: sz.PriceCents,
		})
	}
	if err := s.Repo.InsertSizes(tx, sizes); err != nil {
		return err
	}

	extras := make([]entity.Extra, 0, len(in.Extras))
	for _, ex := range in.Extras {
		extras = append(extras, entity.Extra{
			MenuItemID: itemID,
			Name:       strings.TrimSpace(ex.Name),
			PriceCents: ex.PriceCents,
		})
	}
	if err := s.Repo.InsertExtras(tx, extras); err != nil {
		return err
	}

	assocs := make([]entity.ItemSide, 0, len(in.Sides))
	for _, sel := range in.Sides {
		assocs = append(assocs, entity.ItemSide{
			MenuItemID: itemID,
			SideID:     sel.SideID,
			IsDefault:  sel.IsDefault,
		})
	}
	return s.Repo.InsertItemSides(tx, assocs)
}

// Delete cascades over the dependent tables and the item itself. The specials
// guard runs first, before anything destructive; the unconditional specials
// delete inside the transaction is redundant after it but kept as a backstop.
func (s *MenuService) Delete(id uint) error {
	existing, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("%w: menu item %d", ErrNotFound, id)
	}

	n, err := s.Repo.CountSpecials(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrHasSpecials
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.DeleteSpecials(tx, id); err != nil {
			return err
		}
		if err := s.Repo.DeleteItemSides(tx, id); err != nil {
			return err
		}
		if err := s.Repo.DeleteSizes(tx, id); err != nil {
			return err
		}
		if err := s.Repo.DeleteExtras(tx, id); err != nil {
			return err
		}
		return s.Repo.Delete(tx, id)
	})
}
