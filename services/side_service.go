package services

import (
	"fmt"
	"strings"

	"github.com/moeinteractive/ohtommys-sub000/entity"
	"github.com/moeinteractive/ohtommys-sub000/repository"
)

type SideService struct {
	Repo *repository.SideRepository
}

func NewSideService(repo *repository.SideRepository) *SideService {
	return &SideService{Repo: repo}
}

type SaveSideIn struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	PriceCents  *int64              `json:"priceCents"`
	Category    entity.SideCategory `json:"category"`
	IsActive    bool                `json:"isActive"`
}

func (in *SaveSideIn) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if !in.Category.Valid() {
		return fmt.Errorf("%w: unknown side category %q", ErrInvalid, in.Category)
	}
	if in.PriceCents != nil && *in.PriceCents < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalid)
	}
	return nil
}

func (s *SideService) List() ([]entity.Side, error) {
	return s.Repo.FindAll()
}

func (s *SideService) ListActive() ([]entity.Side, error) {
	return s.Repo.FindActive()
}

func (s *SideService) Get(id uint) (*entity.Side, error) {
	return s.Repo.FindByID(id)
}

func (s *SideService) Create(in *SaveSideIn) (*entity.Side, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	side := entity.Side{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Category:    in.Category,
		IsActive:    in.IsActive,
	}
	if err := s.Repo.Create(&side); err != nil {
		return nil, err
	}
	return &side, nil
}

func (s *SideService) Update(id uint, in *SaveSideIn) (*entity.Side, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	side, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if side == nil {
		return nil, fmt.Errorf("%w: side %d", ErrNotFound, id)
	}
	side.Name = strings.TrimSpace(in.Name)
	side.Description = in.Description
	side.PriceCents = in.PriceCents
	side.Category = in.Category
	side.IsActive = in.IsActive
	if err := s.Repo.Update(side); err != nil {
		return nil, err
	}
	return side, nil
}

// Delete refuses while any menu item still offers the side. Advisory check
// only; the store carries no foreign-key constraint for this.
func (s *SideService) Delete(id uint) error {
	side, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}
	if side == nil {
		return fmt.Errorf("%w: side %d", ErrNotFound, id)
	}
	n, err := s.Repo.CountAssociations(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrSideInUse
	}
	return s.Repo.Delete(id)
}
