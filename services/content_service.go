package services

import (
	"fmt"
	"strings"

	"github.com/moeinteractive/ohtommys-sub000/entity"
	"github.com/moeinteractive/ohtommys-sub000/repository"
)

type ContentService struct {
	Repo *repository.ContentRepository
}

func NewContentService(repo *repository.ContentRepository) *ContentService {
	return &ContentService{Repo: repo}
}

func (s *ContentService) List() ([]entity.ContentBlock, error) {
	return s.Repo.FindAll()
}

func (s *ContentService) Get(key string) (*entity.ContentBlock, error) {
	return s.Repo.FindByKey(key)
}

func (s *ContentService) Set(key, value string) (*entity.ContentBlock, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("%w: content key is required", ErrInvalid)
	}
	return s.Repo.Upsert(key, value)
}
