package services

import (
	"errors"
	"fmt"
	"strings"

	"canteen-backend/entity"
	"canteen-backend/repository"

	"gorm.io/gorm"
)

var (
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidPrice    = errors.New("price must not be negative")
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

// ----- DTOs from Controller -----

type CreateMenuItemReq struct {
	Name            string   `json:"name" binding:"required"`
	Description     string   `json:"description"`
	Price           *float64 `json:"price" binding:"required"`
	Category        string   `json:"category" binding:"required"`
	Image           string   `json:"image"`
	PreparationTime int      `json:"preparationTime"`
}

// UpdateMenuItemReq is a partial patch; nil fields are left untouched.
// "available" is accepted as an alias for isAvailable, matching what the
// admin dashboard sends.
type UpdateMenuItemReq struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	Category        *string  `json:"category"`
	Image           *string  `json:"image"`
	IsAvailable     *bool    `json:"isAvailable"`
	Available       *bool    `json:"available"`
	PreparationTime *int     `json:"preparationTime"`
}

func (s *MenuService) List(category string, available *bool) ([]entity.MenuItem, error) {
	return s.Repo.List(category, available)
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrMenuItemNotFound, id)
		}
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Create(req *CreateMenuItemReq) (*entity.MenuItem, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	if !entity.ValidCategory(req.Category) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, req.Category)
	}
	if req.Price == nil || *req.Price < 0 {
		return nil, ErrInvalidPrice
	}

	item := &entity.MenuItem{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Price:       *req.Price,
		Category:    req.Category,
		Image:       req.Image,
		IsAvailable: true,

		PreparationTime: req.PreparationTime,
	}
	if item.Image == "" {
		item.Image = entity.PlaceholderImage
	}
	if item.PreparationTime <= 0 {
		item.PreparationTime = 10
	}

	if err := s.Repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *MenuService) Update(id uint, req *UpdateMenuItemReq) (*entity.MenuItem, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errors.New("name must not be empty")
		}
		fields["name"] = name
	}
	if req.Description != nil {
		fields["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrInvalidPrice
		}
		fields["price"] = *req.Price
	}
	if req.Category != nil {
		if !entity.ValidCategory(*req.Category) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, *req.Category)
		}
		fields["category"] = *req.Category
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.IsAvailable != nil {
		fields["is_available"] = *req.IsAvailable
	} else if req.Available != nil {
		fields["is_available"] = *req.Available
	}
	if req.PreparationTime != nil {
		if *req.PreparationTime < 1 {
			return nil, errors.New("preparationTime must be at least 1 minute")
		}
		fields["preparation_time"] = *req.PreparationTime
	}

	if len(fields) > 0 {
		if err := s.Repo.Update(id, fields); err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

// Delete removes a catalog item. A missing id is an error, not a no-op.
func (s *MenuService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

// SetImage points an item at an uploaded picture URL.
func (s *MenuService) SetImage(id uint, url string) (*entity.MenuItem, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(id, map[string]any{"image": url}); err != nil {
		return nil, err
	}
	return s.Get(id)
}
