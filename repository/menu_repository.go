// repository/menu_repository.go
package repository

import (
	"canteen-backend/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// List returns catalog items, optionally filtered by category and/or
// availability, sorted the way the menu page shows them.
func (r *MenuRepository) List(category string, available *bool) ([]entity.MenuItem, error) {
	q := r.DB.Model(&entity.MenuItem{})
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}
	if available != nil {
		q = q.Where("is_available = ?", *available)
	}

	var items []entity.MenuItem
	err := q.Order("category, name").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

// Update applies a partial field merge. Map form so false/zero values stick.
func (r *MenuRepository) Update(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(fields).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}
