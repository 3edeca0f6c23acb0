package repository

import (
	"canteen-backend/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Create inserts the order and its snapshot lines in one go. The unique
// index on orders.code is what surfaces order-code collisions.
func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// FindByCode looks an order up by its public code. Callers normalize the
// code to upper case first; customers type it from a receipt.
func (r *OrderRepository) FindByCode(code string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").Where("code = ?", code).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// List returns orders newest first for the dashboard. status "" or "all"
// means no filter.
func (r *OrderRepository) List(status string, limit int) ([]entity.Order, error) {
	q := r.DB.Preload("Items")
	if status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}
	if limit <= 0 {
		limit = 50
	}

	var orders []entity.Order
	err := q.Order("created_at DESC").Limit(limit).Find(&orders).Error
	return orders, err
}

// UpdateStatusGuard moves an order from an expected current status to the
// next one. Zero rows affected means the order moved underneath us.
func (r *OrderRepository) UpdateStatusGuard(orderID uint, from, to string) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Order{}).Count(&n).Error
	return n, err
}
