package repository

import (
	"errors"
	"time"

	"github.com/dj1alilou/windyluxury/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *model.Order) error
	FindAll(status string) ([]model.Order, error)
	FindByID(id string) (*model.Order, error)
	UpdateStatus(id string, status model.OrderStatus) (*model.Order, error)
	// Prune deletes orders outside the newest `keep` that were created
	// before `olderThan`, and returns the number deleted.
	Prune(keep int, olderThan time.Time) (int64, error)
	// Revenue sums order totals; Pending counts orders awaiting handling.
	Revenue() (decimal.Decimal, error)
	CountAll() (int64, error)
	CountByStatus(status model.OrderStatus) (int64, error)
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

func (r *orderRepo) Create(order *model.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepo) FindAll(status string) ([]model.Order, error) {
	var orders []model.Order
	q := r.db.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindByID(id string) (*model.Order, error) {
	var order model.Order
	err := r.db.First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) UpdateStatus(id string, status model.OrderStatus) (*model.Order, error) {
	res := r.db.Model(&model.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(id)
}

func (r *orderRepo) Prune(keep int, olderThan time.Time) (int64, error) {
	var keepIDs []string
	if err := r.db.Model(&model.Order{}).
		Order("created_at DESC").
		Limit(keep).
		Pluck("id", &keepIDs).Error; err != nil {
		return 0, err
	}

	q := r.db.Where("created_at < ?", olderThan)
	if len(keepIDs) > 0 {
		q = q.Where("id NOT IN ?", keepIDs)
	}
	res := q.Delete(&model.Order{})
	return res.RowsAffected, res.Error
}

func (r *orderRepo) Revenue() (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.Model(&model.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	return total, err
}

func (r *orderRepo) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&model.Order{}).Count(&count).Error
	return count, err
}

func (r *orderRepo) CountByStatus(status model.OrderStatus) (int64, error) {
	var count int64
	err := r.db.Model(&model.Order{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
