package repository

import (
	"errors"

	"github.com/dj1alilou/windyluxury/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(status string) ([]model.Product, error)
	FindByID(id string) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id string) error
	CountAll() (int64, error)
	// DecrementStock applies every line's decrement or none of them.
	// Returns ErrInsufficientStock / ErrUnknownSize when a line cannot be
	// satisfied, leaving the catalog untouched.
	DecrementStock(lines []model.OrderLine) error
	// RestoreStock adds the quantities back. Best-effort compensation when
	// order persistence fails after a successful decrement.
	RestoreStock(lines []model.OrderLine) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll(status string) ([]model.Product, error) {
	var products []model.Product
	q := r.db.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id string) error {
	res := r.db.Delete(&model.Product{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *productRepo) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Count(&count).Error
	return count, err
}

// DecrementStock runs in a single transaction with row locks, so two
// concurrent orders cannot both take the last unit.
func (r *productRepo) DecrementStock(lines []model.OrderLine) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, line := range lines {
			var product model.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, "id = ?", line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return err
			}
			if err := ApplyDecrement(&product, line.Size, line.Quantity); err != nil {
				return err
			}
			if err := tx.Save(&product).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *productRepo) RestoreStock(lines []model.OrderLine) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, line := range lines {
			var product model.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, "id = ?", line.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue // product deleted meanwhile, nothing to restore
				}
				return err
			}
			ApplyRestore(&product, line.Size, line.Quantity)
			if err := tx.Save(&product).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ApplyDecrement mutates the in-memory product, enforcing the availability
// invariant: variant stock governs whenever variants exist.
func ApplyDecrement(product *model.Product, size string, qty int) error {
	if product.HasSizes() {
		variant := product.VariantFor(size)
		if variant == nil {
			return ErrUnknownSize
		}
		if variant.Stock < qty {
			return ErrInsufficientStock
		}
		variant.Stock -= qty
		return nil
	}
	if product.Stock < qty {
		return ErrInsufficientStock
	}
	product.Stock -= qty
	return nil
}

func ApplyRestore(product *model.Product, size string, qty int) {
	if product.HasSizes() {
		if variant := product.VariantFor(size); variant != nil {
			variant.Stock += qty
		}
		return
	}
	product.Stock += qty
}
