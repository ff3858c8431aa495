package repository

import (
	"github.com/dj1alilou/windyluxury/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	FindAll() ([]model.Category, error)
	SeedDefaults() error
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) FindAll() ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Order("id ASC").Find(&categories).Error
	return categories, err
}

// SeedDefaults inserts the compiled-in categories when the collection is
// empty. Existing admin-edited categories are left untouched.
func (r *categoryRepo) SeedDefaults() error {
	var count int64
	if err := r.db.Model(&model.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	defaults := model.DefaultCategories()
	return r.db.Create(&defaults).Error
}
