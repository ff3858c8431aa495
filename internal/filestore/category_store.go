package filestore

import (
	"time"

	"github.com/dj1alilou/windyluxury/internal/model"
)

const categoriesFile = "categories.json"

type categoryStore struct {
	s *Store
}

func (c *categoryStore) FindAll() ([]model.Category, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	var categories []model.Category
	if err := c.s.read(categoriesFile, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *categoryStore) SeedDefaults() error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	var categories []model.Category
	if err := c.s.read(categoriesFile, &categories); err != nil {
		return err
	}
	if len(categories) > 0 {
		return nil
	}
	now := time.Now()
	defaults := model.DefaultCategories()
	for i := range defaults {
		defaults[i].CreatedAt = now
		defaults[i].UpdatedAt = now
	}
	return c.s.write(categoriesFile, defaults)
}
