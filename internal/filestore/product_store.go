package filestore

import (
	"sort"
	"time"

	"github.com/dj1alilou/windyluxury/internal/model"
	"github.com/dj1alilou/windyluxury/internal/repository"
)

const productsFile = "products.json"

type productStore struct {
	s *Store
}

func (p *productStore) load() ([]model.Product, error) {
	var products []model.Product
	if err := p.s.read(productsFile, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productStore) Create(product *model.Product) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	products, err := p.load()
	if err != nil {
		return err
	}
	now := time.Now()
	if product.ID == "" {
		product.ID = model.NewID()
	}
	product.CreatedAt = now
	product.UpdatedAt = now
	products = append(products, *product)
	return p.s.write(productsFile, products)
}

func (p *productStore) FindAll(status string) ([]model.Product, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	products, err := p.load()
	if err != nil {
		return nil, err
	}
	var filtered []model.Product
	for _, product := range products {
		if status == "" || string(product.Status) == status {
			filtered = append(filtered, product)
		}
	}
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	return filtered, nil
}

func (p *productStore) FindByID(id string) (*model.Product, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	return p.findByID(id)
}

func (p *productStore) findByID(id string) (*model.Product, error) {
	products, err := p.load()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (p *productStore) Update(product *model.Product) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	products, err := p.load()
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == product.ID {
			product.CreatedAt = products[i].CreatedAt
			product.UpdatedAt = time.Now()
			products[i] = *product
			return p.s.write(productsFile, products)
		}
	}
	return repository.ErrNotFound
}

func (p *productStore) Delete(id string) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	products, err := p.load()
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == id {
			products = append(products[:i], products[i+1:]...)
			return p.s.write(productsFile, products)
		}
	}
	return repository.ErrNotFound
}

func (p *productStore) CountAll() (int64, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	products, err := p.load()
	if err != nil {
		return 0, err
	}
	return int64(len(products)), nil
}

// DecrementStock holds the store lock across check and write, so the whole
// order's decrements apply atomically or not at all.
func (p *productStore) DecrementStock(lines []model.OrderLine) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	products, err := p.load()
	if err != nil {
		return err
	}
	byID := make(map[string]int, len(products))
	for i := range products {
		byID[products[i].ID] = i
	}
	for _, line := range lines {
		i, ok := byID[line.ProductID]
		if !ok {
			return repository.ErrNotFound
		}
		if err := repository.ApplyDecrement(&products[i], line.Size, line.Quantity); err != nil {
			return err // nothing written yet, catalog unchanged
		}
	}
	return p.s.write(productsFile, products)
}

func (p *productStore) RestoreStock(lines []model.OrderLine) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	products, err := p.load()
	if err != nil {
		return err
	}
	for _, line := range lines {
		for i := range products {
			if products[i].ID == line.ProductID {
				repository.ApplyRestore(&products[i], line.Size, line.Quantity)
				break
			}
		}
	}
	return p.s.write(productsFile, products)
}
