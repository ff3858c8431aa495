package service

import (
	"errors"
	"fmt"

	"github.com/dj1alilou/windyluxury/internal/model"
	"github.com/dj1alilou/windyluxury/internal/repository"
	"github.com/dj1alilou/windyluxury/internal/ws"
	"github.com/dj1alilou/windyluxury/pkg/validator"
)

type CatalogService interface {
	ListProducts(status string) ([]model.Product, error)
	GetProduct(id string) (*model.Product, error)
	CreateProduct(product *model.Product) error
	UpdateProduct(id string, product *model.Product) (*model.Product, error)
	// DeleteProduct returns the removed product so the caller can release
	// its images from the image store.
	DeleteProduct(id string) (*model.Product, error)
	ListCategories() ([]model.Category, error)
}

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	hub          *ws.Hub
}

func NewCatalogService(pRepo repository.ProductRepository, cRepo repository.CategoryRepository, hub *ws.Hub) CatalogService {
	return &catalogService{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		hub:          hub,
	}
}

func (s *catalogService) ListProducts(status string) ([]model.Product, error) {
	return s.productRepo.FindAll(status)
}

func (s *catalogService) GetProduct(id string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	return product, err
}

func (s *catalogService) CreateProduct(product *model.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	if product.Status == "" {
		product.Status = model.ProductActive
	}

	if err := s.productRepo.Create(product); err != nil {
		return err
	}

	go s.hub.ProductChanged("created", product)

	return nil
}

func (s *catalogService) UpdateProduct(id string, product *model.Product) (*model.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	existing.Name = product.Name
	existing.CategoryID = product.CategoryID
	existing.Description = product.Description
	existing.Price = product.Price
	existing.OldPrice = product.OldPrice
	existing.Stock = product.Stock
	existing.SizeVariants = product.SizeVariants
	existing.Colors = product.Colors
	existing.Images = product.Images
	if product.Status != "" {
		existing.Status = product.Status
	}
	existing.Featured = product.Featured

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}

	go s.hub.ProductChanged("updated", existing)

	return existing, nil
}

func (s *catalogService) DeleteProduct(id string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if err := s.productRepo.Delete(id); err != nil {
		return nil, err
	}

	go s.hub.ProductChanged("deleted", product)

	return product, nil
}

// ListCategories returns the stored categories, falling back to the
// compiled-in defaults when the collection is empty.
func (s *catalogService) ListCategories() ([]model.Category, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return model.DefaultCategories(), nil
	}
	return categories, nil
}

func validateProduct(product *model.Product) error {
	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		return fmt.Errorf("validation failed: field %q on tag %q", errs[0].FailedField, errs[0].Tag)
	}
	if product.Price.IsNegative() {
		return ErrInvalidPrice
	}
	if product.Stock < 0 {
		return ErrInvalidStock
	}
	for _, variant := range product.SizeVariants {
		if variant.Stock < 0 {
			return ErrInvalidStock
		}
	}
	for _, color := range product.Colors {
		if color.Price.IsNegative() {
			return ErrInvalidPrice
		}
	}
	return nil
}
