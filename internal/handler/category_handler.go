package handler

import (
	"log"

	"github.com/dj1alilou/windyluxury/internal/model"
	"github.com/dj1alilou/windyluxury/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	service service.CatalogService
}

func NewCategoryHandler(s service.CatalogService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

// GetCategories never fails the storefront: a broken read answers with
// the compiled-in defaults.
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories()
	if err != nil {
		log.Printf("list categories: %v", err)
		return c.JSON(model.DefaultCategories())
	}
	return c.JSON(categories)
}
