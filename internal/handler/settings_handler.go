package handler

import (
	"log"
	"strconv"

	"github.com/dj1alilou/windyluxury/internal/model"
	"github.com/dj1alilou/windyluxury/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	service service.SettingsService
}

func NewSettingsHandler(s service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: s}
}

// GetSettings degrades to an empty document on read failure so the
// storefront can keep rendering with defaults.
func (h *SettingsHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.service.Get()
	if err != nil {
		log.Printf("get settings: %v", err)
		return c.JSON(fiber.Map{})
	}
	return c.JSON(settings)
}

func (h *SettingsHandler) UpdateSettings(c *fiber.Ctx) error {
	var incoming model.Settings
	if err := c.BodyParser(&incoming); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	settings, err := h.service.Update(&incoming)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "settings": settings})
}

func (h *SettingsHandler) UpsertWilaya(c *fiber.Ctx) error {
	var wilaya model.DeliveryWilaya
	if err := c.BodyParser(&wilaya); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if wilaya.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "wilaya name is required"})
	}

	if err := h.service.UpsertWilaya(wilaya); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *SettingsHandler) RemoveWilaya(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid index"})
	}

	if err := h.service.RemoveWilaya(index); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// SeedWilayas fills in any missing wilaya with a zero-priced entry.
// Existing prices are never touched, so re-running is safe.
func (h *SettingsHandler) SeedWilayas(c *fiber.Ctx) error {
	added, err := h.service.SeedDefaultWilayas()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "added": added})
}
