package handler

import (
	"time"

	"github.com/dj1alilou/windyluxury/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	stats  service.StatsService
	orders service.OrderService
}

func NewAdminHandler(stats service.StatsService, orders service.OrderService) *AdminHandler {
	return &AdminHandler{stats: stats, orders: orders}
}

func (h *AdminHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.stats.GetStats()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(stats)
}

// Cleanup applies the order retention policy on demand.
func (h *AdminHandler) Cleanup(c *fiber.Ctx) error {
	deleted, err := h.orders.PruneOrders(time.Now())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "deleted": deleted})
}
