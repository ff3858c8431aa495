package handler

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dj1alilou/windyluxury/internal/model"
	"github.com/dj1alilou/windyluxury/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListOrders(c.Query("status"))
	if err != nil {
		return fail(c, err)
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return c.JSON(orders)
}

func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	order, err := h.service.GetOrder(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(order)
}

// CreateOrder is the storefront checkout endpoint. Validation failures
// answer 400 with {success:false} so the storefront can show the message
// inline.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req service.SubmitOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid JSON"})
	}

	order, err := h.service.SubmitOrder(&req)
	if err != nil {
		// A missing product inside a line rejects the whole order as a bad
		// request here, unlike direct lookups where it is a 404.
		if service.IsValidationError(err) || errors.Is(err, service.ErrProductNotFound) {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": err.Error()})
		}
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "order": order})
}

func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var body struct {
		Status model.OrderStatus `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.UpdateStatus(c.Params("id"), body.Status)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "order": order})
}

// ExportZRExpress streams the logistics CSV as a download. An optional
// ids query parameter (comma separated) restricts the export.
func (h *OrderHandler) ExportZRExpress(c *fiber.Ctx) error {
	var ids []string
	if raw := c.Query("ids"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}

	csv, err := h.service.ExportZRExpress(ids)
	if err != nil {
		return fail(c, err)
	}

	filename := fmt.Sprintf("ZR_Express_%d.csv", time.Now().UnixMilli())
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.SendString(csv)
}
