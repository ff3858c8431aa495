package handler

import (
	"errors"
	"log"

	"github.com/dj1alilou/windyluxury/internal/repository"
	"github.com/dj1alilou/windyluxury/internal/service"

	"github.com/gofiber/fiber/v2"
)

// fail maps a service or repository error onto an HTTP response. Client
// mistakes carry their message; storage failures are logged server-side
// and answered with a generic body.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case service.IsValidationError(err):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, repository.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrStatusConflict):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrUnavailable):
		log.Printf("storage unavailable: %v", err)
		return c.Status(503).JSON(fiber.Map{"error": "Storage unavailable"})
	}
	log.Printf("internal error: %v", err)
	return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
}
