package handler

import (
	"github.com/dj1alilou/windyluxury/internal/imagestore"

	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	images imagestore.Store
}

func NewUploadHandler(images imagestore.Store) *UploadHandler {
	return &UploadHandler{images: images}
}

// Upload stores a single standalone image (used by the admin UI editor).
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "image file is required"})
	}

	data, err := readFormFile(file)
	if err != nil {
		return fail(c, err)
	}

	img, err := h.images.Upload(data, "uploads")
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(img)
}
