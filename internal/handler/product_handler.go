package handler

import (
	"encoding/json"
	"io"
	"log"
	"mime/multipart"

	"github.com/dj1alilou/windyluxury/internal/imagestore"
	"github.com/dj1alilou/windyluxury/internal/model"
	"github.com/dj1alilou/windyluxury/internal/service"

	"github.com/gofiber/fiber/v2"
)

const maxProductImages = 4

type ProductHandler struct {
	service service.CatalogService
	images  imagestore.Store
}

func NewProductHandler(s service.CatalogService, images imagestore.Store) *ProductHandler {
	return &ProductHandler{service: s, images: images}
}

// GetProducts serves the storefront listing. A broken catalog read
// degrades to an empty list so the storefront keeps rendering.
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(c.Query("status"))
	if err != nil {
		log.Printf("list products: %v", err)
		return c.JSON([]model.Product{})
	}
	if products == nil {
		products = []model.Product{}
	}
	return c.JSON(products)
}

func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.service.GetProduct(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(product)
}

// CreateProduct accepts multipart form data: a "product" field holding
// the product JSON plus up to 4 "images" files.
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	product, err := parseProductForm(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	uploaded, err := h.uploadImages(c)
	if err != nil {
		return fail(c, err)
	}
	product.Images = uploaded

	if err := h.service.CreateProduct(product); err != nil {
		h.releaseImages(uploaded)
		return fail(c, err)
	}

	return c.Status(201).JSON(product)
}

// UpdateProduct merges the kept images (sent back as "existingImages"
// JSON) with any newly uploaded files.
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	product, err := parseProductForm(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	var kept []model.Image
	if raw := c.FormValue("existingImages"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &kept); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid existingImages"})
		}
	}

	uploaded, err := h.uploadImages(c)
	if err != nil {
		return fail(c, err)
	}
	product.Images = append(kept, uploaded...)

	updated, err := h.service.UpdateProduct(c.Params("id"), product)
	if err != nil {
		h.releaseImages(uploaded)
		return fail(c, err)
	}

	return c.JSON(updated)
}

func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	product, err := h.service.DeleteProduct(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	h.releaseImages(product.Images)

	return c.JSON(fiber.Map{"success": true})
}

// parseProductForm reads the "product" JSON field from a multipart form,
// falling back to a plain JSON body for clients without images.
func parseProductForm(c *fiber.Ctx) (*model.Product, error) {
	var product model.Product
	if raw := c.FormValue("product"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &product); err != nil {
			return nil, fiber.NewError(400, "Invalid product JSON")
		}
		return &product, nil
	}
	if err := c.BodyParser(&product); err != nil {
		return nil, fiber.NewError(400, "Invalid JSON")
	}
	return &product, nil
}

func (h *ProductHandler) uploadImages(c *fiber.Ctx) ([]model.Image, error) {
	form, err := c.MultipartForm()
	if err != nil {
		// No multipart body at all; nothing to upload.
		return nil, nil
	}

	files := form.File["images"]
	if len(files) > maxProductImages {
		files = files[:maxProductImages]
	}

	var images []model.Image
	for _, file := range files {
		data, err := readFormFile(file)
		if err != nil {
			h.releaseImages(images)
			return nil, err
		}
		img, err := h.images.Upload(data, "products")
		if err != nil {
			h.releaseImages(images)
			return nil, err
		}
		images = append(images, *img)
	}
	return images, nil
}

func (h *ProductHandler) releaseImages(images []model.Image) {
	for _, img := range images {
		if img.PublicID == "" {
			continue
		}
		if err := h.images.Delete(img.PublicID); err != nil {
			log.Printf("delete image %s: %v", img.PublicID, err)
		}
	}
}

func readFormFile(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
