package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/vedavayu/clinic-backend/internal/api/dto"
	"github.com/vedavayu/clinic-backend/internal/domain"
	"github.com/vedavayu/clinic-backend/internal/media"
	"github.com/vedavayu/clinic-backend/internal/repository"
	apperrors "github.com/vedavayu/clinic-backend/pkg/util"
)

const galleryFolder = "gallery"

// GalleryHandler manages the site photo gallery. Unlike the other resources
// a gallery entry is nothing without its image, so upload failures here are
// fatal to the request rather than degrading to local storage.
type GalleryHandler struct {
	gallery repository.GalleryRepository
	uploads *media.Coordinator
}

// NewGalleryHandler constructs handler.
func NewGalleryHandler(gallery repository.GalleryRepository, uploads *media.Coordinator) *GalleryHandler {
	return &GalleryHandler{gallery: gallery, uploads: uploads}
}

// List handles GET /api/gallery.
func (h *GalleryHandler) List(c *fiber.Ctx) error {
	images, err := h.gallery.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.GalleryImageResponse, 0, len(images))
	for i := range images {
		items = append(items, dto.NewGalleryImageResponse(&images[i]))
	}
	return c.JSON(fiber.Map{"success": true, "gallery": items})
}

// Get handles GET /api/gallery/:id.
func (h *GalleryHandler) Get(c *fiber.Ctx) error {
	image, err := h.gallery.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Image", nil)
		}
		return err
	}
	return c.JSON(fiber.Map{"success": true, "image": dto.NewGalleryImageResponse(image)})
}

// Create handles POST /api/gallery (multipart, required image field).
func (h *GalleryHandler) Create(c *fiber.Ctx) error {
	file := formFile(c, "image")
	if file == nil {
		return apperrors.NewValidationError("No image provided", nil)
	}

	photo, err := h.uploads.Resolve(c.Context(), file, galleryFolder, false)
	if err != nil {
		return err
	}

	image := &domain.GalleryImage{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Photo:       photo,
	}
	if err := h.gallery.Create(c.Context(), image); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"success": true, "image": dto.NewGalleryImageResponse(image)})
}

// Delete handles DELETE /api/gallery/:id.
func (h *GalleryHandler) Delete(c *fiber.Ctx) error {
	image, err := h.gallery.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Image", nil)
		}
		return err
	}

	if err := h.gallery.Delete(c.Context(), image.ID); err != nil {
		return err
	}
	h.uploads.Discard(c.Context(), image.Photo, galleryFolder)

	return c.JSON(fiber.Map{"success": true, "message": "Image deleted successfully"})
}
