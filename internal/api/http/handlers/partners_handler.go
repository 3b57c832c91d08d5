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

const partnersFolder = "partners"

// PartnersHandler manages affiliated organizations. The logo and owner photo
// are independent image fields: each runs the upload lifecycle on its own,
// and one field's failure never disturbs the other.
type PartnersHandler struct {
	partners repository.PartnerRepository
	uploads  *media.Coordinator
}

// NewPartnersHandler constructs handler.
func NewPartnersHandler(partners repository.PartnerRepository, uploads *media.Coordinator) *PartnersHandler {
	return &PartnersHandler{partners: partners, uploads: uploads}
}

// List handles GET /api/partners.
func (h *PartnersHandler) List(c *fiber.Ctx) error {
	partners, err := h.partners.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.PartnerResponse, 0, len(partners))
	for i := range partners {
		items = append(items, dto.NewPartnerResponse(&partners[i]))
	}
	return c.JSON(fiber.Map{"success": true, "partners": items})
}

// Get handles GET /api/partners/:id.
func (h *PartnersHandler) Get(c *fiber.Ctx) error {
	partner, err := h.partners.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Partner", nil)
		}
		return err
	}
	return c.JSON(fiber.Map{"success": true, "partner": dto.NewPartnerResponse(partner)})
}

// Create handles POST /api/partners (multipart, required logo, optional ownerPhoto).
func (h *PartnersHandler) Create(c *fiber.Ctx) error {
	name := c.FormValue("name")
	logoFile := formFile(c, "logo")
	if name == "" || logoFile == nil {
		return apperrors.NewValidationError("Name and logo are required", nil)
	}

	logo, err := h.uploads.Resolve(c.Context(), logoFile, partnersFolder, true)
	if err != nil {
		return err
	}
	ownerPhoto, err := h.uploads.Resolve(c.Context(), formFile(c, "ownerPhoto"), partnersFolder, true)
	if err != nil {
		return err
	}

	website := c.FormValue("website")
	if website == "" {
		website = "#"
	}
	partner := &domain.Partner{
		Name:       name,
		Website:    website,
		Logo:       logo,
		OwnerPhoto: ownerPhoto,
	}
	if err := h.partners.Create(c.Context(), partner); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"success": true, "partner": dto.NewPartnerResponse(partner)})
}

// Update handles PUT /api/partners/:id (multipart, both image fields optional).
func (h *PartnersHandler) Update(c *fiber.Ctx) error {
	partner, err := h.partners.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Partner", nil)
		}
		return err
	}

	logo, err := h.uploads.Replace(c.Context(), partner.Logo, formFile(c, "logo"), partnersFolder, true)
	if err != nil {
		return err
	}
	partner.Logo = logo

	ownerPhoto, err := h.uploads.Replace(c.Context(), partner.OwnerPhoto, formFile(c, "ownerPhoto"), partnersFolder, true)
	if err != nil {
		return err
	}
	partner.OwnerPhoto = ownerPhoto

	if name := c.FormValue("name"); name != "" {
		partner.Name = name
	}
	if website := c.FormValue("website"); website != "" {
		partner.Website = website
	}

	if err := h.partners.Update(c.Context(), partner); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "partner": dto.NewPartnerResponse(partner)})
}

// Delete handles DELETE /api/partners/:id.
func (h *PartnersHandler) Delete(c *fiber.Ctx) error {
	partner, err := h.partners.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Partner", nil)
		}
		return err
	}

	if err := h.partners.Delete(c.Context(), partner.ID); err != nil {
		return err
	}
	h.uploads.Discard(c.Context(), partner.Logo, partnersFolder)
	h.uploads.Discard(c.Context(), partner.OwnerPhoto, partnersFolder)

	return c.JSON(fiber.Map{"success": true, "message": "Partner deleted successfully"})
}
