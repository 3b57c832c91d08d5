package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/vedavayu/clinic-backend/internal/api/dto"
	"github.com/vedavayu/clinic-backend/internal/domain"
	"github.com/vedavayu/clinic-backend/internal/repository"
	apperrors "github.com/vedavayu/clinic-backend/pkg/util"
)

// BannersHandler manages landing-page banners.
type BannersHandler struct {
	banners repository.BannerRepository
}

// NewBannersHandler constructs handler.
func NewBannersHandler(banners repository.BannerRepository) *BannersHandler {
	return &BannersHandler{banners: banners}
}

// List handles GET /api/banners.
func (h *BannersHandler) List(c *fiber.Ctx) error {
	banners, err := h.banners.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.BannerResponse, 0, len(banners))
	for i := range banners {
		items = append(items, dto.NewBannerResponse(&banners[i]))
	}
	return c.JSON(fiber.Map{"success": true, "banners": items})
}

// Get handles GET /api/banners/:id.
func (h *BannersHandler) Get(c *fiber.Ctx) error {
	banner, err := h.banners.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Banner", nil)
		}
		return err
	}
	return c.JSON(fiber.Map{"success": true, "banner": dto.NewBannerResponse(banner)})
}

// Create handles POST /api/banners.
func (h *BannersHandler) Create(c *fiber.Ctx) error {
	var req dto.BannerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" || req.Date == "" || req.Time == "" || req.RegistrationLink == "" {
		return apperrors.NewValidationError("title, date, time, registrationLink required", nil)
	}

	banner := &domain.Banner{
		Title:            req.Title,
		Date:             req.Date,
		Time:             req.Time,
		RegistrationLink: req.RegistrationLink,
	}
	if err := h.banners.Create(c.Context(), banner); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"success": true, "banner": dto.NewBannerResponse(banner)})
}

// Update handles PUT /api/banners/:id.
func (h *BannersHandler) Update(c *fiber.Ctx) error {
	var req dto.BannerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	banner, err := h.banners.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Banner", nil)
		}
		return err
	}

	if req.Title != "" {
		banner.Title = req.Title
	}
	if req.Date != "" {
		banner.Date = req.Date
	}
	if req.Time != "" {
		banner.Time = req.Time
	}
	if req.RegistrationLink != "" {
		banner.RegistrationLink = req.RegistrationLink
	}

	if err := h.banners.Update(c.Context(), banner); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "banner": dto.NewBannerResponse(banner)})
}

// Delete handles DELETE /api/banners/:id.
func (h *BannersHandler) Delete(c *fiber.Ctx) error {
	if err := h.banners.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Banner", nil)
		}
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Banner deleted successfully"})
}
