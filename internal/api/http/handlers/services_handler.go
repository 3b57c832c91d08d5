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

// ServicesHandler manages the clinic service catalogue.
type ServicesHandler struct {
	services repository.ServiceRepository
}

// NewServicesHandler constructs handler.
func NewServicesHandler(services repository.ServiceRepository) *ServicesHandler {
	return &ServicesHandler{services: services}
}

// List handles GET /api/services.
func (h *ServicesHandler) List(c *fiber.Ctx) error {
	services, err := h.services.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.ServiceResponse, 0, len(services))
	for i := range services {
		items = append(items, dto.NewServiceResponse(&services[i]))
	}
	return c.JSON(fiber.Map{"success": true, "services": items})
}

// Get handles GET /api/services/:id.
func (h *ServicesHandler) Get(c *fiber.Ctx) error {
	svc, err := h.services.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Service", nil)
		}
		return err
	}
	return c.JSON(fiber.Map{"success": true, "service": dto.NewServiceResponse(svc)})
}

// Create handles POST /api/services.
func (h *ServicesHandler) Create(c *fiber.Ctx) error {
	var req dto.ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}
	if req.Icon == "" {
		req.Icon = domain.DefaultServiceIcon
	}

	svc := &domain.Service{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	}
	if err := h.services.Create(c.Context(), svc); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"success": true, "service": dto.NewServiceResponse(svc)})
}

// Update handles PUT /api/services/:id.
func (h *ServicesHandler) Update(c *fiber.Ctx) error {
	var req dto.ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	svc, err := h.services.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Service", nil)
		}
		return err
	}

	if req.Name != "" {
		svc.Name = req.Name
	}
	if req.Description != "" {
		svc.Description = req.Description
	}
	if req.Icon != "" {
		svc.Icon = req.Icon
	}

	if err := h.services.Update(c.Context(), svc); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "service": dto.NewServiceResponse(svc)})
}

// Delete handles DELETE /api/services/:id.
func (h *ServicesHandler) Delete(c *fiber.Ctx) error {
	if err := h.services.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Service", nil)
		}
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "Service deleted successfully"})
}
