package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/vedavayu/clinic-backend/internal/api/dto"
	"github.com/vedavayu/clinic-backend/internal/domain"
	"github.com/vedavayu/clinic-backend/internal/repository"
	apperrors "github.com/vedavayu/clinic-backend/pkg/util"
)

// StatisticsHandler manages the singleton headline numbers.
type StatisticsHandler struct {
	stats repository.StatisticsRepository
}

// NewStatisticsHandler constructs handler.
func NewStatisticsHandler(stats repository.StatisticsRepository) *StatisticsHandler {
	return &StatisticsHandler{stats: stats}
}

// Get handles GET /api/statistics, seeding defaults on first read.
func (h *StatisticsHandler) Get(c *fiber.Ctx) error {
	stats, err := h.stats.Get(c.Context())
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		seeded := domain.DefaultStatistics()
		if err := h.stats.Save(c.Context(), &seeded); err != nil {
			return err
		}
		stats = &seeded
	}
	return c.JSON(dto.NewStatisticsResponse(stats))
}

// Update handles PUT /api/statistics with partial fields.
func (h *StatisticsHandler) Update(c *fiber.Ctx) error {
	var req dto.StatisticsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	stats, err := h.stats.Get(c.Context())
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		stats = &domain.Statistics{}
	}

	if req.PatientsTreated != nil {
		stats.PatientsTreated = *req.PatientsTreated
	}
	if req.TestReports != nil {
		stats.TestReports = *req.TestReports
	}
	if req.HoursSupport != nil {
		stats.HoursSupport = *req.HoursSupport
	}
	if req.RecoveryRate != nil {
		stats.RecoveryRate = *req.RecoveryRate
	}

	if err := h.stats.Save(c.Context(), stats); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "statistics": dto.NewStatisticsResponse(stats)})
}
