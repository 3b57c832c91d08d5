package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/vedavayu/clinic-backend/internal/api/dto"
	"github.com/vedavayu/clinic-backend/internal/domain"
	"github.com/vedavayu/clinic-backend/internal/media"
	"github.com/vedavayu/clinic-backend/internal/repository"
	apperrors "github.com/vedavayu/clinic-backend/pkg/util"
)

const aboutFolder = "about"

// AboutHandler manages the singleton about page.
type AboutHandler struct {
	about   repository.AboutRepository
	uploads *media.Coordinator
}

// NewAboutHandler constructs handler.
func NewAboutHandler(about repository.AboutRepository, uploads *media.Coordinator) *AboutHandler {
	return &AboutHandler{about: about, uploads: uploads}
}

// Get handles GET /api/about, serving defaults when nothing was written yet.
func (h *AboutHandler) Get(c *fiber.Ctx) error {
	about, err := h.about.Get(c.Context())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			fallback := domain.DefaultAbout()
			return c.JSON(dto.NewAboutResponse(&fallback))
		}
		return err
	}
	return c.JSON(dto.NewAboutResponse(about))
}

// Upsert handles POST /api/about (multipart, optional journeyImage field).
// Creates the document on first write, updates it afterwards.
func (h *AboutHandler) Upsert(c *fiber.Ctx) error {
	about, err := h.about.Get(c.Context())
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		about = &domain.About{}
	}

	image, err := h.uploads.Replace(c.Context(), about.JourneyImage, formFile(c, "journeyImage"), aboutFolder, true)
	if err != nil {
		return err
	}
	about.JourneyImage = image

	if title := c.FormValue("title"); title != "" {
		about.Title = title
	}
	if content := c.FormValue("content"); content != "" {
		about.Content = content
	}
	if mission := c.FormValue("mission"); mission != "" {
		about.Mission = mission
	}
	if vision := c.FormValue("vision"); vision != "" {
		about.Vision = vision
	}
	if doctors := c.FormValue("doctors"); doctors != "" {
		count, err := strconv.Atoi(doctors)
		if err != nil {
			return apperrors.NewValidationError("doctors must be a number", nil)
		}
		about.DoctorCount = count
	}
	if therapies := c.FormValue("therapies"); therapies != "" {
		count, err := strconv.Atoi(therapies)
		if err != nil {
			return apperrors.NewValidationError("therapies must be a number", nil)
		}
		about.TherapyCount = count
	}

	if about.Title == "" || about.Content == "" {
		return apperrors.NewValidationError("title and content required", nil)
	}

	if err := h.about.Save(c.Context(), about); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "about": dto.NewAboutResponse(about)})
}
