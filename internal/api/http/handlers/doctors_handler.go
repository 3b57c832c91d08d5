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

const doctorsFolder = "doctors"

// DoctorsHandler manages practitioner profiles. The portrait is optional and
// degrades to local fallback storage when the media host is unavailable.
type DoctorsHandler struct {
	doctors repository.DoctorRepository
	uploads *media.Coordinator
}

// NewDoctorsHandler constructs handler.
func NewDoctorsHandler(doctors repository.DoctorRepository, uploads *media.Coordinator) *DoctorsHandler {
	return &DoctorsHandler{doctors: doctors, uploads: uploads}
}

// List handles GET /api/doctors with optional name/specialty filters.
func (h *DoctorsHandler) List(c *fiber.Ctx) error {
	filter := repository.DoctorFilter{
		Name:      c.Query("name"),
		Specialty: c.Query("specialty"),
	}
	doctors, err := h.doctors.List(c.Context(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.DoctorResponse, 0, len(doctors))
	for i := range doctors {
		items = append(items, dto.NewDoctorResponse(&doctors[i]))
	}
	return c.JSON(fiber.Map{"success": true, "doctors": items})
}

// Get handles GET /api/doctors/:id.
func (h *DoctorsHandler) Get(c *fiber.Ctx) error {
	doctor, err := h.doctors.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Doctor", nil)
		}
		return err
	}
	return c.JSON(fiber.Map{"success": true, "doctor": dto.NewDoctorResponse(doctor)})
}

// Create handles POST /api/doctors (multipart, optional image field).
func (h *DoctorsHandler) Create(c *fiber.Ctx) error {
	name := c.FormValue("name")
	specialty := c.FormValue("specialty")
	status := c.FormValue("status", string(domain.DoctorStatusActive))
	if name == "" || specialty == "" {
		return apperrors.NewValidationError("name and specialty required", nil)
	}

	photo, err := h.uploads.Resolve(c.Context(), formFile(c, "image"), doctorsFolder, true)
	if err != nil {
		return err
	}

	doctor := &domain.Doctor{
		Name:      name,
		Specialty: specialty,
		Status:    domain.DoctorStatus(status),
		Photo:     photo,
	}
	if err := h.doctors.Create(c.Context(), doctor); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"success": true, "doctor": dto.NewDoctorResponse(doctor)})
}

// Update handles PUT /api/doctors/:id (multipart, optional new image).
func (h *DoctorsHandler) Update(c *fiber.Ctx) error {
	doctor, err := h.doctors.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Doctor", nil)
		}
		return err
	}

	photo, err := h.uploads.Replace(c.Context(), doctor.Photo, formFile(c, "image"), doctorsFolder, true)
	if err != nil {
		return err
	}
	doctor.Photo = photo

	if name := c.FormValue("name"); name != "" {
		doctor.Name = name
	}
	if specialty := c.FormValue("specialty"); specialty != "" {
		doctor.Specialty = specialty
	}
	if status := c.FormValue("status"); status != "" {
		doctor.Status = domain.DoctorStatus(status)
	}

	if err := h.doctors.Update(c.Context(), doctor); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "doctor": dto.NewDoctorResponse(doctor)})
}

// Delete handles DELETE /api/doctors/:id. The database row goes first; the
// remote asset cleanup is best-effort and never fails the request.
func (h *DoctorsHandler) Delete(c *fiber.Ctx) error {
	doctor, err := h.doctors.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Doctor", nil)
		}
		return err
	}

	if err := h.doctors.Delete(c.Context(), doctor.ID); err != nil {
		return err
	}
	h.uploads.Discard(c.Context(), doctor.Photo, doctorsFolder)

	return c.JSON(fiber.Map{"success": true, "message": "Doctor deleted successfully"})
}
