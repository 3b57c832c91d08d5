package domain

import "time"

// DoctorStatus marks whether a doctor is shown on the site.
type DoctorStatus string

const (
	DoctorStatusActive   DoctorStatus = "active"
	DoctorStatusInactive DoctorStatus = "inactive"
)

// Doctor models a practitioner profile with an optional portrait.
type Doctor struct {
	ID        string
	Name      string
	Specialty string
	Status    DoctorStatus
	Photo     Image
	CreatedAt time.Time
	UpdatedAt time.Time
}
