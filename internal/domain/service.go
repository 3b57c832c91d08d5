package domain

import "time"

// Service is a treatment or therapy offered by the clinic.
type Service struct {
	ID          string
	Name        string
	Description string
	Icon        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DefaultServiceIcon is used when a service is created without an icon.
const DefaultServiceIcon = "Pill"
