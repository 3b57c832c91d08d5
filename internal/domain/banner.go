package domain

import "time"

// Banner announces an event or campaign on the landing page.
type Banner struct {
	ID               string
	Title            string
	Date             string
	Time             string
	RegistrationLink string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
