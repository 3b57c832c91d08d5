package domain

import "time"

// About is the singleton about-page document.
type About struct {
	ID           string
	Title        string
	Content      string
	Mission      string
	Vision       string
	JourneyImage Image
	DoctorCount  int
	TherapyCount int
	UpdatedAt    time.Time
}

// DefaultAbout is served when no about document has been written yet.
func DefaultAbout() About {
	return About{
		Title:   "About Vedavayu",
		Content: "Welcome to Vedavayu, your trusted healthcare provider.",
		Mission: "To provide accessible healthcare to all",
		Vision:  "A world where quality healthcare is available to everyone",
	}
}
