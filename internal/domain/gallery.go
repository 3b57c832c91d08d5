package domain

import "time"

// GalleryImage is a single photo in the site gallery. The image itself is
// mandatory; title and description are optional captions.
type GalleryImage struct {
	ID          string
	Title       string
	Description string
	Photo       Image
	CreatedAt   time.Time
}
