package domain

import "time"

// Partner is an affiliated organization. Logo is required; the owner photo is
// optional. The two images carry independent media handles and are uploaded,
// replaced and deleted independently of each other.
type Partner struct {
	ID         string
	Name       string
	Website    string
	Logo       Image
	OwnerPhoto Image
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
