package media

import (
	"context"
	"errors"
)

// Asset is the handle returned by the media host for an uploaded binary.
type Asset struct {
	PublicID  string
	SecureURL string
}

// ErrUpload wraps any failure to push a file to the media host.
var ErrUpload = errors.New("media upload failed")

// ErrDelete wraps any failure to remove a remote asset.
var ErrDelete = errors.New("media delete failed")

// Store abstracts the remote media host. Each call is a single network
// round-trip with no automatic retry; callers decide whether a failure is
// fatal.
type Store interface {
	// Upload pushes a locally staged file into the given folder.
	Upload(ctx context.Context, localPath, folder string) (Asset, error)
	// Delete removes the asset identified by publicID. Deleting an asset
	// that no longer exists is not an error.
	Delete(ctx context.Context, publicID string) error
	// OptimizedURL derives a display URL with fixed crop policy. Pure, no
	// network call.
	OptimizedURL(publicID string, width, height int) string
}
