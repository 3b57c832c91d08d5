package media

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/vedavayu/clinic-backend/internal/config"
)

// CloudinaryStore implements Store against the Cloudinary API.
type CloudinaryStore struct {
	client  *cloudinary.Cloudinary
	timeout time.Duration
}

// NewCloudinaryStore builds a client from credentials.
func NewCloudinaryStore(cfg config.CloudinaryConfig) (*CloudinaryStore, error) {
	client, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &CloudinaryStore{client: client, timeout: cfg.Timeout()}, nil
}

// Upload pushes a staged file to Cloudinary. Resource type is auto-detected
// and delivery-time format/quality optimization is left to the host.
func (s *CloudinaryStore) Upload(ctx context.Context, localPath, folder string) (Asset, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.Upload.Upload(ctx, localPath, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "auto",
	})
	if err != nil {
		return Asset{}, fmt.Errorf("%w: %v", ErrUpload, err)
	}
	if resp.Error.Message != "" {
		return Asset{}, fmt.Errorf("%w: %s", ErrUpload, resp.Error.Message)
	}
	return Asset{PublicID: resp.PublicID, SecureURL: resp.SecureURL}, nil
}

// Delete removes a remote asset by handle. A "not found" result is treated
// as success since the desired state already holds.
func (s *CloudinaryStore) Delete(ctx context.Context, publicID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDelete, err)
	}
	if resp.Result != "ok" && resp.Result != "not found" {
		return fmt.Errorf("%w: %s", ErrDelete, resp.Result)
	}
	return nil
}

// OptimizedURL derives a delivery URL with fill crop, auto gravity and auto
// format/quality. Defaults to 500x500 when dimensions are not positive.
func (s *CloudinaryStore) OptimizedURL(publicID string, width, height int) string {
	if width <= 0 {
		width = 500
	}
	if height <= 0 {
		height = 500
	}
	img, err := s.client.Image(publicID)
	if err != nil {
		return ""
	}
	img.Transformation = fmt.Sprintf("c_fill,g_auto,w_%d,h_%d,f_auto,q_auto", width, height)
	url, err := img.String()
	if err != nil {
		return ""
	}
	return url
}
