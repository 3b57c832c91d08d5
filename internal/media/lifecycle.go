package media

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vedavayu/clinic-backend/internal/domain"
	"github.com/vedavayu/clinic-backend/internal/events"
	apperrors "github.com/vedavayu/clinic-backend/pkg/util"
)

// Coordinator moves a binary asset from the client to durable storage and
// keeps its remote handle consistent with the owning document field.
//
// The contract per image field:
//   - create: stage locally, upload, record handle, drop the staged copy.
//     Upload failure falls back to serving the staged file from /uploads
//     with an empty handle, unless the field strictly requires a remote
//     image.
//   - update: best-effort delete of the old handle first, then the create
//     contract for the new file. Delete failures never block the update.
//   - delete: best-effort cleanup of whatever the field holds.
//
// Fields of multi-image documents go through the coordinator independently;
// one field's failure never affects another field's outcome. Callers persist
// the document only after every field is resolved.
type Coordinator struct {
	store      Store
	stager     *Stager
	logger     *zap.Logger
	dispatcher events.Dispatcher
}

// NewCoordinator wires the coordinator.
func NewCoordinator(store Store, stager *Stager, logger *zap.Logger, dispatcher events.Dispatcher) *Coordinator {
	return &Coordinator{store: store, stager: stager, logger: logger, dispatcher: dispatcher}
}

// Resolve executes the create contract for one image field. A nil file
// yields an empty image; presence requirements are the handler's business.
// When fallback is false an upload failure is fatal to the field instead of
// degrading to local storage.
func (c *Coordinator) Resolve(ctx context.Context, file *multipart.FileHeader, resource string, fallback bool) (domain.Image, error) {
	if file == nil {
		return domain.Image{}, nil
	}

	staged, err := c.stager.Save(file, resource)
	if err != nil {
		return domain.Image{}, apperrors.NewInternalError(err)
	}

	asset, err := c.store.Upload(ctx, staged.Path, resource)
	if err != nil {
		if !fallback {
			// Nothing may dangle under /uploads when the caller cannot use
			// a local copy.
			if rmErr := c.stager.Remove(staged.Path); rmErr != nil {
				c.logger.Warn("failed to remove staged file", zap.String("path", staged.Path), zap.Error(rmErr))
			}
			return domain.Image{}, apperrors.NewUploadFailed(err)
		}
		c.logger.Warn("media upload failed, using local fallback",
			zap.String("resource", resource),
			zap.String("file", staged.Name),
			zap.Error(err))
		return domain.Image{URL: staged.PublicURL(resource)}, nil
	}

	if err := c.stager.Remove(staged.Path); err != nil {
		c.logger.Warn("failed to remove staged file", zap.String("path", staged.Path), zap.Error(err))
	}
	return domain.Image{URL: asset.SecureURL, PublicID: asset.PublicID}, nil
}

// Replace executes the update contract: when a new file arrives, the old
// remote asset is deleted best-effort before the new upload. Without a new
// file the existing image passes through untouched.
func (c *Coordinator) Replace(ctx context.Context, old domain.Image, file *multipart.FileHeader, resource string, fallback bool) (domain.Image, error) {
	if file == nil {
		return old, nil
	}
	if old.Remote() {
		c.deleteRemote(ctx, old.PublicID, resource, "replaced")
	} else if old.URL != "" {
		if err := c.stager.RemoveByURL(old.URL); err != nil {
			c.logger.Warn("failed to remove local fallback", zap.String("url", old.URL), zap.Error(err))
		}
	}
	return c.Resolve(ctx, file, resource, fallback)
}

// Discard executes the delete contract for one image field. Never fails; a
// remote delete error leaves an orphan which the reconciler retries later.
func (c *Coordinator) Discard(ctx context.Context, img domain.Image, resource string) {
	if img.Remote() {
		c.deleteRemote(ctx, img.PublicID, resource, "deleted")
		return
	}
	if img.URL != "" {
		if err := c.stager.RemoveByURL(img.URL); err != nil {
			c.logger.Warn("failed to remove local fallback", zap.String("url", img.URL), zap.Error(err))
		}
	}
}

func (c *Coordinator) deleteRemote(ctx context.Context, publicID, resource, reason string) {
	err := c.store.Delete(ctx, publicID)
	if err == nil {
		return
	}
	c.logger.Warn("failed to delete remote asset",
		zap.String("public_id", publicID),
		zap.String("resource", resource),
		zap.Error(err))
	if c.dispatcher == nil {
		return
	}
	_ = c.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventAssetOrphaned,
		Timestamp: time.Now(),
		Payload: events.AssetOrphanedPayload{
			PublicID: publicID,
			Resource: resource,
			Reason:   reason,
		},
	})
}
