package worker

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vedavayu/clinic-backend/internal/events"
	"github.com/vedavayu/clinic-backend/internal/media"
)

const orphanSetKey = "media:orphaned_assets"

// OrphanReconciler retries deletion of remote assets whose best-effort
// cleanup failed during a request. Requests never wait on it; the document
// store stays authoritative and the media host converges eventually.
type OrphanReconciler struct {
	store    media.Store
	redis    *redis.Client
	logger   *zap.Logger
	interval time.Duration
}

// NewOrphanReconciler builds the reconciler.
func NewOrphanReconciler(store media.Store, client *redis.Client, logger *zap.Logger, interval time.Duration) *OrphanReconciler {
	return &OrphanReconciler{store: store, redis: client, logger: logger, interval: interval}
}

// Register subscribes the reconciler to orphan events.
func (w *OrphanReconciler) Register(dispatcher events.Dispatcher) {
	dispatcher.Subscribe(events.EventAssetOrphaned, w.record)
}

func (w *OrphanReconciler) record(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.AssetOrphanedPayload)
	if !ok || payload.PublicID == "" {
		return nil
	}
	if err := w.redis.SAdd(ctx, orphanSetKey, payload.PublicID).Err(); err != nil {
		w.logger.Warn("failed to record orphaned asset",
			zap.String("public_id", payload.PublicID),
			zap.Error(err))
	}
	return nil
}

// Run sweeps the orphan set until ctx is cancelled.
func (w *OrphanReconciler) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *OrphanReconciler) sweep(ctx context.Context) {
	ids, err := w.redis.SMembers(ctx, orphanSetKey).Result()
	if err != nil {
		w.logger.Warn("failed to read orphan set", zap.Error(err))
		return
	}

	for _, id := range ids {
		if err := w.store.Delete(ctx, id); err != nil {
			w.logger.Warn("orphan sweep delete failed", zap.String("public_id", id), zap.Error(err))
			continue
		}
		if err := w.redis.SRem(ctx, orphanSetKey, id).Err(); err != nil {
			w.logger.Warn("failed to unrecord orphan", zap.String("public_id", id), zap.Error(err))
			continue
		}
		w.logger.Info("reclaimed orphaned asset", zap.String("public_id", id))
	}
}
