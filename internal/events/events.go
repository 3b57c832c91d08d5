package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	// EventAssetOrphaned fires when a best-effort remote delete failed and
	// the asset may still exist on the media host.
	EventAssetOrphaned EventType = "asset_orphaned"
)

// Event represents a domain event emitted by the upload lifecycle.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AssetOrphanedPayload identifies the remote asset left behind.
type AssetOrphanedPayload struct {
	PublicID string `json:"public_id"`
	Resource string `json:"resource"`
	Reason   string `json:"reason"`
}
