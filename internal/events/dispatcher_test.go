package events

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var got []Event
	dispatcher.Subscribe(EventAssetOrphaned, func(_ context.Context, event Event) error {
		got = append(got, event)
		return nil
	})

	event := Event{
		ID:        "evt-1",
		Type:      EventAssetOrphaned,
		Timestamp: time.Now(),
		Payload:   AssetOrphanedPayload{PublicID: "doctors/x", Resource: "doctors", Reason: "deleted"},
	}
	if err := dispatcher.Publish(context.Background(), event); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if len(got) != 1 || got[0].ID != "evt-1" {
		t.Fatalf("unexpected delivery: %v", got)
	}
}

func TestDispatcherHandlerErrorDoesNotStopDelivery(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	second := false
	dispatcher.Subscribe(EventAssetOrphaned, func(context.Context, Event) error {
		return errors.New("boom")
	})
	dispatcher.Subscribe(EventAssetOrphaned, func(context.Context, Event) error {
		second = true
		return nil
	})

	if err := dispatcher.Publish(context.Background(), Event{Type: EventAssetOrphaned}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !second {
		t.Fatal("second handler should still run")
	}
}

func TestDispatcherIgnoresOtherTypes(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	called := false
	dispatcher.Subscribe(EventAssetOrphaned, func(context.Context, Event) error {
		called = true
		return nil
	})

	if err := dispatcher.Publish(context.Background(), Event{Type: EventType("something_else")}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if called {
		t.Fatal("handler should not run for other event types")
	}
}
