package pubsub

import (
	"context"
	"encoding/json"
)

// Event represents a pub/sub event
type Event struct {
	Topic   string          `json:"topic"`   // Subscription topic (e.g., "conversion_status", "graph")
	Type    string          `json:"type"`    // Event type (e.g., "loading", "converting", "ready")
	Data    json.RawMessage `json:"data"`    // Event payload
	Version int             `json:"version"` // Version number for ordering
}

// Subscription represents a client subscription to a topic
type Subscription interface {
	// Topic returns the subscription topic
	Topic() string

	// Events returns a channel for receiving events
	Events() <-chan Event

	// Close closes the subscription
	Close() error
}

// Publisher manages pub/sub subscriptions and event publishing
type Publisher interface {
	// Subscribe creates a new subscription to a topic
	// Context cancellation will close the subscription
	Subscribe(ctx context.Context, topic string) (Subscription, error)

	// Publish sends an event to all subscribers of a topic
	Publish(topic string, eventType string, data any) error

	// Close shuts down the publisher and all subscriptions
	Close() error
}

// ConversionStatus represents scene conversion state
type ConversionStatus struct {
	State   string `json:"state"`   // loading, converting, ready, failed
	Message string `json:"message"` // Human-readable status message
	Scene   string `json:"scene"`   // Scene file being converted
}

// GraphSummary represents the converted graph's shape
type GraphSummary struct {
	Scene         string `json:"scene"` // Scene file the graph was converted from
	Vertices      int    `json:"vertices"`
	Edges         int    `json:"edges"`
	Faces         int    `json:"faces"`
	ControlPoints int    `json:"control_points"`
	Adjacencies   int    `json:"adjacencies"`
	Complete      bool   `json:"complete"` // True when the full graph is loaded
}
