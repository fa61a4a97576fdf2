// Package notify publishes regenerated alerts to downstream consumers
package notify

import (
	"context"

	"github.com/plantops/crane-dashboard/internal/config"
	"github.com/plantops/crane-dashboard/internal/store"
)

//go:generate mockgen -destination=mocks/mock_publisher.go -package=mocks -source=notify.go Publisher

// Publisher delivers alerts outside the process
type Publisher interface {
	// PublishAlerts publishes every alert; a failure for one alert does not stop the rest
	PublishAlerts(ctx context.Context, alerts []store.Alert) error
	// Close releases the connection
	Close()
}

// New creates the publisher for cfg. Without an MQTT section alerts are dropped.
func New(cfg *config.NotifyConfig) (Publisher, error) {
	if cfg == nil || cfg.MQTT == nil {
		return NewNoopPublisher(), nil
	}
	return NewMQTTPublisher(cfg.MQTT)
}

type noopPublisher struct{}

// NewNoopPublisher creates a publisher that discards alerts
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishAlerts(context.Context, []store.Alert) error { return nil }

func (noopPublisher) Close() {}
