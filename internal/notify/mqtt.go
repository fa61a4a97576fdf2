package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/plantops/crane-dashboard/internal/config"
	"github.com/plantops/crane-dashboard/internal/store"
)

// disconnectQuiesce is how long Close waits for in-flight work, in milliseconds
const disconnectQuiesce = 250

type mqttPublisher struct {
	client      mqtt.Client
	topicPrefix string
	qos         byte
	retained    bool
	timeout     time.Duration
}

// NewMQTTPublisher connects to the configured broker
func NewMQTTPublisher(cfg *config.MQTTConfig) (Publisher, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.GetClientID())
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)
	opts.SetConnectTimeout(cfg.GetPublishTimeout())
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		slog.Warn("MQTT connection lost", "broker", cfg.Broker, "error", err)
	})

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker %s: %w", cfg.Broker, token.Error())
	}
	slog.Info("Connected to MQTT broker", "broker", cfg.Broker, "topic_prefix", cfg.GetTopicPrefix())

	return newMQTTPublisher(client, cfg), nil
}

func newMQTTPublisher(client mqtt.Client, cfg *config.MQTTConfig) *mqttPublisher {
	return &mqttPublisher{
		client:      client,
		topicPrefix: cfg.GetTopicPrefix(),
		qos:         cfg.QoS,
		retained:    cfg.Retained,
		timeout:     cfg.GetPublishTimeout(),
	}
}

// Topic returns the topic an alert is published on: <prefix>/<craneId>/<type>
func (p *mqttPublisher) Topic(alert store.Alert) string {
	return fmt.Sprintf("%s/%s/%s", p.topicPrefix, alert.CraneID, alert.Type)
}

// PublishAlerts implements Publisher.PublishAlerts
func (p *mqttPublisher) PublishAlerts(ctx context.Context, alerts []store.Alert) error {
	var errs []error
	for _, alert := range alerts {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		payload, err := json.Marshal(alert)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to encode alert %d: %w", alert.ID, err))
			continue
		}

		topic := p.Topic(alert)
		token := p.client.Publish(topic, p.qos, p.retained, payload)
		if !token.WaitTimeout(p.timeout) {
			errs = append(errs, fmt.Errorf("timed out publishing to topic %s after %s", topic, p.timeout))
			continue
		}
		if err := token.Error(); err != nil {
			errs = append(errs, fmt.Errorf("failed to publish to topic %s: %w", topic, err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	slog.DebugContext(ctx, "Published alerts", "count", len(alerts))
	return nil
}

// Close implements Publisher.Close
func (p *mqttPublisher) Close() {
	p.client.Disconnect(disconnectQuiesce)
}
