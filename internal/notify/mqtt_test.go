package notify

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantops/crane-dashboard/internal/config"
	"github.com/plantops/crane-dashboard/internal/store"
)

type fakeToken struct {
	done    chan struct{}
	err     error
	pending bool
}

func newFakeToken(err error, pending bool) *fakeToken {
	t := &fakeToken{done: make(chan struct{}), err: err, pending: pending}
	if !pending {
		close(t.done)
	}
	return t
}

func (t *fakeToken) Wait() bool                       { return !t.pending }
func (t *fakeToken) WaitTimeout(_ time.Duration) bool { return !t.pending }
func (t *fakeToken) Done() <-chan struct{}            { return t.done }
func (t *fakeToken) Error() error                     { return t.err }

type published struct {
	topic    string
	qos      byte
	retained bool
	payload  []byte
}

// fakeClient records publishes; unused mqtt.Client methods panic through the nil embedded interface
type fakeClient struct {
	mqtt.Client

	mu           sync.Mutex
	messages     []published
	tokenFor     func(topic string) mqtt.Token
	disconnected uint
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, published{topic: topic, qos: qos, retained: retained, payload: payload.([]byte)})
	if c.tokenFor != nil {
		return c.tokenFor(topic)
	}
	return newFakeToken(nil, false)
}

func (c *fakeClient) Disconnect(quiesce uint) {
	c.disconnected = quiesce
}

func testAlerts() []store.Alert {
	return []store.Alert{
		{ID: 1, CraneID: "CR-001", Type: store.AlertTypeOverdue, Severity: store.SeverityCritical, IsActive: true,
			Message: "Maintenance overdue by 8 days", CreatedAt: "2024-06-15T00:00:00Z"},
		{ID: 2, CraneID: "CR-002", Type: store.AlertTypeHighFrequency, Severity: store.SeverityMedium, IsActive: true,
			Message: "4 maintenance records in the last 30 days", CreatedAt: "2024-06-15T00:00:00Z"},
	}
}

func TestMQTTPublisher_PublishAlerts(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	p := newMQTTPublisher(client, &config.MQTTConfig{
		Broker:      "tcp://localhost:1883",
		TopicPrefix: "plant/alerts/",
		QoS:         1,
		Retained:    true,
	})

	require.NoError(t, p.PublishAlerts(context.Background(), testAlerts()))

	require.Len(t, client.messages, 2)
	assert.Equal(t, "plant/alerts/CR-001/overdue", client.messages[0].topic)
	assert.Equal(t, "plant/alerts/CR-002/high_frequency", client.messages[1].topic)
	assert.Equal(t, byte(1), client.messages[0].qos)
	assert.True(t, client.messages[0].retained)

	var decoded store.Alert
	require.NoError(t, json.Unmarshal(client.messages[0].payload, &decoded))
	assert.Equal(t, testAlerts()[0], decoded)

	p.Close()
	assert.Equal(t, uint(disconnectQuiesce), client.disconnected)
}

func TestMQTTPublisher_DefaultTopicPrefix(t *testing.T) {
	t.Parallel()

	p := newMQTTPublisher(&fakeClient{}, &config.MQTTConfig{Broker: "tcp://localhost:1883"})
	assert.Equal(t, "cranes/alerts/CR-001/overdue", p.Topic(testAlerts()[0]))
}

func TestMQTTPublisher_ContinuesPastFailures(t *testing.T) {
	t.Parallel()

	client := &fakeClient{
		tokenFor: func(topic string) mqtt.Token {
			switch topic {
			case "cranes/alerts/CR-001/overdue":
				return newFakeToken(errors.New("not connected"), false)
			default:
				return newFakeToken(nil, false)
			}
		},
	}
	p := newMQTTPublisher(client, &config.MQTTConfig{Broker: "tcp://localhost:1883"})

	err := p.PublishAlerts(context.Background(), testAlerts())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not connected")
	assert.Len(t, client.messages, 2)
}

func TestMQTTPublisher_Timeout(t *testing.T) {
	t.Parallel()

	client := &fakeClient{
		tokenFor: func(string) mqtt.Token { return newFakeToken(nil, true) },
	}
	p := newMQTTPublisher(client, &config.MQTTConfig{Broker: "tcp://localhost:1883", PublishTimeout: "10ms"})

	err := p.PublishAlerts(context.Background(), testAlerts()[:1])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out publishing to topic cranes/alerts/CR-001/overdue after 10ms")
}

func TestMQTTPublisher_CanceledContext(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	p := newMQTTPublisher(client, &config.MQTTConfig{Broker: "tcp://localhost:1883"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.PublishAlerts(ctx, testAlerts())
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, client.messages)
}

func TestNew(t *testing.T) {
	t.Parallel()

	p, err := New(nil)
	require.NoError(t, err)
	assert.IsType(t, noopPublisher{}, p)

	p, err = New(&config.NotifyConfig{})
	require.NoError(t, err)
	require.NoError(t, p.PublishAlerts(context.Background(), testAlerts()))
	p.Close()
}
