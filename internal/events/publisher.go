package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dreamhouse/internal/config"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// DesignSavedEvent is published after a design row is written.
type DesignSavedEvent struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type Publisher interface {
	PublishDesignSaved(ctx context.Context, ev DesignSavedEvent) error
	Close()
}

// NoopPublisher drops events; used when MQTT is disabled.
type NoopPublisher struct{}

func (NoopPublisher) PublishDesignSaved(context.Context, DesignSavedEvent) error { return nil }
func (NoopPublisher) Close()                                                     {}

const publishTimeout = 5 * time.Second

// MQTTPublisher MQTT 事件发布
type MQTTPublisher struct {
	client mqtt.Client
	topic  string
	qos    byte
}

// NewMQTTPublisher connects to the broker.
func NewMQTTPublisher(cfg *config.MQTTConfig) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	return newMQTTPublisher(client, cfg.Topic, cfg.QoS), nil
}

func newMQTTPublisher(client mqtt.Client, topic string, qos byte) *MQTTPublisher {
	return &MQTTPublisher{client: client, topic: topic, qos: qos}
}

func (p *MQTTPublisher) PublishDesignSaved(ctx context.Context, ev DesignSavedEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode design saved event: %w", err)
	}

	token := p.client.Publish(p.topic, p.qos, false, payload)
	select {
	case <-token.Done():
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(publishTimeout):
		return fmt.Errorf("publish to topic %s: timed out", p.topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to publish to topic %s: %w", p.topic, err)
	}
	return nil
}

// Close 断开连接
func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}
