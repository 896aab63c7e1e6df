package pkg

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
)

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// AlertEvent is the envelope written to the alert topic for downstream
// fan-out consumers (SMS gateways, sirens).
type AlertEvent struct {
	ID          uint64    `json:"id"`
	Type        string    `json:"type"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	Severity    string    `json:"severity"`
	IssuedAt    time.Time `json:"issued_at"`
}

// AlertProducer publishes alert events. Publishing is best effort; the
// caller decides whether a broker failure matters.
type AlertProducer struct {
	writer *kafka.Writer
}

func NewAlertProducer(cfg KafkaConfig) *AlertProducer {
	return &AlertProducer{writer: &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}}
}

func (p *AlertProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// PublishAlert keys the message by alert id so redeliveries of the same
// alert stay on one partition, in order.
func (p *AlertProducer) PublishAlert(ctx context.Context, ev AlertEvent) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(ev.ID, 10)),
		Value: value,
	})
}
