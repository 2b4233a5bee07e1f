// Package kafka publishes campaign status changes for UI change
// notification.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"spendguard/internal/core/domain"
	"spendguard/internal/core/port"
)

const writeTimeout = 5 * time.Second

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes one JSON message per status change, keyed by campaign so
// changes of one campaign stay ordered within a partition.
type Publisher struct {
	writer messageWriter
}

var _ port.StatusPublisher = (*Publisher)(nil)

// NewPublisher creates a publisher writing to topic on brokers.
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher requires at least one broker")
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			RequiredAcks:           kafka.RequireAll,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		},
	}, nil
}

// PublishStatusChange writes ev. The write is bounded by its own timeout.
func (p *Publisher) PublishStatusChange(ctx context.Context, ev domain.StatusChange) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal status change: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.CredentialsID.String() + ":" + ev.CampaignID),
		Value: payload,
		Time:  ev.OccurredAt.UTC(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("campaign.status_changed")},
		},
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// Discard drops every event. It is used when no brokers are configured.
type Discard struct{}

func (Discard) PublishStatusChange(context.Context, domain.StatusChange) error { return nil }
