package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog"
)

// Publisher implements ports.EventPublisher on a sarama sync producer.
type Publisher struct {
	producer sarama.SyncProducer
	log      zerolog.Logger
}

// NewPublisher creates a new Publisher.
func NewPublisher(producer sarama.SyncProducer, log zerolog.Logger) *Publisher {
	return &Publisher{producer: producer, log: log}
}

// Publish JSON-encodes the event and sends it to the topic. The key keeps
// events for one wallet on one partition, preserving their order.
func (p *Publisher) Publish(ctx context.Context, topic string, key string, event interface{}) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send message to %s: %w", topic, err)
	}

	p.log.Debug().
		Str("topic", topic).
		Str("key", key).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("event published")

	return nil
}
