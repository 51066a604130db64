package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"yanki-wallet-service/internal/core/domain"
	"yanki-wallet-service/internal/core/ports"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog"
)

// HandlerFunc processes one raw event payload from a topic.
type HandlerFunc func(ctx context.Context, payload []byte) error

// Consumer dispatches bus messages to per-topic handlers. It implements
// sarama.ConsumerGroupHandler. Handler errors are logged and the message
// is marked consumed either way; the bus does not redeliver on failure.
type Consumer struct {
	handlers map[string]HandlerFunc
	log      zerolog.Logger
	ready    chan struct{}
}

// NewConsumer creates a Consumer with an empty route table.
func NewConsumer(log zerolog.Logger) *Consumer {
	return &Consumer{
		handlers: make(map[string]HandlerFunc),
		log:      log,
		ready:    make(chan struct{}),
	}
}

// Handle registers a handler for a topic.
func (c *Consumer) Handle(topic string, h HandlerFunc) {
	c.handlers[topic] = h
}

// Topics lists the registered topics, for the group subscription.
func (c *Consumer) Topics() []string {
	topics := make([]string, 0, len(c.handlers))
	for t := range c.handlers {
		topics = append(topics, t)
	}
	return topics
}

// Ready is closed once the first consumer session is set up.
func (c *Consumer) Ready() <-chan struct{} {
	return c.ready
}

// Setup implements sarama.ConsumerGroupHandler.
func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	select {
	case <-c.ready:
	default:
		close(c.ready)
	}
	return nil
}

// Cleanup implements sarama.ConsumerGroupHandler.
func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim implements sarama.ConsumerGroupHandler.
func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case msg, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			c.dispatch(session.Context(), msg)
			session.MarkMessage(msg, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

func (c *Consumer) dispatch(ctx context.Context, msg *sarama.ConsumerMessage) {
	handler, ok := c.handlers[msg.Topic]
	if !ok {
		c.log.Warn().Str("topic", msg.Topic).Msg("no handler for topic")
		return
	}

	if err := handler(ctx, msg.Value); err != nil {
		c.log.Error().Err(err).
			Str("topic", msg.Topic).
			Str("key", string(msg.Key)).
			Int64("offset", msg.Offset).
			Msg("event handler failed")
		return
	}

	c.log.Debug().
		Str("topic", msg.Topic).
		Int64("offset", msg.Offset).
		Msg("event handled")
}

// Run consumes until the context is cancelled, rejoining the group after
// each rebalance.
func (c *Consumer) Run(ctx context.Context, group sarama.ConsumerGroup) error {
	topics := c.Topics()
	for {
		if err := group.Consume(ctx, topics, c); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}
			return fmt.Errorf("consume: %w", err)
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

// RegisterEventHandlers binds the inbound topics to their services. Each
// handler decodes the payload and hands it to the core.
func RegisterEventHandlers(
	c *Consumer,
	cardLink ports.CardLinkService,
	settlement ports.SettlementService,
	balanceSync ports.BalanceSyncService,
	peer ports.PeerExchangeService,
) {
	c.Handle(domain.TopicCardLinkConfirmed, func(ctx context.Context, payload []byte) error {
		var event domain.CardLinkConfirmedEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return fmt.Errorf("decode card link confirmation: %w", err)
		}
		return cardLink.HandleConfirmed(ctx, event)
	})

	c.Handle(domain.TopicCardLinkRejected, func(ctx context.Context, payload []byte) error {
		var event domain.CardLinkRejectedEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return fmt.Errorf("decode card link rejection: %w", err)
		}
		return cardLink.HandleRejected(ctx, event)
	})

	c.Handle(domain.TopicBalanceUpdated, func(ctx context.Context, payload []byte) error {
		var event domain.BalanceUpdatedEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return fmt.Errorf("decode balance update: %w", err)
		}
		return balanceSync.HandleBalanceUpdated(ctx, event)
	})

	c.Handle(domain.TopicTransferSettled, func(ctx context.Context, payload []byte) error {
		var event domain.TransferSettledEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			return fmt.Errorf("decode settled transfer: %w", err)
		}
		return settlement.HandleSettled(ctx, event)
	})

	c.Handle(domain.TopicPeerAssociationReq, func(ctx context.Context, payload []byte) error {
		var event domain.PeerAssociationRequest
		if err := json.Unmarshal(payload, &event); err != nil {
			return fmt.Errorf("decode association request: %w", err)
		}
		return peer.HandleAssociationRequest(ctx, event)
	})

	c.Handle(domain.TopicPeerTransferReq, func(ctx context.Context, payload []byte) error {
		var event domain.PeerTransferRequest
		if err := json.Unmarshal(payload, &event); err != nil {
			return fmt.Errorf("decode peer transfer request: %w", err)
		}
		return peer.HandleTransferRequest(ctx, event)
	})
}
