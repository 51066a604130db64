package kafka

import (
	"fmt"

	"yanki-wallet-service/config"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog"
)

// NewSyncProducer creates a Kafka sync producer with full-acknowledgement
// semantics. Events drive balance mutations downstream, so a publish only
// counts once every in-sync replica has it.
func NewSyncProducer(cfg config.KafkaConfig, log zerolog.Logger) (sarama.SyncProducer, error) {
	sc := sarama.NewConfig()
	sc.ClientID = cfg.ClientID
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Retry.Max = 3
	sc.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers, sc)
	if err != nil {
		return nil, fmt.Errorf("creating kafka producer: %w", err)
	}

	log.Info().
		Strs("brokers", cfg.Brokers).
		Msg("Kafka producer established")

	return producer, nil
}

// NewConsumerGroup creates the consumer group the event handlers run under.
func NewConsumerGroup(cfg config.KafkaConfig, log zerolog.Logger) (sarama.ConsumerGroup, error) {
	sc := sarama.NewConfig()
	sc.ClientID = cfg.ClientID
	sc.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	sc.Consumer.Offsets.Initial = sarama.OffsetOldest

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, sc)
	if err != nil {
		return nil, fmt.Errorf("creating kafka consumer group: %w", err)
	}

	log.Info().
		Strs("brokers", cfg.Brokers).
		Str("group_id", cfg.GroupID).
		Msg("Kafka consumer group established")

	return group, nil
}
