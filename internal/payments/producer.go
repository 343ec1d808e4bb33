package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"turfbook/internal/reservations"
	"turfbook/internal/shared/config"
	"turfbook/pkg/logger"
)

// KafkaNotifier publishes payment requests for committed reservations to the
// payment collaborator's topic. The booking flow never observes delivery
// outcome beyond logging.
type KafkaNotifier struct {
	producer sarama.SyncProducer
	topic    string
	log      *logger.Logger
}

// NewKafkaNotifier creates a Kafka-backed payment notifier
func NewKafkaNotifier(cfg config.KafkaConfig, log *logger.Logger) (*KafkaNotifier, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = cfg.RetryMax
	saramaConfig.Producer.Timeout = time.Duration(cfg.TimeoutMs) * time.Millisecond

	// Hash by customer phone so one customer's payment requests stay ordered
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &KafkaNotifier{
		producer: producer,
		topic:    cfg.PaymentTopic,
		log:      log,
	}, nil
}

var _ reservations.Notifier = (*KafkaNotifier)(nil)

// NotifyPayment publishes the payment request for a freshly committed booking
func (n *KafkaNotifier) NotifyPayment(ctx context.Context, notification reservations.PaymentNotification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal payment notification: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(notification.CustomerPhone),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("reservation_id"), Value: []byte(notification.ReservationID)},
			{Key: []byte("producer"), Value: []byte("turfbook-payments")},
			{Key: []byte("created_at"), Value: []byte(time.Now().Format(time.RFC3339))},
		},
	}

	partition, offset, err := n.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send payment notification to Kafka: %w", err)
	}

	n.log.DebugContext(ctx, "Payment notification published",
		"topic", n.topic,
		"partition", partition,
		"offset", offset,
		"reservation_id", notification.ReservationID,
	)
	return nil
}

// Close closes the underlying producer
func (n *KafkaNotifier) Close() error {
	if n.producer != nil {
		if err := n.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
	}
	return nil
}
