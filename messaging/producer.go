package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"

	"github.com/yeremiapane/restaurant-system/models"
	"github.com/yeremiapane/restaurant-system/utils"
)

// Producer publishes restaurant events to a kafka topic.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	logger   *log.Entry
}

// NewProducer connects a synchronous, idempotent producer to the brokers.
func NewProducer(brokers []string, topic string) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Idempotent = true
	config.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return newProducer(producer, topic), nil
}

func newProducer(producer sarama.SyncProducer, topic string) *Producer {
	return &Producer{
		producer: producer,
		topic:    topic,
		logger:   utils.InfoLogger.WithField("component", "kafka-producer"),
	}
}

// Publish sends the event keyed by table so that events of one table keep
// their order within a partition.
func (p *Producer) Publish(_ context.Context, event models.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	key := EventKey(event)
	msg := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(key),
		Value:     sarama.ByteEncoder(payload),
		Timestamp: event.OccurredAt,
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.Type)},
			{Key: []byte("event_id"), Value: []byte(event.ID)},
		},
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.logger.WithError(err).WithFields(log.Fields{
			"topic": p.topic,
			"key":   key,
		}).Error("failed to send message to kafka")
		return fmt.Errorf("failed to send message: %w", err)
	}

	p.logger.WithFields(log.Fields{
		"topic":     p.topic,
		"key":       key,
		"partition": partition,
		"offset":    offset,
	}).Debug("message sent to kafka")
	return nil
}

// Close flushes and closes the producer.
func (p *Producer) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	return nil
}

// EventKey derives the partition key of an event.
func EventKey(event models.Event) string {
	switch data := event.Data.(type) {
	case models.TableReservedData:
		return fmt.Sprintf("table-%d", data.Reservation.TableID)
	case models.OrderPlacedData:
		return fmt.Sprintf("table-%d", data.Order.TableID)
	case models.Table:
		return fmt.Sprintf("table-%d", data.ID)
	default:
		return event.ID
	}
}
