package kafka

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/ocopmarket/order-gateway/internal/domain"
	"github.com/segmentio/kafka-go"
)

// KafkaPublisher emits confirmed status transitions so downstream consumers
// (analytics, enterprise dashboards) can react without polling the backend.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *KafkaPublisher) PublishOrderEvent(event domain.OrderEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	// Key by order ID so all events for one order land on the same partition.
	return k.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(strconv.FormatInt(event.OrderID, 10)),
		Value: msg,
		Time:  time.Now(),
	})
}

func (k *KafkaPublisher) Close() error {
	return k.writer.Close()
}
