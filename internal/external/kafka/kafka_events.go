package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	models "github.com/webdev-zad/laundry-system-be/internal/models"
)

// Публикация событий задач в топик
type KafkaEvents struct {
	writer *kafka.Writer
}

func NewKafkaEvents(brokers []string, topic string) (*KafkaEvents, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are not set")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka topic is not set")
	}
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
	return &KafkaEvents{w}, nil
}

func (k *KafkaEvents) Name() string {
	return "kafka"
}

// события одной задачи попадают в одну партицию
func (k *KafkaEvents) Publish(ctx context.Context, event models.Event) error {
	msg, err := Message(event)
	if err != nil {
		return err
	}
	return k.writer.WriteMessages(ctx, msg)
}

func Message(event models.Event) (kafka.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(event.Key()),
		Value: value,
		Time:  event.Time,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(event.Name)},
			{Key: "id", Value: []byte(event.ID)},
		},
	}, nil
}

func (k *KafkaEvents) Close() error {
	return k.writer.Close()
}
