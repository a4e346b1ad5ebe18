package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/nikmy/interviewd/pkg/errors"
)

type KafkaConfig struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

// NewKafka broadcasts scheduling events keyed by schedule id so all
// events of one interview land in the same partition.
func NewKafka(cfg KafkaConfig) Notifier {
	return &kafkaNotifier{
		topic: cfg.Topic,
		client: &kafka.Client{
			Addr:    kafka.TCP(cfg.Brokers...),
			Timeout: time.Second * 5,
		},
	}
}

type kafkaNotifier struct {
	topic  string
	client *kafka.Client
}

func (k *kafkaNotifier) Notify(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.WrapFail(err, "marshal event to json")
	}

	record := kafka.Record{
		Key:   kafka.NewBytes([]byte(event.ScheduleID)),
		Value: kafka.NewBytes(payload),
	}

	_, err = k.client.Produce(ctx, &kafka.ProduceRequest{
		Topic:        k.topic,
		RequiredAcks: 1,
		Records:      kafka.NewRecordReader(record),
	})
	return errors.WrapFail(err, "produce notification record")
}
