package output

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/chrisdamba/foodbrowse/internal/models"
)

// KafkaOutput publishes every event synchronously, one topic per event kind.
// Topics are namespaced with kafka_topic_prefix.
type KafkaOutput struct {
	producer sarama.SyncProducer
	prefix   string
}

func NewKafkaOutput(cfg *models.Config) (*KafkaOutput, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Net.DialTimeout = 30 * time.Second
	saramaConfig.Net.ReadTimeout = 30 * time.Second
	saramaConfig.Net.WriteTimeout = 30 * time.Second

	brokerList := strings.Split(cfg.KafkaBrokerList, ",")
	producer, err := sarama.NewSyncProducer(brokerList, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Printf("Kafka producer created with brokers %v", brokerList)
	return NewKafkaOutputWithProducer(producer, cfg.KafkaTopicPrefix), nil
}

// NewKafkaOutputWithProducer wraps an existing producer, such as sarama's
// mocks in tests.
func NewKafkaOutputWithProducer(producer sarama.SyncProducer, prefix string) *KafkaOutput {
	return &KafkaOutput{producer: producer, prefix: prefix}
}

func (k *KafkaOutput) Topic(topic string) string {
	if k.prefix == "" {
		return topic
	}
	return k.prefix + "." + topic
}

func (k *KafkaOutput) WriteMessage(topic string, msg []byte) error {
	if k.producer == nil {
		return fmt.Errorf("kafka producer is not initialized")
	}
	_, _, err := k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: k.Topic(topic),
		Value: sarama.ByteEncoder(msg),
	})
	if err != nil {
		log.Printf("Failed to send message to topic %s: %v", k.Topic(topic), err)
		return err
	}
	return nil
}

func (k *KafkaOutput) Close() error {
	if k.producer != nil {
		return k.producer.Close()
	}
	return nil
}
