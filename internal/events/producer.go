package events

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/flavorithm/flavorithm/internal/models"
)

// OrderCompletedEvent is the payload published when an order is completed.
type OrderCompletedEvent struct {
	OrderID      string    `json:"order_id"`
	CustomerID   string    `json:"customer_id"`
	ItemIDs      []string  `json:"item_ids"`
	TotalAmount  float64   `json:"total_amount"`
	PointsEarned int       `json:"points_earned"`
	PlacedAt     time.Time `json:"placed_at"`
}

type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(brokerList, topic string) (*Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true // Must be true for SyncProducer
	saramaConfig.Net.DialTimeout = 30 * time.Second
	saramaConfig.Net.ReadTimeout = 30 * time.Second
	saramaConfig.Net.WriteTimeout = 30 * time.Second

	brokers := strings.Split(brokerList, ",")
	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sarama producer: %w", err)
	}

	log.Printf("Sarama producer created successfully with brokers %v", brokers)
	return &Producer{producer: producer, topic: topic}, nil
}

func (p *Producer) PublishOrderCompleted(order *models.Order) error {
	event := OrderCompletedEvent{
		OrderID:     order.OrderID,
		CustomerID:  order.CustomerID(),
		TotalAmount: order.TotalAmount,
		PlacedAt:    order.PlacedAt,
	}
	for _, item := range order.Items {
		event.ItemIDs = append(event.ItemIDs, item.ID)
	}
	if _, ok := order.Customer.(*models.Member); ok {
		event.PointsEarned = int(math.Floor(order.TotalAmount / 10))
	}

	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Value: sarama.ByteEncoder(msg),
	})
	if err != nil {
		log.Printf("Failed to send message to topic %s: %v", p.topic, err)
		return err
	}
	return nil
}

func (p *Producer) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
