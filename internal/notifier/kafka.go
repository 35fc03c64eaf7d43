// Package notifier публикует задания на отправку писем в Kafka.
// Сам по себе сервис писем не шлет: топик читает почтовый сервис.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/xwear/shop-backend/internal/config"
	"github.com/xwear/shop-backend/internal/entities"

	"github.com/segmentio/kafka-go"
)

// шаблоны писем на стороне почтового сервиса
var templates = map[entities.EventType]string{
	entities.EventOrderReceived:       "orders/emails/order_received",
	entities.EventOrderShipped:        "orders/emails/order_shipped",
	entities.EventOrderReadyForPickup: "orders/emails/order_ready",
	entities.EventOrderCancelled:      "orders/emails/order_cancelled",
}

// emailJob — сообщение для почтового сервиса. EventID позволяет получателю
// дедуплицировать повторные отправки.
type emailJob struct {
	EventID  string         `json:"event_id"`
	Template string         `json:"template"`
	UserID   int64          `json:"user_id"`
	Context  entities.Event `json:"context"`
	SentAt   time.Time      `json:"sent_at"`
}

type kafkaNotifier struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewKafkaNotifier(logger *slog.Logger, cfg config.Kafka) *kafkaNotifier {
	return &kafkaNotifier{
		logger: logger.With(slog.String("component", "notifier")),
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
	}
}

func (n *kafkaNotifier) Send(ctx context.Context, evt entities.Event) error {
	template, ok := templates[evt.Type]
	if !ok {
		return fmt.Errorf("no email template for event type %q", evt.Type)
	}

	job := emailJob{
		EventID:  evt.EventID,
		Template: template,
		UserID:   evt.UserID,
		Context:  evt,
		SentAt:   time.Now().UTC(),
	}

	value, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal email job: %w", err)
	}

	msg := kafka.Message{
		// ключ по заказу: все письма одного заказа идут в одну партицию
		Key:   []byte(strconv.FormatInt(evt.OrderID, 10)),
		Value: value,
	}

	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write notification: %w", err)
	}

	n.logger.Debug("notification published",
		slog.String("event_id", evt.EventID),
		slog.String("template", template),
	)
	return nil
}

func (n *kafkaNotifier) Close() error {
	return n.writer.Close()
}
