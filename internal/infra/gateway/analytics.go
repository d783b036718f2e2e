package gateway

import (
	"context"
	"encoding/json"
	"time"

	"fitclass-server/internal/pkg/errs"
	"fitclass-server/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

// analyticsRecord is the wire shape the analytics sink consumes.
type analyticsRecord struct {
	ClassID        string  `json:"class_id"`
	UserID         string  `json:"user_id"`
	CaloriesBurned float64 `json:"calories_burned"`
	MechanicalWork float64 `json:"mechanical_work"`
	Category       string  `json:"category"`
	DurationMin    int     `json:"duration_min"`
	Date           string  `json:"date"`
}

// AMQPAnalyticsPublisher pushes completion records onto a durable queue.
// Messages are persistent so they survive broker restarts.
type AMQPAnalyticsPublisher struct {
	ch    *amqp.Channel
	queue string
}

func NewAMQPAnalyticsPublisher(ch *amqp.Channel, queue string) (*AMQPAnalyticsPublisher, error) {
	// Idempotent declare; durable so records outlive the broker process.
	if _, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	); err != nil {
		return nil, errs.Wrap(err, "failed to declare analytics queue")
	}
	return &AMQPAnalyticsPublisher{ch: ch, queue: queue}, nil
}

func (p *AMQPAnalyticsPublisher) Publish(ctx context.Context, ev commands.CompletionEvent) error {
	body, err := json.Marshal(analyticsRecord{
		ClassID:        ev.ClassID.String(),
		UserID:         ev.UserID.String(),
		CaloriesBurned: ev.Calories,
		MechanicalWork: ev.Watts,
		Category:       ev.Category.String(),
		DurationMin:    ev.DurationMin,
		Date:           ev.CompletedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal analytics record")
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    ev.EventID.String(),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		pub,
	); err != nil {
		return errs.Wrap(err, "failed to publish analytics record")
	}
	return nil
}
