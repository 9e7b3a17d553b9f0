package mailer

import (
	"context"
	"encoding/json"

	"github.com/streadway/amqp"
)

// ResetMail is a password reset mail job
type ResetMail struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// Publisher hands mail jobs to the delivery worker. Dispatch is
// fire-and-forget from the caller's perspective - retries happen on the
// consuming side
type Publisher interface {
	PublishPasswordReset(ctx context.Context, mail ResetMail) error
}

type amqpPublisher struct {
	ch    *amqp.Channel
	queue string
}

// NewAMQPPublisher builds rabbitmq-backed Publisher. The queue is declared
// durable so jobs survive a broker restart
func NewAMQPPublisher(ch *amqp.Channel, queue string) (Publisher, error) {
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, err
	}
	return &amqpPublisher{ch: ch, queue: queue}, nil
}

func (p *amqpPublisher) PublishPasswordReset(_ context.Context, mail ResetMail) error {
	body, err := json.Marshal(&mail)
	if err != nil {
		return err
	}

	return p.ch.Publish("", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}
