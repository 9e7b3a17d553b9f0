package infra

import (
	"github.com/streadway/amqp"

	"github.com/rihla/customer-queries/internal/config"
)

// Rabbitmq establishes connection to rabbitmq and opens a channel
func Rabbitmq(cfg config.AmqpCfg) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(cfg.URI)
	if err != nil {
		return nil, nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}
	return conn, ch, nil
}
