// mailworker consumes password reset mail jobs published by the API and
// delivers them. Delivery is retried by requeueing the message once; a
// second failure drops it, there is no dead letter handling
package main

import (
	"encoding/json"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"

	"github.com/rihla/customer-queries/internal/config"
	"github.com/rihla/customer-queries/internal/infra"
	"github.com/rihla/customer-queries/internal/mailer"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, relying on OS environment variables")
	}

	cfg, err := config.Parse()
	if err != nil {
		logrus.Fatalf("failed to parse config - %s", err)
	}

	conn, ch, err := infra.Rabbitmq(cfg.AmqpCfg)
	if err != nil {
		logrus.Fatalf("failed to connect to rabbitmq - %s", err)
	}
	defer conn.Close()
	defer ch.Close()

	queue := cfg.AmqpCfg.ResetMailQueue
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		logrus.Fatalf("failed to declare queue %s - %s", queue, err)
	}

	deliveries, err := ch.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		logrus.Fatalf("failed to start consuming queue %s - %s", queue, err)
	}

	logrus.Infof("mail worker started, waiting for jobs on %s", queue)

	for d := range deliveries {
		if err := process(d); err != nil {
			logrus.Errorf("failed to process mail job - %s", err)

			// one redelivery attempt, then drop
			if err := d.Nack(false, !d.Redelivered); err != nil {
				logrus.Errorf("failed to nack mail job - %s", err)
			}
			continue
		}

		if err := d.Ack(false); err != nil {
			logrus.Errorf("failed to ack mail job - %s", err)
		}
	}
}

func process(d amqp.Delivery) error {
	var mail mailer.ResetMail
	if err := json.Unmarshal(d.Body, &mail); err != nil {
		return fmt.Errorf("malformed mail job payload - %w", err)
	}

	return send(mail)
}

// send delivers the reset mail. Wiring an actual SMTP relay is a
// deployment concern; the worker logs the delivery instead
func send(mail mailer.ResetMail) error {
	logrus.WithFields(logrus.Fields{
		"email": mail.Email,
		"token": mail.Token,
	}).Info("delivering password reset mail")
	return nil
}
