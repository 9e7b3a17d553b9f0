package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/rihla/customer-queries/internal/config"
	"github.com/rihla/customer-queries/internal/infra"
	"github.com/rihla/customer-queries/internal/mailer"
)

const defaultShutdownTimeout = 10 * time.Second
const defaultConnectTimeout = 5 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, relying on OS environment variables")
	}

	cfg, err := config.Build()
	if err != nil {
		logrus.Fatalf("failed to build config - %s", err)
	}

	connCtx, cancel := context.WithTimeout(context.Background(), defaultConnectTimeout)
	defer cancel()

	pgPool, err := infra.Postgresql(connCtx, cfg.PostgresCfg)
	if err != nil {
		logrus.Fatalf("failed to connect to postgresql - %s", err)
	}
	defer pgPool.Close()

	mongoClient, err := infra.Mongodb(connCtx, cfg.MongoCfg)
	if err != nil {
		logrus.Fatalf("failed to connect to mongodb - %s", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logrus.Errorf("failed to disconnect from mongodb - %s", err)
		}
	}()

	redisClient, err := infra.Redis(connCtx, cfg.RedisCfg)
	if err != nil {
		logrus.Fatalf("failed to connect to redis - %s", err)
	}
	defer redisClient.Close()

	amqpConn, amqpCh, err := infra.Rabbitmq(cfg.AmqpCfg)
	if err != nil {
		logrus.Fatalf("failed to connect to rabbitmq - %s", err)
	}
	defer amqpConn.Close()
	defer amqpCh.Close()

	mailPub, err := mailer.NewAMQPPublisher(amqpCh, cfg.AmqpCfg.ResetMailQueue)
	if err != nil {
		logrus.Fatalf("failed to build mail publisher - %s", err)
	}

	app, err := infra.Router(pgPool, mongoClient, redisClient, mailPub, cfg)
	if err != nil {
		logrus.Fatalf("failed to assemble application - %s", err)
	}

	start(app, cfg.Port)
}

func start(app *echo.Echo, port int) {
	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt)

	go func() {
		errorCh <- app.Start(fmt.Sprintf(":%d", port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()

		logrus.Info("shutdown signal has been sent, stopping the server...")
		if err := app.Shutdown(ctx); err != nil {
			logrus.Fatalf("failed to stop server gracefully - %s", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("shutting down the server, unexpected error occurred - %s", err)
		}
	}
}
