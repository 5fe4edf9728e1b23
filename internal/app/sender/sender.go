// Package sender воркер, который читает очередь писем и отправляет их по SMTP.
package sender

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/eduglow/internal/config"
	"github.com/magabrotheeeer/eduglow/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/eduglow/internal/lib/sl"
	"github.com/magabrotheeeer/eduglow/internal/lib/smtp"
	senderservice "github.com/magabrotheeeer/eduglow/internal/services/sender"
)

// App подключение к брокеру и сервис отправки.
type App struct {
	conn          *amqp.Connection
	ch            *amqp.Channel
	senderService *senderservice.SenderService
	queue         string
	concurrency   int
	logger        *slog.Logger
}

// New подключается к RabbitMQ и объявляет очередь писем.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.sender.New"

	conn, err := rabbitmq.Connect(ctx, cfg.RabbitURL, cfg.Retries, cfg.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ch, err := rabbitmq.SetupChannel(conn, cfg.RabbitMQ)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	transport := smtp.NewTransport(cfg.SMTP, logger)
	if !transport.Configured() {
		logger.Warn("SMTP is not configured, messages will be requeued")
	}

	return &App{
		conn:          conn,
		ch:            ch,
		senderService: senderservice.NewSenderService(logger, transport),
		queue:         cfg.Queue,
		concurrency:   cfg.Concurrency,
		logger:        logger,
	}, nil
}

// Run обрабатывает очередь до отмены ctx.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("sender consuming queue", slog.String("queue", a.queue))
	err := rabbitmq.ConsumerMessage(ctx, a.logger, a.ch, a.queue, a.concurrency, a.senderService.HandleResetEmail)
	if err != nil {
		a.logger.Error("failed to start consumer", sl.Err(err))
	}

	a.logger.Info("sender shutting down gracefully")
	if closeErr := a.ch.Close(); closeErr != nil {
		a.logger.Error("failed to close channel", sl.Err(closeErr))
	}
	if closeErr := a.conn.Close(); closeErr != nil {
		a.logger.Error("failed to close connection", sl.Err(closeErr))
	}
	return err
}
