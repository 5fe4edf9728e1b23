package sender

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/eduglow/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/eduglow/internal/lib/sl"
	"github.com/magabrotheeeer/eduglow/internal/models"
)

// QueueNotifier ставит письма сброса пароля в очередь.
type QueueNotifier struct {
	ch         rabbitmq.Publisher
	exchange   string
	routingKey string
	log        *slog.Logger
}

// NewQueueNotifier создает новый экземпляр QueueNotifier.
func NewQueueNotifier(log *slog.Logger, ch rabbitmq.Publisher, exchange, routingKey string) *QueueNotifier {
	return &QueueNotifier{
		ch:         ch,
		exchange:   exchange,
		routingKey: routingKey,
		log:        log,
	}
}

// SendPasswordReset публикует письмо для воркера отправки.
func (q *QueueNotifier) SendPasswordReset(_ context.Context, email, link string) error {
	const op = "services.sender.QueueNotifier.SendPasswordReset"
	msg := models.ResetEmail{Email: email, Link: link}
	if err := rabbitmq.PublishMessage(q.ch, q.exchange, q.routingKey, msg); err != nil {
		q.log.Error("failed to publish reset email", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	q.log.Info("reset email queued", slog.String("op", op), slog.String("to", email))
	return nil
}
