package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/eduglow/internal/lib/sl"
)

// ErrPermanent ошибка, которую повтор не исправит. Такое сообщение
// отклоняется без возврата в очередь.
var ErrPermanent = errors.New("permanent message failure")

// Acknowledger подтверждение доставки, выделено для тестов.
type Acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

// ConsumerMessage читает очередь queueName и обрабатывает сообщения handler
// не более чем в concurrency горутинах. Успех подтверждается ack, ошибка
// возвращает сообщение в очередь, если она не ErrPermanent. Блокирует до
// отмены ctx или закрытия канала и дожидается уже запущенных обработчиков.
func ConsumerMessage(ctx context.Context, log *slog.Logger, ch *amqp.Channel, queueName string,
	concurrency int, handler func(context.Context, []byte) error) error {
	const op = "rabbitmq.ConsumerMessage"
	delivery, err := ch.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	deliveries := make(chan Delivery)
	go func() {
		defer close(deliveries)
		for d := range delivery {
			select {
			case deliveries <- Delivery{Body: d.Body, Ack: d}:
			case <-ctx.Done():
				return
			}
		}
	}()

	Dispatch(ctx, log, deliveries, concurrency, handler)
	return nil
}

// Delivery тело сообщения и способ его подтвердить.
type Delivery struct {
	Body []byte
	Ack  Acknowledger
}

// Dispatch раздаёт доставки обработчикам с ограничением параллельности.
func Dispatch(ctx context.Context, log *slog.Logger, deliveries <-chan Delivery,
	concurrency int, handler func(context.Context, []byte) error) {
	if concurrency < 1 {
		concurrency = 1
	}
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case d, ok := <-deliveries:
			if !ok {
				return
			}
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				if nackErr := d.Ack.Nack(false, true); nackErr != nil {
					log.Error("failed to nack message", sl.Err(nackErr))
				}
				return
			}
			wg.Add(1)
			go func(d Delivery) {
				defer func() {
					<-sem
					wg.Done()
				}()
				if err := handler(ctx, d.Body); err != nil {
					requeue := !errors.Is(err, ErrPermanent)
					if requeue {
						log.Warn("message handling failed, requeue", sl.Err(err))
					} else {
						log.Error("message dropped", sl.Err(err))
					}
					if nackErr := d.Ack.Nack(false, requeue); nackErr != nil {
						log.Error("failed to nack message", sl.Err(nackErr))
					}
					return
				}
				if ackErr := d.Ack.Ack(false); ackErr != nil {
					log.Error("failed to ack message", sl.Err(ackErr))
				}
			}(d)
		case <-ctx.Done():
			return
		}
	}
}
