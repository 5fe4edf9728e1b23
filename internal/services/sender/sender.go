// Package sender отправляет письма сброса пароля: напрямую через SMTP
// или через очередь RabbitMQ, которую разбирает отдельный воркер.
package sender

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/magabrotheeeer/eduglow/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/eduglow/internal/lib/sl"
	"github.com/magabrotheeeer/eduglow/internal/lib/smtp"
	"github.com/magabrotheeeer/eduglow/internal/models"
)

const resetSubject = "EduGlow password reset"

// ErrNotConfigured почта не настроена.
var ErrNotConfigured = smtp.ErrNotConfigured

// SenderService отправляет письма через SMTP транспорт.
type SenderService struct {
	transport smtp.TransportInterface
	log       *slog.Logger
}

// NewSenderService создает новый экземпляр SenderService.
func NewSenderService(log *slog.Logger, transport smtp.TransportInterface) *SenderService {
	return &SenderService{
		transport: transport,
		log:       log,
	}
}

// SendPasswordReset отправляет письмо со ссылкой сброса пароля.
func (s *SenderService) SendPasswordReset(ctx context.Context, email, link string) error {
	const op = "services.sender.SendPasswordReset"
	if !s.transport.Configured() {
		return ErrNotConfigured
	}

	text := fmt.Sprintf("You requested a password reset for EduGlow.\nReset link: %s\nThis link expires in 1 hour.", link)
	html := fmt.Sprintf("<p>You requested a password reset for EduGlow.</p>"+
		"<p><a href=\"%s\">Reset your password</a></p>"+
		"<p>This link expires in 1 hour.</p>", link)

	msg, err := buildMessage(s.transport.Sender(), email, resetSubject, text, html)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.sendEmail(ctx, email, msg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// HandleResetEmail обработчик сообщений очереди писем.
// Битое сообщение и ненастроенная почта дают rabbitmq.ErrPermanent.
func (s *SenderService) HandleResetEmail(ctx context.Context, body []byte) error {
	const op = "services.sender.HandleResetEmail"
	var message models.ResetEmail
	if err := json.Unmarshal(body, &message); err != nil {
		s.log.Error("failed to unmarshal message body", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: error unmarshalling message: %w: %w", op, rabbitmq.ErrPermanent, err)
	}
	if message.Email == "" || message.Link == "" {
		return fmt.Errorf("%s: message without email or link: %w", op, rabbitmq.ErrPermanent)
	}
	err := s.SendPasswordReset(ctx, message.Email, message.Link)
	if errors.Is(err, ErrNotConfigured) {
		return fmt.Errorf("%s: %w: %w", op, rabbitmq.ErrPermanent, err)
	}
	return err
}

func (s *SenderService) sendEmail(ctx context.Context, to string, msg []byte) error {
	client, err := s.transport.Connect(ctx)
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	from := s.transport.Sender()
	if err := client.Mail(from); err != nil {
		s.log.Error("failed to set MAIL FROM", slog.String("from", from), sl.Err(err))
		return err
	}
	if err := client.Rcpt(to); err != nil {
		s.log.Error("failed to set RCPT TO", slog.String("recipient", to), sl.Err(err))
		return err
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get Data writer", sl.Err(err))
		return err
	}
	if _, err = wc.Write(msg); err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}
	if err = wc.Close(); err != nil {
		s.log.Error("failed to close Data writer", sl.Err(err))
		return err
	}
	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}

	s.log.Info("email sent successfully", slog.String("to", to))
	return nil
}

// buildMessage собирает multipart/alternative письмо из текстовой и HTML частей.
func buildMessage(from, to, subject, text, html string) ([]byte, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	parts := []struct {
		contentType string
		content     string
	}{
		{"text/plain; charset=\"UTF-8\"", text},
		{"text/html; charset=\"UTF-8\"", html},
	}
	for _, p := range parts {
		w, err := mw.CreatePart(textproto.MIMEHeader{"Content-Type": {p.contentType}})
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(p.content)); err != nil {
			return nil, err
		}
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	header := strings.Join([]string{
		"From: " + from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: multipart/alternative; boundary=\"" + mw.Boundary() + "\"",
		"",
		"",
	}, "\r\n")
	return append([]byte(header), body.Bytes()...), nil
}
