package smtp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/smtp"

	"github.com/magabrotheeeer/eduglow/internal/config"
	"github.com/magabrotheeeer/eduglow/internal/lib/sl"
)

// ErrNotConfigured не задан хост или адрес отправителя.
var ErrNotConfigured = errors.New("SMTP not configured")

// Transport реализует SMTP транспорт для отправки писем.
type Transport struct {
	cfg config.SMTP
	log *slog.Logger
}

// smtpClientWrapper обертка для *smtp.Client, реализующая интерфейс Client.
type smtpClientWrapper struct {
	client *smtp.Client
}

func (w *smtpClientWrapper) Mail(from string) error {
	return w.client.Mail(from)
}

func (w *smtpClientWrapper) Rcpt(to string) error {
	return w.client.Rcpt(to)
}

func (w *smtpClientWrapper) Data() (io.WriteCloser, error) {
	return w.client.Data()
}

func (w *smtpClientWrapper) Quit() error {
	return w.client.Quit()
}

func (w *smtpClientWrapper) Close() error {
	return w.client.Close()
}

// NewTransport создает новый экземпляр Transport.
func NewTransport(cfg config.SMTP, log *slog.Logger) *Transport {
	return &Transport{cfg: cfg, log: log}
}

// Configured сообщает, заданы ли хост и адрес отправителя.
func (t *Transport) Configured() bool {
	return t.cfg.SMTPConfigured()
}

// Sender возвращает адрес отправителя.
func (t *Transport) Sender() string {
	return t.cfg.Sender()
}

// Connect устанавливает соединение с SMTP сервером.
//
// STARTTLS выполняется, если он включён в настройках. Авторизация
// выполняется только при заданных логине и пароле.
func (t *Transport) Connect(ctx context.Context) (Client, error) {
	const op = "smtp.Connect"
	if !t.Configured() {
		return nil, ErrNotConfigured
	}
	addr := net.JoinHostPort(t.cfg.SMTPHost, t.cfg.SMTPPort)

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		t.log.Error("failed to dial SMTP server", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: dial: %w", op, err)
	}

	client, err := smtp.NewClient(conn, t.cfg.SMTPHost)
	if err != nil {
		t.log.Error("failed to create SMTP client", slog.String("op", op), sl.Err(err))
		if closeErr := conn.Close(); closeErr != nil {
			t.log.Error("failed to close connection", sl.Err(closeErr))
		}
		return nil, fmt.Errorf("%s: client: %w", op, err)
	}

	fail := func(stage string, err error) (Client, error) {
		t.log.Error("smtp "+stage+" failed", slog.String("op", op), sl.Err(err))
		if closeErr := client.Close(); closeErr != nil {
			t.log.Error("failed to close client", sl.Err(closeErr))
		}
		return nil, fmt.Errorf("%s: %s: %w", op, stage, err)
	}

	if t.cfg.SMTPTLS {
		if ok, _ := client.Extension("STARTTLS"); !ok {
			return fail("starttls", errors.New("server does not support STARTTLS"))
		}
		tlsConfig := &tls.Config{
			ServerName: t.cfg.SMTPHost,
			MinVersion: tls.VersionTLS12,
		}
		if err = client.StartTLS(tlsConfig); err != nil {
			return fail("starttls", err)
		}
	}

	if t.cfg.SMTPUser != "" && t.cfg.SMTPPass != "" {
		auth := smtp.PlainAuth("", t.cfg.SMTPUser, t.cfg.SMTPPass, t.cfg.SMTPHost)
		if err = client.Auth(auth); err != nil {
			return fail("auth", err)
		}
	}

	return &smtpClientWrapper{client: client}, nil
}
