package eduglow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/eduglow/internal/cache"
	"github.com/magabrotheeeer/eduglow/internal/config"
	"github.com/magabrotheeeer/eduglow/internal/http/middlewarectx"
	"github.com/magabrotheeeer/eduglow/internal/http/sessioncookie"
	"github.com/magabrotheeeer/eduglow/internal/lib/jwt"
	"github.com/magabrotheeeer/eduglow/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/eduglow/internal/lib/sl"
	"github.com/magabrotheeeer/eduglow/internal/lib/smtp"
	"github.com/magabrotheeeer/eduglow/internal/services/auth"
	"github.com/magabrotheeeer/eduglow/internal/services/bookings"
	"github.com/magabrotheeeer/eduglow/internal/services/directory"
	"github.com/magabrotheeeer/eduglow/internal/services/profile"
	"github.com/magabrotheeeer/eduglow/internal/services/sender"
	"github.com/magabrotheeeer/eduglow/internal/services/session"
	"github.com/magabrotheeeer/eduglow/internal/services/trials"
	"github.com/magabrotheeeer/eduglow/internal/storage"
	"github.com/magabrotheeeer/eduglow/internal/storage/repository"
)

const shutdownTimeout = 15 * time.Second

// App HTTP-сервер вместе с подключениями, которые нужно закрыть при остановке.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
	cache  *cache.Cache
	conn   *amqp.Connection
	ch     *amqp.Channel
}

// New подключается к PostgreSQL и Redis, накатывает миграции и собирает маршруты.
// В режиме queue письма уходят в RabbitMQ, иначе отправляются по SMTP напрямую.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.eduglow.New"

	db, err := storage.New(ctx, cfg.StorageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	app := &App{logger: logger, db: db}

	if err = migrate(db); err != nil {
		app.close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if cfg.SeedDemoData {
		if err = seedService(logger, db).Run(ctx); err != nil {
			app.close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	app.cache, err = cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	notifier, err := app.notifier(ctx, cfg)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	users := repository.NewUserRepository(db.Pool)
	skills := repository.NewSkillRepository(db.Pool)
	trialRepo := repository.NewTrialRepository(db.Pool)

	sessions := session.New(app.cache, jwt.NewJWTMaker(cfg.SecretKey, cfg.Session.TTL), cfg.Session.TTL)
	deps := Dependencies{
		Auth: auth.NewAuthService(logger, users, repository.NewResetTokenRepository(db.Pool),
			sessions, notifier, cfg.BaseURL),
		Sessions:       sessions,
		Directory:      directory.New(repository.NewTutorRepository(db.Pool), users, skills),
		Bookings:       bookings.New(logger, users, repository.NewBookingRepository(db.Pool)),
		Trials:         trials.New(logger, trialRepo, users, skills),
		Profile:        profile.New(logger, users, skills),
		Cookie:         sessioncookie.New(cfg.CookieName, cfg.CookieSecure, cfg.Session.TTL),
		Limiter:        middlewarectx.NewIPLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
		Metrics:        middlewarectx.NewMetrics(prometheus.DefaultRegisterer),
		AllowedOrigins: cfg.AllowedOrigins,
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, deps)

	app.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return app, nil
}

func (a *App) notifier(ctx context.Context, cfg *config.Config) (auth.Notifier, error) {
	if cfg.Notifier.Mode != config.NotifierQueue {
		transport := smtp.NewTransport(cfg.SMTP, a.logger)
		if !transport.Configured() {
			a.logger.Warn("SMTP is not configured, password reset emails will fail")
		}
		return sender.NewSenderService(a.logger, transport), nil
	}

	conn, err := rabbitmq.Connect(ctx, cfg.RabbitURL, cfg.Retries, cfg.RetryDelay)
	if err != nil {
		return nil, err
	}
	ch, err := rabbitmq.SetupChannel(conn, cfg.RabbitMQ)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	a.conn, a.ch = conn, ch
	return sender.NewQueueNotifier(a.logger, ch, cfg.Exchange, cfg.RoutingKey), nil
}

// Run запускает сервер и блокирует до ошибки или отмены ctx.
// После отмены сервер дожидается активных запросов не дольше shutdownTimeout.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

func (a *App) close() {
	if a.ch != nil {
		if err := a.ch.Close(); err != nil {
			a.logger.Error("failed to close channel", sl.Err(err))
		}
	}
	if a.conn != nil {
		if err := a.conn.Close(); err != nil {
			a.logger.Error("failed to close connection", sl.Err(err))
		}
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Error("failed to close redis", sl.Err(err))
		}
	}
	a.db.Close()
}
