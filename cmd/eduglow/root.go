package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/magabrotheeeer/eduglow/internal/app/eduglow"
	"github.com/magabrotheeeer/eduglow/internal/config"
)

var configFile string

// NewRootCmd создаёт корневую команду eduglow.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "eduglow",
		Short:        "EduGlow tutoring marketplace backend",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (overrides CONFIG_PATH)")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newSeedCmd())
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			logger.Info("starting eduglow", slog.String("env", cfg.Env))

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			app, err := eduglow.New(ctx, cfg, logger)
			if err != nil {
				logger.Error("failed to initialize app", slog.Any("err", err))
				return err
			}
			if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("app stopped with error", slog.Any("err", err))
				return err
			}
			logger.Info("eduglow stopped gracefully")
			return nil
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			return eduglow.Migrate(cmd.Context(), cfg, logger)
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Fill the tutor catalog and demo accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			return eduglow.Seed(cmd.Context(), cfg, logger)
		},
	}
}

func setup() (*config.Config, *slog.Logger, error) {
	if configFile != "" {
		if err := os.Setenv("CONFIG_PATH", configFile); err != nil {
			return nil, nil, fmt.Errorf("set CONFIG_PATH: %w", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return cfg, newLogger(cfg.Env), nil
}

func newLogger(env string) *slog.Logger {
	level := slog.LevelDebug
	if env == "prod" {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
