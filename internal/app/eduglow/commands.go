package eduglow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/eduglow/internal/config"
	"github.com/magabrotheeeer/eduglow/internal/migrations"
	"github.com/magabrotheeeer/eduglow/internal/services/seed"
	"github.com/magabrotheeeer/eduglow/internal/storage"
	"github.com/magabrotheeeer/eduglow/internal/storage/repository"
)

// Migrate накатывает миграции и выходит.
func Migrate(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	const op = "app.eduglow.Migrate"

	db, err := storage.New(ctx, cfg.StorageConnectionString)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer db.Close()

	if err = migrate(db); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	logger.Info("migrations applied")
	return nil
}

// Seed накатывает миграции и заполняет каталог и демо-аккаунты.
func Seed(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	const op = "app.eduglow.Seed"

	db, err := storage.New(ctx, cfg.StorageConnectionString)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer db.Close()

	if err = migrate(db); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = seedService(logger, db).Run(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	logger.Info("demo data seeded")
	return nil
}

func migrate(db *storage.Storage) error {
	sqlDB := db.DB()
	defer sqlDB.Close()
	return migrations.Run(sqlDB)
}

func seedService(logger *slog.Logger, db *storage.Storage) *seed.Service {
	return seed.New(logger,
		repository.NewTutorRepository(db.Pool),
		repository.NewUserRepository(db.Pool),
		repository.NewSkillRepository(db.Pool))
}
