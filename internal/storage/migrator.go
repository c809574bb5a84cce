package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"servismotor-bot/internal/storage/migrations"
)

func (s *PostgresStorage) RunMigrations(ctx context.Context) error {
	const operation = "storage.RunMigrations"

	s.logger.Info("Running database migrations...")

	if err := migrations.Up(ctx, s.db.DB, "postgres"); err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}

	s.logger.Info("Database migrations completed successfully", zap.String("dialect", "postgres"))
	return nil
}
