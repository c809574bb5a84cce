package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"servismotor-bot/internal/catalog"
	"servismotor-bot/internal/config"
)

// PostgresStorage is the catalog source of a workshop that keeps its price
// list in Postgres.
type PostgresStorage struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPostgresStorage(ctx context.Context, cfg config.Database, logger *zap.Logger) (*PostgresStorage, error) {
	const operation = "storage.NewPostgresStorage"

	var db *sqlx.DB
	var err error

	retryPolicy := backoff.NewExponentialBackOff()
	retryPolicy.MaxElapsedTime = 2 * time.Minute
	retryPolicy.MaxInterval = 15 * time.Second

	logger.Info("Connecting to PostgreSQL...",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("db", cfg.Name))

	err = backoff.RetryNotify(
		func() error {
			db, err = sqlx.ConnectContext(ctx, "postgres", cfg.DSN())
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			return nil
		},
		backoff.WithContext(retryPolicy, ctx),
		func(err error, duration time.Duration) {
			logger.Warn("PostgreSQL connection failed, retrying...",
				zap.Error(err),
				zap.Duration("next_attempt_in", duration))
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect after retries: %w", operation, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	logger.Info("Successfully connected to PostgreSQL")
	return newPostgresStorage(db, logger), nil
}

func newPostgresStorage(db *sqlx.DB, logger *zap.Logger) *PostgresStorage {
	return &PostgresStorage{db: db, logger: logger}
}

// SeedCatalog writes the given catalog into empty tables. Tables that already
// hold rows are left alone, so edits made by the workshop survive restarts.
func (s *PostgresStorage) SeedCatalog(ctx context.Context, c *catalog.Catalog) error {
	const operation = "storage.SeedCatalog"

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", operation, err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM services`); err != nil {
		return fmt.Errorf("%s: count services: %w", operation, err)
	}
	if count == 0 {
		for i, svc := range c.Services() {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO services (id, name, price, position)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (id) DO NOTHING`,
				svc.ID, svc.Name, svc.Price, i,
			); err != nil {
				return fmt.Errorf("%s: insert service %q: %w", operation, svc.ID, err)
			}
		}
		s.logger.Info("Seeded services", zap.Int("count", len(c.Services())))
	}

	if err := tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM difficulty_levels`); err != nil {
		return fmt.Errorf("%s: count difficulty levels: %w", operation, err)
	}
	if count == 0 {
		for i, lvl := range c.DifficultyLevels() {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO difficulty_levels (id, name, multiplier, position)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (id) DO NOTHING`,
				lvl.ID, lvl.Name, lvl.Multiplier, i,
			); err != nil {
				return fmt.Errorf("%s: insert difficulty level %q: %w", operation, lvl.ID, err)
			}
		}
		s.logger.Info("Seeded difficulty levels", zap.Int("count", len(c.DifficultyLevels())))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", operation, err)
	}
	return nil
}

// LoadCatalog reads the catalog in display order and validates it.
func (s *PostgresStorage) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	const operation = "storage.LoadCatalog"

	var services []catalog.Service
	if err := s.db.SelectContext(ctx, &services,
		`SELECT id, name, price FROM services ORDER BY position, id`,
	); err != nil {
		return nil, fmt.Errorf("%s: failed to get services: %w", operation, err)
	}

	var levels []catalog.DifficultyLevel
	if err := s.db.SelectContext(ctx, &levels,
		`SELECT id, name, multiplier FROM difficulty_levels ORDER BY position, id`,
	); err != nil {
		return nil, fmt.Errorf("%s: failed to get difficulty levels: %w", operation, err)
	}

	c, err := catalog.New(services, levels)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	return c, nil
}

func (s *PostgresStorage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
