package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"boldstore-be/internal/logger"

	"go.uber.org/zap"
)

// Postgres stores values in the kv_store table created by the migrations.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := p.db.QueryRowContext(ctx,
		`SELECT value FROM kv_store WHERE key = $1`, key,
	).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("kv get failed",
			zap.String("layer", "storage"),
			zap.String("key", key),
			zap.Error(err),
		)
		return "", false, err
	}

	return value, true, nil
}

func (p *Postgres) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	start := time.Now()
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()
	`, key, value)
	if err != nil {
		logger.FromCtx(ctx).Error("kv set failed",
			zap.String("layer", "storage"),
			zap.String("key", key),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func (p *Postgres) Remove(ctx context.Context, key string) error {
	_, err := p.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = $1`, key)
	return err
}
