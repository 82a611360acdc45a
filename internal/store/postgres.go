package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/spec-kit/intervention-desk/internal/config"
)

// PostgresBlob keeps the blob in a single row of the ticket_blobs table.
// The blob column is TEXT rather than JSONB so that a corrupt payload can
// still round-trip; shape recovery is the TicketStore's job.
type PostgresBlob struct {
	pool *pgxpool.Pool
	key  string
}

const ensureBlobTable = `
    CREATE TABLE IF NOT EXISTS ticket_blobs (
        key        TEXT PRIMARY KEY,
        data       TEXT NOT NULL,
        updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`

// NewPostgresBlob establishes a connection pool and ensures the blob table exists.
func NewPostgresBlob(ctx context.Context, cfg config.PostgresConfig, key string, logger *zap.Logger) (*PostgresBlob, error) {
	if cfg.DSN == "" {
		return nil, errors.New("POSTGRES_DSN required for the postgres store backend")
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.ConnMaxIdleSec > 0 {
		poolCfg.MaxConnIdleTime = time.Duration(cfg.ConnMaxIdleSec) * time.Second
	}
	if cfg.ConnMaxLifeSec > 0 {
		poolCfg.MaxConnLifetime = time.Duration(cfg.ConnMaxLifeSec) * time.Second
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	if _, err := pool.Exec(ctx, ensureBlobTable); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure ticket_blobs table: %w", err)
	}

	logger.Info("connected to postgres", zap.String("key", key))
	return &PostgresBlob{pool: pool, key: key}, nil
}

// Read implements BlobStore.
func (p *PostgresBlob) Read(ctx context.Context) ([]byte, bool, error) {
	var data []byte
	err := p.pool.QueryRow(ctx, `SELECT data FROM ticket_blobs WHERE key=$1`, p.key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select blob %s: %w", p.key, err)
	}
	return data, true, nil
}

// Write implements BlobStore.
func (p *PostgresBlob) Write(ctx context.Context, data []byte) error {
	const query = `
        INSERT INTO ticket_blobs (key, data, updated_at) VALUES ($1, $2, NOW())
        ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`
	if _, err := p.pool.Exec(ctx, query, p.key, string(data)); err != nil {
		return fmt.Errorf("upsert blob %s: %w", p.key, err)
	}
	return nil
}

// Ping implements BlobStore.
func (p *PostgresBlob) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close implements BlobStore.
func (p *PostgresBlob) Close() error {
	p.pool.Close()
	return nil
}
