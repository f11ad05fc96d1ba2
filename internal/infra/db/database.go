package db

import (
	"context"
	"log/slog"
	"time"

	"student-travels/internal/pkg/config"
	"student-travels/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	connectTimeout  = 10 * time.Second
	maxConnLifetime = time.Hour
	maxConnIdleTime = 15 * time.Minute
)

// Connect opens a pool and verifies it with a ping. The booking path holds a
// row lock per request, so MaxConns bounds concurrent bookings on one offer.
func Connect(cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, errs.Wrap(err, "parse database config")
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnLifetime = maxConnLifetime
	poolCfg.MaxConnIdleTime = maxConnIdleTime

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errs.Wrap(err, "open database")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errs.Wrapf(err, "ping database %s@%s:%s", cfg.DBName, cfg.Host, cfg.Port)
	}

	slog.Info("database connected", "host", cfg.Host, "database", cfg.DBName, "max_conns", poolCfg.MaxConns)
	return pool, nil
}
