package bootstrap

import (
	"context"
	"log/slog"

	"student-travels/internal/infra/db"
	"student-travels/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.StopHook(func(context.Context) error {
		// runs after the HTTP server hook has drained in-flight requests
		pool.Close()
		slog.Info("database pool closed")
		return nil
	}))
	return pool, nil
}
