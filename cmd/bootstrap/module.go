package bootstrap

import (
	"student-travels/cmd/bootstrap/components"
	"student-travels/internal/pkg/config"
	"student-travels/internal/pkg/jwt"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
)

var JWTModule = fx.Module("jwt",
	fx.Provide(NewJWTService),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessDuration, cfg.JWT.RefreshDuration)
}

// Module is the whole application graph. Modules that depend on optional
// infrastructure (Redis, the broker, the scheduler) degrade to no-ops when
// their config is empty.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	RedisModule,
	components.PersistenceModule,
	NotificationModule,
	components.UseCaseModule,
	SchedulerModule,
	components.HandlerModule,
)
