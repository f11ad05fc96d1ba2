package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between environments (port, DB connection, secrets)
// - default: values common across all environments (timezone, timeouts, schedules)
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	DB           DBConfig
	CORS         CORSConfig
	Log          LogConfig
	JWT          JWTConfig
	Cookie       CookieConfig
	Redis        RedisConfig
	RateLimit    RateLimitConfig
	Broker       BrokerConfig
	Scheduler    SchedulerConfig
	Notification NotificationConfig
}

type ServerConfig struct {
	Port    string `envconfig:"PORT" required:"true"`
	GinMode string `envconfig:"GIN_MODE" default:"debug"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret          string        `envconfig:"JWT_SECRET" required:"true"`
	AccessDuration  time.Duration `envconfig:"JWT_ACCESS_DURATION" default:"15m"`
	RefreshDuration time.Duration `envconfig:"JWT_REFRESH_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

// RedisConfig: Addr empty disables redis-backed features.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type RateLimitConfig struct {
	Enabled      bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	BookingRPM   int  `envconfig:"RATE_LIMIT_BOOKING_RPM" default:"10"`
	BookingBurst int  `envconfig:"RATE_LIMIT_BOOKING_BURST" default:"5"`
	LoginRPM     int  `envconfig:"RATE_LIMIT_LOGIN_RPM" default:"20"`
	LoginBurst   int  `envconfig:"RATE_LIMIT_LOGIN_BURST" default:"10"`
	MessageRPM   int  `envconfig:"RATE_LIMIT_MESSAGE_RPM" default:"30"`
	MessageBurst int  `envconfig:"RATE_LIMIT_MESSAGE_BURST" default:"10"`
}

// BrokerConfig: URL empty keeps notification jobs queued in the database only.
type BrokerConfig struct {
	URL   string `envconfig:"AMQP_URL" default:""`
	Queue string `envconfig:"AMQP_NOTIFICATION_QUEUE" default:"notifications"`
}

type SchedulerConfig struct {
	Enabled          bool          `envconfig:"SCHEDULER_ENABLED" default:"true"`
	RelaySpec        string        `envconfig:"SCHEDULER_RELAY_SPEC" default:"@every 10s"`
	RelayBatchSize   int32         `envconfig:"SCHEDULER_RELAY_BATCH_SIZE" default:"50"`
	RelayMaxAttempts int32         `envconfig:"SCHEDULER_RELAY_MAX_ATTEMPTS" default:"5"`
	RelayRetryDelay  time.Duration `envconfig:"SCHEDULER_RELAY_RETRY_DELAY" default:"30s"`
	ExpirySweep      bool          `envconfig:"SCHEDULER_EXPIRY_SWEEP" default:"false"`
	ExpirySpec       string        `envconfig:"SCHEDULER_EXPIRY_SPEC" default:"@hourly"`
}

type NotificationConfig struct {
	SenderUsername string `envconfig:"NOTIFICATION_SENDER_USERNAME" default:"system"`
	SenderEmail    string `envconfig:"NOTIFICATION_SENDER_EMAIL" default:"system@student-travels.local"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// Variables already present in the environment win over the file.
func loadDotEnv() error {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:    "8889",
			GinMode: "test",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:      "error",
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:          "test-secret-key-for-testing-only",
			AccessDuration:  15 * time.Minute,
			RefreshDuration: 24 * time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		RateLimit: RateLimitConfig{
			Enabled:      false,
			BookingRPM:   10,
			BookingBurst: 5,
			LoginRPM:     20,
			LoginBurst:   10,
			MessageRPM:   30,
			MessageBurst: 10,
		},
		Broker: BrokerConfig{
			Queue: "notifications",
		},
		Scheduler: SchedulerConfig{
			Enabled:          false,
			RelaySpec:        "@every 1s",
			RelayBatchSize:   50,
			RelayMaxAttempts: 5,
			RelayRetryDelay:  time.Second,
			ExpirySpec:       "@hourly",
		},
		Notification: NotificationConfig{
			SenderUsername: "system",
			SenderEmail:    "system@student-travels.local",
		},
	}
}
