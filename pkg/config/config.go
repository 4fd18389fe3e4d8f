package config

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"sync"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

type Config struct {
	AppEnv     string `env:"APP_ENV,default=development"`
	APIAddress string `env:"API_ADDRESS,default=:8080"`

	PostgresAddress  string `env:"POSTGRES_DB_ADDRESS,default=localhost:5432"`
	PostgresUser     string `env:"POSTGRES_USER,default=postgres"`
	PostgresPassword string `env:"POSTGRES_PASSWORD"`
	PostgresDB       string `env:"POSTGRES_DB,default=lifeos"`
	MigrateOnStart   bool   `env:"MIGRATE_ON_START,default=true"`

	JWTSecret string        `env:"JWT_SECRET,required"`
	JWTTTL    time.Duration `env:"JWT_TTL,default=1h"`

	// Auth endpoints only
	AuthRatePerSecond float64 `env:"AUTH_RATE_PER_SECOND,default=1"`
	AuthRateBurst     int     `env:"AUTH_RATE_BURST,default=5"`

	ReconcileSchedule string `env:"RECONCILE_SCHEDULE,default=5 0 * * *"`
	ReconcileTimezone string `env:"RECONCILE_TZ,default=UTC"`

	SentryDSN string `env:"SENTRY_DSN"`
	LogFile   string `env:"LOG_FILE"`
}

// New loads ./configs/.env when present and decodes the environment once.
func New() *Config {
	once.Do(func() {
		cfg, err := Load("./configs/.env")
		if err != nil {
			log.Fatal("loading config error: ", err)
		}
		instance = cfg
	})
	return instance
}

func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		slog.Info("no .env file found, using environment variables")
	}
	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return nil, errors.New("decoding env error: " + err.Error())
	}
	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", c.PostgresUser, c.PostgresPassword, c.PostgresAddress, c.PostgresDB)
}
