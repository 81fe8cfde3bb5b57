package cmd

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"local"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"ordering"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	KafkaBrokers            []string      `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaNotificationsTopic string        `env:"KAFKA_NOTIFICATIONS_TOPIC" envDefault:"ordering.notifications"`
	KafkaTimeout            time.Duration `env:"KAFKA_TIMEOUT" envDefault:"5s"`

	// OperatorIDs receive the notifications addressed to all operators.
	OperatorIDs []string `env:"OPERATOR_IDS" envSeparator:","`

	CASMaxAttempts   int           `env:"CAS_MAX_ATTEMPTS" envDefault:"3"`
	CASRetryInterval time.Duration `env:"CAS_RETRY_INTERVAL" envDefault:"20ms"`

	RelaySchedule         string        `env:"NOTIFICATION_RELAY_SCHEDULE" envDefault:"*/30 * * * * *"`
	RelayBatchSize        int           `env:"NOTIFICATION_RELAY_BATCH_SIZE" envDefault:"100"`
	PurgeSchedule         string        `env:"NOTIFICATION_PURGE_SCHEDULE" envDefault:"0 0 3 * * *"`
	NotificationRetention time.Duration `env:"NOTIFICATION_RETENTION" envDefault:"720h"`

	RateLimit string `env:"RATE_LIMIT" envDefault:"100-S"`

	OTelExporter string `env:"OTEL_TRACES_EXPORTER" envDefault:"none"`
	OTelEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTelInsecure bool   `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"true"`
}

// LoadConfig reads envFile when it exists, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		// A missing file is fine: containers get their settings from the environment.
		_ = godotenv.Load(envFile)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// DSN is the Postgres connection string for both gorm and goose.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSslMode}}.Encode(),
	}
	return u.String()
}

// KafkaEnabled reports whether notifications go to Kafka rather than the log.
func (c Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}
