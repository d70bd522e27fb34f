package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is read from the environment, optionally seeded from a .env file. An empty
// DBHost selects the in-memory store; empty KafkaBrokers, TemporalHostPort and
// OpenAIToken disable those integrations.
type Config struct {
	HTTPPort    int
	Environment string
	LogLevel    slog.Level

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	DeliveryDelay time.Duration
	SweepInterval time.Duration

	KafkaBrokers           []string
	KafkaOrderChangedTopic string

	TemporalHostPort  string
	TemporalNamespace string

	OpenAIToken string
	OpenAIModel string

	OTLPEndpoint string
	SeedCatalog  bool
}

// LoadConfig loads .env when present and parses the environment. Every malformed
// value is reported, not just the first.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var errList []error
	cfg := Config{
		HTTPPort:    getEnvAsInt("HTTP_PORT", 8080, &errList),
		Environment: getEnv("APP_ENV", "local"),
		LogLevel:    getEnvAsLevel("LOG_LEVEL", slog.LevelInfo, &errList),

		DBHost:     getEnv("DB_HOST", ""),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "wandshop"),
		DBSslMode:  getEnv("DB_SSLMODE", "disable"),

		DeliveryDelay: getEnvAsDuration("DELIVERY_DELAY", time.Minute, &errList),
		SweepInterval: getEnvAsDuration("DELIVERY_SWEEP_INTERVAL", time.Minute, &errList),

		KafkaBrokers:           splitAndTrim(getEnv("KAFKA_BROKERS", "")),
		KafkaOrderChangedTopic: getEnv("KAFKA_ORDER_CHANGED_TOPIC", "wandshop.order-changed"),

		TemporalHostPort:  getEnv("TEMPORAL_HOST_PORT", ""),
		TemporalNamespace: getEnv("TEMPORAL_NAMESPACE", "default"),

		OpenAIToken: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel: getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		SeedCatalog:  getEnvAsBool("SEED_CATALOG", true, &errList),
	}
	if err := errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	var errList []error
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		errList = append(errList, fmt.Errorf("HTTP_PORT %d is out of range", c.HTTPPort))
	}
	if c.DeliveryDelay < 0 {
		errList = append(errList, errors.New("DELIVERY_DELAY must not be negative"))
	}
	if c.SweepInterval <= 0 {
		errList = append(errList, errors.New("DELIVERY_SWEEP_INTERVAL must be positive"))
	}
	if len(c.KafkaBrokers) > 0 && c.KafkaOrderChangedTopic == "" {
		errList = append(errList, errors.New("KAFKA_ORDER_CHANGED_TOPIC is required with KAFKA_BROKERS"))
	}
	return errors.Join(errList...)
}

// UsesPostgres reports whether a database is configured.
func (c Config) UsesPostgres() bool {
	return c.DBHost != ""
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getEnvAsInt(key string, fallback int, errList *[]error) int {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		*errList = append(*errList, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return v
}

func getEnvAsDuration(key string, fallback time.Duration, errList *[]error) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		*errList = append(*errList, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return v
}

func getEnvAsBool(key string, fallback bool, errList *[]error) bool {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		*errList = append(*errList, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return v
}

func getEnvAsLevel(key string, fallback slog.Level, errList *[]error) slog.Level {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		*errList = append(*errList, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	return level
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
