package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTP     HTTPConfig
	Feed     FeedConfig
	Sync     SyncConfig
	DB       DBConfig
	Kafka    KafkaConfig
	Outbox   OutboxConfig
	Admin    AdminConfig
	LogLevel string
}

type HTTPConfig struct {
	Port string
}

type FeedConfig struct {
	BaseURL    string
	Token      string
	Vocabulary string
	Timeout    time.Duration
}

type SyncConfig struct {
	Interval time.Duration
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

// Enabled reports whether a database was configured at all.
func (c DBConfig) Enabled() bool {
	return c.Host != ""
}

func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

type OutboxConfig struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
}

// AdminConfig describes the console operator. Password seeds the users table
// when a database is configured; PasswordHash is used without one.
type AdminConfig struct {
	Username     string
	Password     string
	PasswordHash string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_PORT", "9000")
	v.SetDefault("FEED_BASE_URL", "http://localhost:5000")
	v.SetDefault("FEED_VOCABULARY", "storefront")
	v.SetDefault("FEED_TIMEOUT", "10s")
	v.SetDefault("SYNC_INTERVAL", "4s")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "orderdesk")
	v.SetDefault("KAFKA_TOPIC", "return_decisions")
	v.SetDefault("KAFKA_GROUP_ID", "return-decision-consumer-group")
	v.SetDefault("OUTBOX_POLL_INTERVAL", "2s")
	v.SetDefault("OUTBOX_BATCH_SIZE", 10)
	v.SetDefault("OUTBOX_MAX_ATTEMPTS", 5)
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("LOG_LEVEL", "info")
}

// Load reads .env (if one is found near the working directory) and the
// process environment. Environment variables win over .env values.
func Load() (*Config, error) {
	loadEnv()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		HTTP: HTTPConfig{
			Port: v.GetString("HTTP_PORT"),
		},
		Feed: FeedConfig{
			BaseURL:    strings.TrimSuffix(v.GetString("FEED_BASE_URL"), "/"),
			Token:      v.GetString("FEED_TOKEN"),
			Vocabulary: v.GetString("FEED_VOCABULARY"),
			Timeout:    v.GetDuration("FEED_TIMEOUT"),
		},
		Sync: SyncConfig{
			Interval: v.GetDuration("SYNC_INTERVAL"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(v.GetString("KAFKA_BROKERS")),
			Topic:   v.GetString("KAFKA_TOPIC"),
			GroupID: v.GetString("KAFKA_GROUP_ID"),
		},
		Outbox: OutboxConfig{
			PollInterval: v.GetDuration("OUTBOX_POLL_INTERVAL"),
			BatchSize:    v.GetInt("OUTBOX_BATCH_SIZE"),
			MaxAttempts:  v.GetInt("OUTBOX_MAX_ATTEMPTS"),
		},
		Admin: AdminConfig{
			Username:     v.GetString("ADMIN_USERNAME"),
			Password:     v.GetString("ADMIN_PASSWORD"),
			PasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
		},
		LogLevel: v.GetString("LOG_LEVEL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Feed.BaseURL == "" {
		return fmt.Errorf("FEED_BASE_URL is required")
	}
	if c.Sync.Interval <= 0 {
		return fmt.Errorf("SYNC_INTERVAL must be positive, got %s", c.Sync.Interval)
	}
	if c.Feed.Timeout <= 0 {
		return fmt.Errorf("FEED_TIMEOUT must be positive, got %s", c.Feed.Timeout)
	}
	if c.Outbox.PollInterval <= 0 || c.Outbox.BatchSize <= 0 || c.Outbox.MaxAttempts <= 0 {
		return fmt.Errorf("outbox settings must be positive")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func loadEnv() {
	wd, err := os.Getwd()
	if err != nil {
		log.Printf("config: cannot get working directory: %v", err)
		return
	}

	possiblePaths := []string{
		filepath.Join(wd, ".env"),
		filepath.Join(wd, "..", ".env"),
		filepath.Join(wd, "..", "..", ".env"),
	}

	for _, envPath := range possiblePaths {
		if err := godotenv.Load(envPath); err == nil {
			log.Printf("Loaded environment variables from %s", envPath)
			return
		}
	}
}
