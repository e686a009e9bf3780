package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.HTTP.Port)
	assert.Equal(t, 4*time.Second, cfg.Sync.Interval)
	assert.Equal(t, 10*time.Second, cfg.Feed.Timeout)
	assert.Equal(t, "storefront", cfg.Feed.Vocabulary)
	assert.Equal(t, "return_decisions", cfg.Kafka.Topic)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.False(t, cfg.DB.Enabled())
	assert.Equal(t, 10, cfg.Outbox.BatchSize)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("FEED_BASE_URL", "https://feed.example.com/")
	v.Set("SYNC_INTERVAL", "250ms")
	v.Set("KAFKA_BROKERS", "k1:9092, k2:9092,,")
	v.Set("DB_HOST", "db")
	v.Set("DB_PASSWORD", "secret")
	v.Set("ADMIN_PASSWORD", "admin-secret")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "https://feed.example.com", cfg.Feed.BaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.Sync.Interval)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.DB.Enabled())
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "admin-secret", cfg.Admin.Password)
	assert.Equal(t, "host=db port=5432 user=postgres password=secret dbname=orderdesk sslmode=disable", cfg.DB.DSN())
}

func TestFromViper_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  interface{}
	}{
		{"empty feed url", "FEED_BASE_URL", ""},
		{"zero interval", "SYNC_INTERVAL", "0s"},
		{"negative timeout", "FEED_TIMEOUT", "-1s"},
		{"zero batch", "OUTBOX_BATCH_SIZE", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			setDefaults(v)
			v.Set(tt.key, tt.val)

			_, err := fromViper(v)
			assert.Error(t, err)
		})
	}
}
