package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/config"
	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/logger"
	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/repository"
)

const defaultBroker = "localhost:9092"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Config error:", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		brokers = []string{defaultBroker}
	}

	log.Info("Starting return decision consumer")

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		GroupID:        cfg.Kafka.GroupID,
		Topic:          cfg.Kafka.Topic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		log.Info("Closing Kafka reader")
		if err := r.Close(); err != nil {
			log.Error("Error closing Kafka reader", zap.Error(err))
		}
	}()

	log.Info("Consumer connected",
		zap.String("topic", cfg.Kafka.Topic),
		zap.Strings("brokers", brokers),
		zap.String("group_id", cfg.Kafka.GroupID),
	)

	for {
		m, err := r.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("Shutdown signal received, stopping consumer")
				return
			}
			log.Error("Error reading message", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(5 * time.Second):
			}
			continue
		}

		var payload repository.ReturnDecisionPayload
		if err := json.Unmarshal(m.Value, &payload); err != nil {
			log.Warn("Skipping malformed return decision",
				zap.Int64("offset", m.Offset),
				zap.ByteString("value", m.Value),
				zap.Error(err),
			)
			continue
		}

		log.Info("Return decision received",
			zap.Time("timestamp", m.Time),
			zap.Int("partition", m.Partition),
			zap.Int64("offset", m.Offset),
			zap.ByteString("key", m.Key),
			zap.String("order_code", payload.OrderCode),
			zap.String("decision", payload.Decision),
			zap.String("from_state", payload.FromState),
			zap.String("actor", payload.Actor),
			zap.Time("decided_at", payload.DecidedAt),
		)
	}
}
