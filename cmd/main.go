package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/cache"
	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/config"
	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/desk"
	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/feed"
	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/kafka"
	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/logger"
	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/repository/postgresql"
	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/server"
	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/syncer"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Config error:", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("Order desk stopped with error", zap.Error(err))
		os.Exit(1)
	}
	log.Info("Order desk gracefully stopped")
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	feedClient, err := feed.NewClient(cfg.Feed, log)
	if err != nil {
		return err
	}

	orderCache := cache.NewOrderCache(log)
	synchronizer := syncer.New(feedClient, orderCache, syncer.Config{Interval: cfg.Sync.Interval}, log)

	producer := kafka.NewProducer(cfg.Kafka.Brokers, log)

	var (
		sink      desk.IntentSink
		users     server.UserRepo
		publisher *kafka.Publisher
	)

	if cfg.DB.Enabled() {
		database, err := db.NewDb(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer database.Close()

		userRepo := postgresql.NewUserRepo(database)
		if cfg.Admin.Password != "" {
			created, err := userRepo.EnsureUser(ctx, cfg.Admin.Username, cfg.Admin.Password)
			if err != nil {
				return err
			}
			if created {
				log.Info("Created console user", zap.String("username", cfg.Admin.Username))
			}
		}
		users = userRepo

		outboxRepo := postgresql.NewOutboxTaskRepo(cfg.Outbox.MaxAttempts)
		sink = desk.NewOutboxSink(database, outboxRepo, cfg.Kafka.Topic, log)
		publisher = kafka.NewPublisher(database, outboxRepo, producer, cfg.Outbox, log)
	} else {
		log.Warn("DB_HOST is empty, decisions go straight to the producer and the console uses ADMIN_PASSWORD_HASH")
		if cfg.Admin.PasswordHash == "" {
			log.Warn("ADMIN_PASSWORD_HASH is empty, every console request will be rejected")
		}
		users = server.NewStaticUserRepo(cfg.Admin.Username, cfg.Admin.PasswordHash)
		sink = desk.NewProducerSink(producer, cfg.Kafka.Topic)
	}

	handle, err := synchronizer.Start(ctx)
	if err != nil {
		return err
	}
	defer handle.Stop()

	srv := server.New(desk.New(synchronizer, sink, log), users, log)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Run(gCtx, cfg.HTTP.Port); err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if publisher != nil {
		g.Go(func() error {
			publisher.Run(gCtx)
			return nil
		})
	}

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("Shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		handle.Stop()

		var errs []error
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("server shutdown: %w", err))
		}
		if publisher != nil {
			publisher.Shutdown(shutdownCtx)
		} else if err := producer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("producer close: %w", err))
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}
