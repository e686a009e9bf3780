//go:generate mockgen -source ./sink.go -destination=./mocks/sink.go -package=mock_desk
package desk

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/kafka"
	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/repository"
)

type OutboxTaskCreator interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
}

// OutboxSink stores decisions in the outbox table; the publisher delivers
// them later.
type OutboxSink struct {
	db     db.DB
	repo   OutboxTaskCreator
	topic  string
	logger *zap.Logger
}

func NewOutboxSink(d db.DB, repo OutboxTaskCreator, topic string, logger *zap.Logger) *OutboxSink {
	return &OutboxSink{db: d, repo: repo, topic: topic, logger: logger}
}

func (s *OutboxSink) Submit(ctx context.Context, payload repository.ReturnDecisionPayload) error {
	task, err := repository.NewReturnDecisionTask(s.topic, payload)
	if err != nil {
		return err
	}

	err = db.InTx(ctx, s.db, func(tx db.Tx) error {
		return s.repo.CreateTx(ctx, tx, task)
	})
	if err != nil {
		return fmt.Errorf("failed to store return decision: %w", err)
	}

	s.logger.Debug("Return decision stored in outbox", zap.Stringer("task_id", task.ID))
	return nil
}

// ProducerSink sends decisions to the producer right away. Used when no
// database is configured.
type ProducerSink struct {
	producer kafka.Producer
	topic    string
}

func NewProducerSink(producer kafka.Producer, topic string) *ProducerSink {
	return &ProducerSink{producer: producer, topic: topic}
}

func (s *ProducerSink) Submit(ctx context.Context, payload repository.ReturnDecisionPayload) error {
	task, err := repository.NewReturnDecisionTask(s.topic, payload)
	if err != nil {
		return err
	}
	if err := s.producer.SendMessage(ctx, task.Topic, []byte(task.ID.String()), task.Payload); err != nil {
		return fmt.Errorf("failed to send return decision: %w", err)
	}
	return nil
}
