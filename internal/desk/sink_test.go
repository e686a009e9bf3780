package desk

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	mock_database "gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/db/mocks"
	mock_desk "gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/desk/mocks"
	mock_kafka "gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/kafka/mocks"
	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/repository"
)

func samplePayload() repository.ReturnDecisionPayload {
	return repository.ReturnDecisionPayload{
		IntentID:  uuid.New(),
		OrderCode: "DH001",
		Decision:  "approve",
		FromState: "requested",
		Actor:     "admin",
		DecidedAt: time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC),
	}
}

func TestOutboxSink_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := mock_database.NewMockDB(ctrl)
	mockTx := mock_database.NewMockTx(ctrl)
	repo := mock_desk.NewMockOutboxTaskCreator(ctrl)
	sink := NewOutboxSink(mockDB, repo, "return_decisions", zap.NewNop())
	payload := samplePayload()

	mockDB.EXPECT().BeginTx(gomock.Any()).Return(mockTx, nil)
	repo.EXPECT().CreateTx(gomock.Any(), mockTx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.Tx, task *repository.OutboxTask) error {
			assert.Equal(t, payload.IntentID, task.ID)
			assert.Equal(t, "return_decisions", task.Topic)
			assert.Equal(t, repository.TaskStatusCreated, task.Status)

			var got repository.ReturnDecisionPayload
			require.NoError(t, json.Unmarshal(task.Payload, &got))
			assert.Equal(t, payload, got)
			return nil
		})
	mockTx.EXPECT().Commit(gomock.Any()).Return(nil)
	mockTx.EXPECT().Rollback(gomock.Any()).Return(nil)

	assert.NoError(t, sink.Submit(context.Background(), payload))
}

func TestOutboxSink_SubmitRollsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := mock_database.NewMockDB(ctrl)
	mockTx := mock_database.NewMockTx(ctrl)
	repo := mock_desk.NewMockOutboxTaskCreator(ctrl)
	sink := NewOutboxSink(mockDB, repo, "return_decisions", zap.NewNop())

	mockDB.EXPECT().BeginTx(gomock.Any()).Return(mockTx, nil)
	repo.EXPECT().CreateTx(gomock.Any(), mockTx, gomock.Any()).Return(errors.New("unique violation"))
	mockTx.EXPECT().Rollback(gomock.Any()).Return(nil)

	err := sink.Submit(context.Background(), samplePayload())
	assert.ErrorContains(t, err, "unique violation")
}

func TestProducerSink_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	producer := mock_kafka.NewMockProducer(ctrl)
	sink := NewProducerSink(producer, "return_decisions")
	payload := samplePayload()

	producer.EXPECT().SendMessage(gomock.Any(), "return_decisions", []byte(payload.IntentID.String()), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ []byte, value []byte) error {
			var got repository.ReturnDecisionPayload
			require.NoError(t, json.Unmarshal(value, &got))
			assert.Equal(t, "DH001", got.OrderCode)
			return nil
		})

	assert.NoError(t, sink.Submit(context.Background(), payload))

	producer.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
	assert.ErrorContains(t, sink.Submit(context.Background(), payload), "broker down")
}
