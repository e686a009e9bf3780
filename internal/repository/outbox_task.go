package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "CREATED"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusFailed     TaskStatus = "FAILED"
	TaskStatusDone       TaskStatus = "DONE"
)

type OutboxTask struct {
	ID          uuid.UUID       `db:"id"`
	Status      TaskStatus      `db:"status"`
	Payload     json.RawMessage `db:"payload"`
	Topic       string          `db:"topic"`
	Attempts    int             `db:"attempts"`
	LastError   *string         `db:"last_error"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}

// ReturnDecisionPayload is the message an external collaborator receives for
// every approve/reject decision taken in the console.
type ReturnDecisionPayload struct {
	IntentID  uuid.UUID `json:"intent_id"`
	OrderCode string    `json:"order_code"`
	Decision  string    `json:"decision"`
	FromState string    `json:"from_state"`
	Actor     string    `json:"actor,omitempty"`
	DecidedAt time.Time `json:"decided_at"`
}

func NewReturnDecisionTask(topic string, payload ReturnDecisionPayload) (*OutboxTask, error) {
	if payload.IntentID == uuid.Nil {
		payload.IntentID = uuid.New()
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal return decision payload: %w", err)
	}
	return &OutboxTask{
		ID:      payload.IntentID,
		Status:  TaskStatusCreated,
		Payload: raw,
		Topic:   topic,
	}, nil
}
