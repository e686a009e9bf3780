//go:generate mockgen -source ./desk.go -destination=./mocks/desk.go -package=mock_desk
package desk

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/cache"
	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/orders"
	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/syncer"
)

var ErrOrderNotFound = errors.New("order not found")

type Synchronizer interface {
	Cache() *cache.OrderCache
	Refresh() bool
	Status() syncer.Status
}

// IntentSink hands a validated return decision to whoever carries it out.
type IntentSink interface {
	Submit(ctx context.Context, payload repository.ReturnDecisionPayload) error
}

type ListResult struct {
	Orders  []orders.View `json:"orders"`
	Total   int           `json:"total"`
	Matched int           `json:"matched"`
	Notice  string        `json:"notice,omitempty"`
}

// Desk answers console reads from the synchronized collection and forwards
// return decisions. It never changes an order itself.
type Desk struct {
	syncer Synchronizer
	sink   IntentSink
	logger *zap.Logger
}

func New(s Synchronizer, sink IntentSink, logger *zap.Logger) *Desk {
	return &Desk{
		syncer: s,
		sink:   sink,
		logger: logger.With(zap.String("component", "desk")),
	}
}

// List enriches the whole collection at now and filters it by q.
func (d *Desk) List(q orders.Query, now time.Time) ListResult {
	views := orders.EnrichAll(d.syncer.Cache().All(), now)
	matched := orders.Filter(views, q)
	return ListResult{
		Orders:  matched,
		Total:   len(views),
		Matched: len(matched),
		Notice:  notice(d.syncer.Status()),
	}
}

// Get resolves the order by code against the current collection, so a view
// opened before a refresh always shows the latest data.
func (d *Desk) Get(code string, now time.Time) (orders.View, error) {
	o, ok := d.syncer.Cache().Get(code)
	if !ok {
		return orders.View{}, fmt.Errorf("%w: %s", ErrOrderNotFound, code)
	}
	return orders.Enrich(o, now), nil
}

func (d *Desk) Actions(code string, now time.Time) ([]orders.Action, error) {
	v, err := d.Get(code, now)
	if err != nil {
		return nil, err
	}
	return v.Actions, nil
}

// Decide validates the decision against the current return state and submits
// the intent. The collection is left as is; the change shows up after the
// feed reports it.
func (d *Desk) Decide(ctx context.Context, code string, decision orders.ReturnDecision, actor string, now time.Time) (orders.Decision, error) {
	v, err := d.Get(code, now)
	if err != nil {
		return orders.Decision{}, err
	}

	dec, err := orders.Decide(v, decision)
	if err != nil {
		d.logger.Info("Return decision rejected",
			zap.String("order_code", code),
			zap.String("decision", string(decision)),
			zap.String("return_state", string(v.Return.State)),
		)
		return orders.Decision{}, err
	}

	payload := repository.ReturnDecisionPayload{
		IntentID:  uuid.New(),
		OrderCode: dec.OrderCode,
		Decision:  string(dec.Decision),
		FromState: string(dec.FromState),
		Actor:     actor,
		DecidedAt: now.UTC(),
	}
	if err := d.sink.Submit(ctx, payload); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("return_decision").Inc()
		return orders.Decision{}, fmt.Errorf("failed to submit return decision for %s: %w", code, err)
	}

	metrics.ReturnDecisionsTotal.WithLabelValues(string(dec.Decision)).Inc()
	d.logger.Info("Return decision submitted",
		zap.String("order_code", code),
		zap.String("decision", string(dec.Decision)),
		zap.String("actor", actor),
		zap.Stringer("intent_id", payload.IntentID),
	)

	if !d.syncer.Refresh() {
		d.logger.Debug("Synchronizer not running, skipping refresh after decision")
	}
	return dec, nil
}

func (d *Desk) Refresh() bool {
	return d.syncer.Refresh()
}

func (d *Desk) SyncStatus() syncer.Status {
	return d.syncer.Status()
}

func notice(st syncer.Status) string {
	if st.LastError == "" {
		return ""
	}
	if st.LastSyncedAt.IsZero() {
		return "Orders could not be loaded: " + st.LastError
	}
	return fmt.Sprintf("Orders could not be refreshed, showing data from %s: %s",
		st.LastSyncedAt.Format(time.RFC3339), st.LastError)
}
