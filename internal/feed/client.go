package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/config"
	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/orders"
)

const (
	ordersPath = "/api/orders"

	unknownCustomer = "unknown"
	missingEmail    = "n/a"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Client reads the order collection from the external order service.
type Client struct {
	baseURL    string
	token      string
	vocabulary Vocabulary
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(cfg config.FeedConfig, logger *zap.Logger) (*Client, error) {
	vocab, err := ParseVocabulary(cfg.Vocabulary)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		token:      cfg.Token,
		vocabulary: vocab,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.With(zap.String("component", "feed"), zap.String("vocabulary", vocab.Name())),
	}, nil
}

// FetchOrders returns the full order collection in feed order.
func (c *Client) FetchOrders(ctx context.Context) ([]orders.Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+ordersPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("order feed error: status %d, body: %s", resp.StatusCode, truncate(string(body), 256))
	}

	var payload ordersResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if !payload.Success {
		return nil, fmt.Errorf("order feed reported failure: %s", payload.Message)
	}

	list := make([]orders.Order, 0, len(payload.Orders))
	for _, raw := range payload.Orders {
		list = append(list, c.toOrder(raw))
	}

	c.logger.Debug("Fetched orders", zap.Int("count", len(list)))
	return list, nil
}

func (c *Client) toOrder(raw rawOrder) orders.Order {
	o := orders.Order{
		Code:          raw.OrderCode,
		CustomerName:  unknownCustomer,
		CustomerEmail: missingEmail,
		Total:         nonNegative(raw.Total),
		Status:        c.vocabulary.Normalize(raw.Status),
		Items:         make([]orders.LineItem, 0, len(raw.Items)),
	}
	if o.Code == "" {
		o.Code = raw.ID
	}

	if addr := raw.ShippingAddress; addr != nil {
		if addr.FullName != "" {
			o.CustomerName = addr.FullName
		}
		if addr.Email != "" {
			o.CustomerEmail = addr.Email
		}
	}

	placedAt, err := parseTime(raw.CreatedAt)
	if err != nil {
		c.logger.Warn("Order has unparseable creation time", zap.String("order_code", o.Code), zap.Error(err))
	}
	o.PlacedAt = placedAt

	for _, it := range raw.Items {
		name := it.ProductName
		if name == "" {
			name = it.Title
		}
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		o.Items = append(o.Items, orders.LineItem{
			ProductName: name,
			Quantity:    qty,
			UnitPrice:   nonNegative(it.Price),
		})
	}

	if rr := raw.ReturnRequest; rr != nil {
		requestedAt, err := parseTime(rr.RequestDate)
		if err != nil {
			c.logger.Warn("Return request has unparseable date", zap.String("order_code", o.Code), zap.Error(err))
		}
		o.ReturnRequest = &orders.ReturnRequest{
			Status:      strings.ToLower(strings.TrimSpace(rr.Status)),
			RequestedAt: requestedAt,
			Reason:      rr.Reason,
		}
	}

	return o
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp %q", s)
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
