package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/orders"
)

func TestOrderCache_StartsEmpty(t *testing.T) {
	c := NewOrderCache(zap.NewNop())
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.All())
	assert.True(t, c.ReplacedAt().IsZero())

	_, ok := c.Get("DH001")
	assert.False(t, ok)
}

func TestOrderCache_ReplaceIsWholesale(t *testing.T) {
	c := NewOrderCache(zap.NewNop())
	at := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	c.Replace([]orders.Order{{Code: "A"}, {Code: "B"}}, at)
	c.Replace([]orders.Order{{Code: "C"}}, at.Add(time.Second))

	assert.Equal(t, 1, c.Len())
	_, ok := c.Get("A")
	assert.False(t, ok)
	got, ok := c.Get("C")
	require.True(t, ok)
	assert.Equal(t, "C", got.Code)
	assert.Equal(t, at.Add(time.Second), c.ReplacedAt())
}

func TestOrderCache_DropsDuplicateCodes(t *testing.T) {
	c := NewOrderCache(zap.NewNop())

	dropped := c.Replace([]orders.Order{
		{Code: "A", Status: "pending"},
		{Code: "B"},
		{Code: "A", Status: "delivered"},
	}, time.Now())

	assert.Equal(t, []string{"A"}, dropped)
	all := c.All()
	require.Len(t, all, 2)
	assert.Equal(t, "A", all[0].Code)
	assert.Equal(t, "pending", all[0].Status)
	assert.Equal(t, "B", all[1].Code)
}

func TestOrderCache_ReturnsCopies(t *testing.T) {
	c := NewOrderCache(zap.NewNop())
	src := []orders.Order{{
		Code:          "A",
		Items:         []orders.LineItem{{ProductName: "Go in Action", Quantity: 1}},
		ReturnRequest: &orders.ReturnRequest{Status: "requested"},
	}}
	c.Replace(src, time.Now())

	src[0].Items[0].Quantity = 99
	got, _ := c.Get("A")
	assert.Equal(t, 1, got.Items[0].Quantity)

	got.ReturnRequest.Status = "approved"
	again, _ := c.Get("A")
	assert.Equal(t, "requested", again.ReturnRequest.Status)
}
