package orders_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/orders"
)

func TestCanReturn(t *testing.T) {
	placed := time.Date(2025, 3, 10, 8, 45, 22, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    bool
	}{
		{"just placed", 0, true},
		{"two days", 48 * time.Hour, true},
		{"167h59m", 167*time.Hour + 59*time.Minute, true},
		{"exactly 168h", 168 * time.Hour, true},
		{"168h plus a nanosecond", 168*time.Hour + time.Nanosecond, false},
		{"168h01m", 168*time.Hour + time.Minute, false},
		{"ten days", 240 * time.Hour, false},
		{"placed in the future", -time.Hour, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orders.CanReturn(placed, placed.Add(tt.elapsed)))
		})
	}
}

func TestCanReturn_IgnoresCalendarDays(t *testing.T) {
	// Placed late in the evening; seven calendar days later but past 168h.
	placed := time.Date(2025, 3, 1, 23, 30, 0, 0, time.UTC)
	now := time.Date(2025, 3, 8, 23, 31, 0, 0, time.UTC)
	assert.False(t, orders.CanReturn(placed, now))

	// Different zones, same instant.
	loc := time.FixedZone("UTC+7", 7*3600)
	assert.True(t, orders.CanReturn(placed, placed.Add(167*time.Hour).In(loc)))
}

func TestReturnDeadline(t *testing.T) {
	placed := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC), orders.ReturnDeadline(placed))
	assert.True(t, orders.CanReturn(placed, orders.ReturnDeadline(placed)))
}
