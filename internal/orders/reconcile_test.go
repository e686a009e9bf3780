package orders_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/orders"
)

func request(status string) *orders.ReturnRequest {
	return &orders.ReturnRequest{
		Status:      status,
		RequestedAt: time.Date(2024, 12, 22, 0, 0, 0, 0, time.UTC),
		Reason:      "misprinted pages",
	}
}

func TestResolveReturn(t *testing.T) {
	tests := []struct {
		name   string
		status string
		req    *orders.ReturnRequest
		source orders.ReturnSource
		state  orders.ReturnState
	}{
		{"no request", orders.StatusDelivered, nil, orders.NoReturn, orders.ReturnNone},
		{"unknown status no request", "foo_bar", nil, orders.NoReturn, orders.ReturnNone},
		{"request requested", orders.StatusDelivered, request("requested"), orders.FromRequest, orders.ReturnRequested},
		{"request approved", orders.StatusDelivered, request("approved"), orders.FromRequest, orders.ReturnApproved},
		{"request rejected", orders.StatusDelivered, request("rejected"), orders.FromRequest, orders.ReturnRejected},
		{"request with odd status", orders.StatusDelivered, request("escalated"), orders.FromRequest, orders.ReturnUnknown},
		{"status return requested", orders.StatusReturnRequested, nil, orders.FromStatus, orders.ReturnRequested},
		{"status returned", orders.StatusReturned, nil, orders.FromStatus, orders.ReturnCompleted},
		{"status return rejected", orders.StatusReturnRejected, nil, orders.FromStatus, orders.ReturnRejected},
		{"returned beats requested request", orders.StatusReturned, request("requested"), orders.FromStatus, orders.ReturnCompleted},
		{"rejected status beats approved request", orders.StatusReturnRejected, request("approved"), orders.FromStatus, orders.ReturnRejected},
		{"requested status beats rejected request", orders.StatusReturnRequested, request("rejected"), orders.FromStatus, orders.ReturnRequested},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := orders.ResolveReturn(tt.status, tt.req)
			assert.Equal(t, tt.source, res.Source)
			assert.Equal(t, tt.state, res.State)
			assert.NotEmpty(t, res.Label)
		})
	}
}

func TestDescribeReturn_UnknownState(t *testing.T) {
	label, tone := orders.DescribeReturn("weird")
	assert.Equal(t, "unknown", label)
	assert.Equal(t, orders.ToneNeutral, tone)
}
