package orders

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the client-side copy of an order held by the external order service.
type Order struct {
	Code          string          `json:"code"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	PlacedAt      time.Time       `json:"placed_at"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	Items         []LineItem      `json:"items"`
	ReturnRequest *ReturnRequest  `json:"return_request,omitempty"`
}

type LineItem struct {
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Return request statuses as carried by the return-request sub-entity.
const (
	RequestRequested = "requested"
	RequestApproved  = "approved"
	RequestRejected  = "rejected"
)

type ReturnRequest struct {
	Status      string    `json:"status"`
	RequestedAt time.Time `json:"requested_at"`
	Reason      string    `json:"reason"`
}

// Clone returns a deep copy so holders never share item slices or requests.
func (o Order) Clone() Order {
	c := o
	if o.Items != nil {
		c.Items = make([]LineItem, len(o.Items))
		copy(c.Items, o.Items)
	}
	if o.ReturnRequest != nil {
		rr := *o.ReturnRequest
		c.ReturnRequest = &rr
	}
	return c
}
