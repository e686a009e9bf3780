package feed

import "github.com/shopspring/decimal"

type ordersResponse struct {
	Success bool       `json:"success"`
	Orders  []rawOrder `json:"orders"`
	Message string     `json:"message,omitempty"`
}

type rawOrder struct {
	ID              string            `json:"_id"`
	OrderCode       string            `json:"orderCode"`
	ShippingAddress *rawAddress       `json:"shippingAddress"`
	CreatedAt       string            `json:"createdAt"`
	Total           decimal.Decimal   `json:"total"`
	Status          string            `json:"status"`
	Items           []rawItem         `json:"items"`
	ReturnRequest   *rawReturnRequest `json:"returnRequest"`
}

type rawAddress struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type rawItem struct {
	ProductName string          `json:"productName"`
	Title       string          `json:"title"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

type rawReturnRequest struct {
	Status      string `json:"status"`
	RequestDate string `json:"requestDate"`
	Reason      string `json:"reason"`
}
