package order

import (
	"errors"
	"slices"

	"github.com/shopspring/decimal"
)

func init() {
	// The backend speaks JSON numbers for money; keep them numbers when
	// re-encoding for the browser.
	decimal.MarshalJSONWithoutQuotes = true
}

// Order is the backend's representation of an order. This service only
// transports it: timestamps stay in whatever format the backend sends, and
// optional fields are pointers so an absent value is not sent back as a zero.
type Order struct {
	ID                string          `json:"id"`
	DocumentID        string          `json:"_id,omitempty"`
	UserID            string          `json:"userId"`
	CustomerName      string          `json:"customerName"`
	CustomerEmail     string          `json:"customerEmail"`
	Items             []Item          `json:"items"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	Status            Status          `json:"status"`
	PaymentMethod     string          `json:"paymentMethod"`
	ShippingAddress   Address         `json:"shippingAddress"`
	CreatedAt         string          `json:"createdAt,omitempty"`
	UpdatedAt         string          `json:"updatedAt,omitempty"`
	EstimatedDelivery *string         `json:"estimatedDelivery,omitempty"`
	TrackingID        *string         `json:"trackingId,omitempty"`
}

// Item quantity is a decimal so fractional amounts from the backend survive.
type Item struct {
	MedicineName string          `json:"medicineName"`
	Quantity     decimal.Decimal `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Image        string          `json:"image"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type Status string

const (
	StatusPlaced    Status = "placed"
	StatusConfirmed Status = "confirmed"
	StatusPacked    Status = "packed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

var AvailableStatuses = []Status{
	StatusPlaced, StatusConfirmed, StatusPacked, StatusShipped, StatusDelivered, StatusCancelled,
}

var ErrUnknownStatus = errors.New("unknown order status")

// NewStatus parses a raw status. The dashboard checks order filters with it;
// status updates are forwarded as given and validated by the backend.
func NewStatus(raw string) (Status, error) {
	if slices.Contains(AvailableStatuses, Status(raw)) {
		return Status(raw), nil
	}
	return "", ErrUnknownStatus
}

// Stats is the dashboard summary computed by the backend.
type Stats struct {
	TotalOrders     int             `json:"totalOrders"`
	PendingOrders   int             `json:"pendingOrders"`
	ShippedOrders   int             `json:"shippedOrders"`
	DeliveredOrders int             `json:"deliveredOrders"`
	Revenue         decimal.Decimal `json:"revenue"`
}

// StatusUpdate is the body of PUT /admin/orders/{id}/status. TrackingID is
// omitted from the JSON when the caller did not supply one.
type StatusUpdate struct {
	Status     Status  `json:"status"`
	TrackingID *string `json:"trackingId,omitempty"`
}

// Filter narrows GET /admin/orders. The zero Filter encodes to no query
// string at all.
type Filter struct {
	Status Status `url:"status,omitempty" form:"status"`
	Page   int    `url:"page,omitempty" form:"page"`
	Limit  int    `url:"limit,omitempty" form:"limit"`
}
