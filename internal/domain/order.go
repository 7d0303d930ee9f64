package domain

import (
	"fmt"
	"time"
)

// Order is a shipment record tracked by the dashboard. JSON names are part of
// the API contract consumed by the client.
type Order struct {
	ID                 int       `json:"id"`
	OrderID            string    `json:"orderId"`
	CustomerName       string    `json:"customerName"`
	CustomerEmail      string    `json:"customerEmail"`
	ProductName        string    `json:"productName"`
	ProductWeight      string    `json:"productWeight"`
	DestinationCity    string    `json:"destinationCity"`
	DestinationPostal  string    `json:"destinationPostal"`
	DestinationAddress string    `json:"destinationAddress"`
	Status             string    `json:"status"`
	Amount             string    `json:"amount"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// Known status values. The store accepts any caller-supplied status, so these
// are not a closed set.
const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
)

// OrderCode derives the human-facing order code from the numeric id. It is
// computed once at creation and never recomputed.
func OrderCode(id int) string {
	return fmt.Sprintf("ORD-%03d", id)
}
