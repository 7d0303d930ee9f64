package order

import (
	"time"

	"orderdesk/internal/domain"
)

// DemoOrders returns the sample records shown on a fresh install. The counter
// continues from the highest id once these are seeded.
func DemoOrders() []domain.Order {
	return []domain.Order{
		{
			ID:                 1,
			OrderID:            domain.OrderCode(1),
			CustomerName:       "John Doe",
			CustomerEmail:      "john@example.com",
			ProductName:        "Laptop",
			ProductWeight:      "2.50",
			DestinationCity:    "New York",
			DestinationPostal:  "10001",
			DestinationAddress: "123 Main St",
			Status:             domain.OrderStatusPending,
			Amount:             "999.99",
			CreatedAt:          time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			UpdatedAt:          time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                 2,
			OrderID:            domain.OrderCode(2),
			CustomerName:       "Jane Smith",
			CustomerEmail:      "jane@example.com",
			ProductName:        "Smartphone",
			ProductWeight:      "0.20",
			DestinationCity:    "Los Angeles",
			DestinationPostal:  "90210",
			DestinationAddress: "456 Oak Ave",
			Status:             domain.OrderStatusShipped,
			Amount:             "699.99",
			CreatedAt:          time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
			UpdatedAt:          time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:                 3,
			OrderID:            domain.OrderCode(3),
			CustomerName:       "Bob Johnson",
			CustomerEmail:      "bob@example.com",
			ProductName:        "Tablet",
			ProductWeight:      "0.50",
			DestinationCity:    "Chicago",
			DestinationPostal:  "60601",
			DestinationAddress: "789 Pine Rd",
			Status:             domain.OrderStatusDelivered,
			Amount:             "399.99",
			CreatedAt:          time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC),
			UpdatedAt:          time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
		},
	}
}
