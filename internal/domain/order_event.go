package domain

import "time"

// Event payloads published to the order exchange after a state change
// commits. Amounts are already normalized numbers.

type OrderCreatedEvent struct {
	OrderID        uint64      `json:"orderId"`
	OrderNumber    string      `json:"orderNumber"`
	BusinessUnitID uint64      `json:"businessUnitId"`
	TableID        uint64      `json:"tableId"`
	Status         OrderStatus `json:"status"`
	TotalAmount    float64     `json:"totalAmount"`
	CreatedAt      time.Time   `json:"createdAt"`
}

type OrderRoutedEvent struct {
	OrderID       uint64 `json:"orderId"`
	OrderNumber   string `json:"orderNumber"`
	Queue         string `json:"queue"` // "kitchen" or "bar"
	TableNumber   int    `json:"tableNumber"`
	ItemCount     int    `json:"itemCount"`
	EstimatedTime int    `json:"estimatedTime"`
}

type OrderCancelledEvent struct {
	OrderID     uint64    `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	CancelledAt time.Time `json:"cancelledAt"`
}
