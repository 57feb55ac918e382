package http

// Requests carry the caller identity (business unit, waiter) explicitly;
// there is no ambient session here.

type OrderItemRequest struct {
	MenuItemID uint64 `json:"menuItemId" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
	Notes      string `json:"notes"`
}

type CreateOrderRequest struct {
	BusinessUnitID uint64             `json:"businessUnitId" binding:"required"`
	TableID        uint64             `json:"tableId" binding:"required"`
	WaiterID       uint64             `json:"waiterId" binding:"required"`
	WaiterName     string             `json:"waiterName"`
	Items          []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	CustomerID     *uint64            `json:"customerId"`
	IsWalkIn       bool               `json:"isWalkIn"`
	WalkInName     *string            `json:"walkInName"`
	CustomerCount  int                `json:"customerCount"`
	Notes          string             `json:"notes"`
	IsDraft        bool               `json:"isDraft"`
}

type UpdateOrderRequest struct {
	BusinessUnitID uint64             `json:"businessUnitId" binding:"required"`
	WaiterID       uint64             `json:"waiterId" binding:"required"`
	Items          []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type OrderActionRequest struct {
	BusinessUnitID uint64 `json:"businessUnitId" binding:"required"`
}
