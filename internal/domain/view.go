package domain

import "time"

// OrderView is the boundary representation of an order. Every monetary field
// is a plain number here; the decimal storage type never leaks to callers.
type OrderView struct {
	ID             uint64          `json:"id"`
	OrderNumber    string          `json:"orderNumber"`
	BusinessUnitID uint64          `json:"businessUnitId"`
	TableID        uint64          `json:"tableId"`
	WaiterID       uint64          `json:"waiterId"`
	WaiterName     string          `json:"waiterName"`
	Status         OrderStatus     `json:"status"`
	TotalAmount    float64         `json:"totalAmount"`
	DiscountAmount float64         `json:"discountAmount"`
	FinalAmount    float64         `json:"finalAmount"`
	CustomerID     *uint64         `json:"customerId,omitempty"`
	IsWalkIn       bool            `json:"isWalkIn"`
	WalkInName     *string         `json:"walkInName,omitempty"`
	CustomerCount  int             `json:"customerCount"`
	Notes          string          `json:"notes"`
	Items          []OrderItemView `json:"items"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	CompletedAt    *time.Time      `json:"completedAt,omitempty"`
}

type OrderItemView struct {
	ID           uint64          `json:"id"`
	MenuItemID   uint64          `json:"menuItemId"`
	MenuItemName string          `json:"menuItemName"`
	ItemType     ItemType        `json:"itemType"`
	Quantity     int             `json:"quantity"`
	UnitPrice    float64         `json:"unitPrice"`
	TotalPrice   float64         `json:"totalPrice"`
	Status       OrderItemStatus `json:"status"`
	Notes        string          `json:"notes"`
}

// NewOrderView normalizes an order for callers.
func NewOrderView(o *Order) *OrderView {
	items := make([]OrderItemView, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemView{
			ID:           it.ID,
			MenuItemID:   it.MenuItemID,
			MenuItemName: it.MenuItemName,
			ItemType:     it.ItemType,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice.InexactFloat64(),
			TotalPrice:   it.TotalPrice.InexactFloat64(),
			Status:       it.Status,
			Notes:        it.Notes,
		})
	}
	return &OrderView{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber,
		BusinessUnitID: o.BusinessUnitID,
		TableID:        o.TableID,
		WaiterID:       o.WaiterID,
		WaiterName:     o.WaiterName,
		Status:         o.Status,
		TotalAmount:    o.TotalAmount.InexactFloat64(),
		DiscountAmount: o.DiscountAmount.InexactFloat64(),
		FinalAmount:    o.FinalAmount.InexactFloat64(),
		CustomerID:     o.CustomerID,
		IsWalkIn:       o.IsWalkIn,
		WalkInName:     o.WalkInName,
		CustomerCount:  o.CustomerCount,
		Notes:          o.Notes,
		Items:          items,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
		CompletedAt:    o.CompletedAt,
	}
}
