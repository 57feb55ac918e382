package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusInProgress OrderStatus = "IN_PROGRESS"
	OrderStatusReady      OrderStatus = "READY"
	OrderStatusServed     OrderStatus = "SERVED"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// CanModify reports whether the order is still a draft whose items may be
// replaced wholesale.
func (s OrderStatus) CanModify() bool {
	return s == OrderStatusPending
}

// CanCancel reports whether the order may still be cancelled. Once the
// kitchen has started working on it, it cannot.
func (s OrderStatus) CanCancel() bool {
	return s == OrderStatusPending || s == OrderStatusConfirmed
}

// CanRoute reports whether the order may be fanned out to kitchen/bar.
func (s OrderStatus) CanRoute() bool {
	return s == OrderStatusPending || s == OrderStatusConfirmed
}

type OrderItemStatus string

const (
	ItemStatusPending   OrderItemStatus = "PENDING"
	ItemStatusConfirmed OrderItemStatus = "CONFIRMED"
	ItemStatusPreparing OrderItemStatus = "PREPARING"
	ItemStatusReady     OrderItemStatus = "READY"
	ItemStatusServed    OrderItemStatus = "SERVED"
)

// Order is one dine-in transaction for one table. Monetary columns are stored
// as decimals and deliberately excluded from JSON; they cross the boundary
// only through OrderView, already normalized to plain numbers.
type Order struct {
	ID             uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderNumber    string          `json:"orderNumber" gorm:"size:32;uniqueIndex;not null"`
	BusinessUnitID uint64          `json:"businessUnitId" gorm:"not null;index"`
	TableID        uint64          `json:"tableId" gorm:"not null;index"`
	WaiterID       uint64          `json:"waiterId" gorm:"not null"`
	WaiterName     string          `json:"waiterName" gorm:"size:100"`
	Status         OrderStatus     `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	TotalAmount    decimal.Decimal `json:"-" gorm:"type:decimal(10,2);not null"`
	DiscountAmount decimal.Decimal `json:"-" gorm:"type:decimal(10,2);not null;default:0"`
	FinalAmount    decimal.Decimal `json:"-" gorm:"type:decimal(10,2);not null"`
	CustomerID     *uint64         `json:"customerId,omitempty" gorm:"index"`
	IsWalkIn       bool            `json:"isWalkIn"`
	WalkInName     *string         `json:"walkInName,omitempty" gorm:"size:100"`
	CustomerCount  int             `json:"customerCount" gorm:"not null;default:1"`
	Notes          string          `json:"notes" gorm:"type:text"`
	Items          []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt      time.Time       `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt      time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
	CompletedAt    *time.Time      `json:"completedAt,omitempty"`
}

// OrderItem is one line within an order. Name, type, price and prep time are
// snapshots of the menu item at the moment it was added; later catalog edits
// do not touch them.
type OrderItem struct {
	ID           uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID      uint64          `json:"orderId" gorm:"not null;index"`
	MenuItemID   uint64          `json:"menuItemId" gorm:"not null"`
	MenuItemName string          `json:"menuItemName" gorm:"size:100;not null"`
	ItemType     ItemType        `json:"itemType" gorm:"type:varchar(10);not null"`
	PrepTime     *int            `json:"prepTime,omitempty"`
	Quantity     int             `json:"quantity" gorm:"not null"`
	UnitPrice    decimal.Decimal `json:"-" gorm:"type:decimal(10,2);not null"`
	TotalPrice   decimal.Decimal `json:"-" gorm:"type:decimal(10,2);not null"`
	Status       OrderItemStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	Notes        string          `json:"notes" gorm:"type:text"`
	CreatedAt    time.Time       `json:"createdAt" gorm:"autoCreateTime"`
}
