package domain

import "time"

// KitchenOrder and BarOrder are append-only routing records created once per
// order for the FOOD and DRINK subsets of its items. They carry denormalized
// snapshots (table number, waiter name, item lines) so the kitchen and bar
// displays never have to join back to the orders table. The unique index on
// OrderID backs the idempotency guard in the routing step.

type KitchenOrder struct {
	ID            uint64             `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID       uint64             `json:"orderId" gorm:"not null;uniqueIndex"`
	OrderNumber   string             `json:"orderNumber" gorm:"size:32;not null"`
	TableNumber   int                `json:"tableNumber" gorm:"not null"`
	WaiterName    string             `json:"waiterName" gorm:"size:100"`
	Status        string             `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	EstimatedTime int                `json:"estimatedTime" gorm:"not null"`
	Items         []KitchenOrderItem `json:"items" gorm:"foreignKey:KitchenOrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time          `json:"createdAt" gorm:"autoCreateTime"`
}

type KitchenOrderItem struct {
	ID             uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	KitchenOrderID uint64 `json:"kitchenOrderId" gorm:"not null;index"`
	Name           string `json:"name" gorm:"size:100;not null"`
	Quantity       int    `json:"quantity" gorm:"not null"`
	Notes          string `json:"notes" gorm:"type:text"`
}

type BarOrder struct {
	ID            uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID       uint64          `json:"orderId" gorm:"not null;uniqueIndex"`
	OrderNumber   string          `json:"orderNumber" gorm:"size:32;not null"`
	TableNumber   int             `json:"tableNumber" gorm:"not null"`
	WaiterName    string          `json:"waiterName" gorm:"size:100"`
	Status        string          `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	EstimatedTime int             `json:"estimatedTime" gorm:"not null"`
	Items         []BarOrderItem  `json:"items" gorm:"foreignKey:BarOrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time       `json:"createdAt" gorm:"autoCreateTime"`
}

type BarOrderItem struct {
	ID         uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	BarOrderID uint64 `json:"barOrderId" gorm:"not null;index"`
	Name       string `json:"name" gorm:"size:100;not null"`
	Quantity   int    `json:"quantity" gorm:"not null"`
	Notes      string `json:"notes" gorm:"type:text"`
}
