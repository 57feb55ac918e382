package domain

import "time"

type TableStatus string

const (
	TableStatusAvailable TableStatus = "AVAILABLE"
	TableStatusOccupied  TableStatus = "OCCUPIED"
	TableStatusReserved  TableStatus = "RESERVED"
)

// Table is a physical table in one business unit. This service reads it for
// validation and flips its status to OCCUPIED when an order is routed; it
// never creates or deletes tables.
type Table struct {
	ID             uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	BusinessUnitID uint64      `json:"businessUnitId" gorm:"not null;index"`
	Number         int         `json:"number" gorm:"not null"`
	Capacity       int         `json:"capacity" gorm:"not null;default:4"`
	Status         TableStatus `json:"status" gorm:"type:varchar(20);not null;default:'AVAILABLE'"`
	IsActive       bool        `json:"isActive" gorm:"not null;default:true"`
	CreatedAt      time.Time   `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt      time.Time   `json:"updatedAt" gorm:"autoUpdateTime"`
}
