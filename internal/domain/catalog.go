package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ItemType string

const (
	ItemTypeFood  ItemType = "FOOD"
	ItemTypeDrink ItemType = "DRINK"
)

// Fallback prep times (minutes) when a menu item has none recorded.
const (
	DefaultFoodPrepMinutes  = 15
	DefaultDrinkPrepMinutes = 5
)

// DefaultPrepMinutes returns the fallback preparation time for the type.
func (t ItemType) DefaultPrepMinutes() int {
	if t == ItemTypeDrink {
		return DefaultDrinkPrepMinutes
	}
	return DefaultFoodPrepMinutes
}

// BusinessUnit is one restaurant location. Its code is the prefix of every
// order number the unit issues.
type BusinessUnit struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Code      string    `json:"code" gorm:"size:16;uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	IsActive  bool      `json:"isActive" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// MenuItem is a catalog entry. This service only ever reads it; catalog CRUD
// lives elsewhere.
type MenuItem struct {
	ID             uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	BusinessUnitID uint64          `json:"businessUnitId" gorm:"not null;index"`
	Name           string          `json:"name" gorm:"size:100;not null"`
	Price          decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Type           ItemType        `json:"type" gorm:"type:varchar(10);not null"`
	PrepTime       *int            `json:"prepTime,omitempty"`
	IsAvailable    bool            `json:"isAvailable" gorm:"not null;default:true"`
	CreatedAt      time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}
