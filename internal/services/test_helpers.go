package services

import (
	"github.com/shopspring/decimal"

	"pos-service/internal/domain"
)

func CreateMockBusinessUnit(id uint64, code string) *domain.BusinessUnit {
	return &domain.BusinessUnit{
		ID:       id,
		Code:     code,
		Name:     "Test Restaurant",
		IsActive: true,
	}
}

func CreateMockTable(id, businessUnitID uint64, number int, active bool) *domain.Table {
	return &domain.Table{
		ID:             id,
		BusinessUnitID: businessUnitID,
		Number:         number,
		Capacity:       4,
		Status:         domain.TableStatusAvailable,
		IsActive:       active,
	}
}

func CreateMockMenuItem(id, businessUnitID uint64, name string, price float64, itemType domain.ItemType, prepTime *int) domain.MenuItem {
	return domain.MenuItem{
		ID:             id,
		BusinessUnitID: businessUnitID,
		Name:           name,
		Price:          decimal.NewFromFloat(price),
		Type:           itemType,
		PrepTime:       prepTime,
		IsAvailable:    true,
	}
}

func IntPtr(v int) *int {
	return &v
}

const (
	TestBusinessUnitID = uint64(1)
	TestBusinessCode   = "REST01"
	TestTableID        = uint64(5)
	TestTableNumber    = 5
	TestWaiterID       = uint64(7)
	TestWaiterName     = "Alice"
)
