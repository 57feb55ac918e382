package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"pos-service/internal/domain"
)

// OrderRepository owns every row this service mutates. All multi-row writes
// happen inside one transaction so a partially written order is never
// visible.
type OrderRepository interface {
	// CreateWithItems inserts the order and all of its items atomically.
	// A duplicate order number comes back as domain.ErrOrderNumberConflict.
	CreateWithItems(ctx context.Context, order *domain.Order) error

	// FindByID loads an order with its items, scoped to one business unit.
	// Returns (nil, nil) when no such order exists.
	FindByID(ctx context.Context, businessUnitID, orderID uint64) (*domain.Order, error)

	// FindByTable lists a table's orders, newest first.
	FindByTable(ctx context.Context, businessUnitID, tableID uint64) ([]domain.Order, error)

	// LatestOrderNumber returns the most recently created order number for
	// the unit matching the given prefix, or "" when the unit has none.
	LatestOrderNumber(ctx context.Context, businessUnitID uint64, prefix string) (string, error)

	// ReplaceItems deletes the order's items and inserts the new set with
	// the recomputed totals, all in one transaction.
	ReplaceItems(ctx context.Context, orderID uint64, items []domain.OrderItem, total, final decimal.Decimal) error

	// HasRoutingRecords reports whether the order was already fanned out.
	HasRoutingRecords(ctx context.Context, orderID uint64) (bool, error)

	// Route atomically creates the routing records (either may be nil),
	// confirms the order and marks its table occupied.
	Route(ctx context.Context, order *domain.Order, kitchen *domain.KitchenOrder, bar *domain.BarOrder) error

	// Cancel sets the order to CANCELLED and retracts any routing records
	// in the same transaction.
	Cancel(ctx context.Context, orderID uint64) error
}

// TableRepository is the table-registry collaborator. Tables are never
// created or deleted here.
type TableRepository interface {
	// FindByID returns (nil, nil) when the table does not exist in the unit.
	FindByID(ctx context.Context, businessUnitID, tableID uint64) (*domain.Table, error)
	UpdateStatus(ctx context.Context, businessUnitID, tableID uint64, status domain.TableStatus) error
}

// MenuRepository is the read-only catalog collaborator.
type MenuRepository interface {
	// FindBusinessUnit returns (nil, nil) when the unit does not exist.
	FindBusinessUnit(ctx context.Context, id uint64) (*domain.BusinessUnit, error)
	// FindAvailableByIDs returns only items that exist, belong to the unit
	// and are currently available; missing ids are simply absent.
	FindAvailableByIDs(ctx context.Context, businessUnitID uint64, ids []uint64) ([]domain.MenuItem, error)
	ListAvailable(ctx context.Context, businessUnitID uint64) ([]domain.MenuItem, error)
}
