package mocks

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"pos-service/internal/domain"
	"pos-service/internal/infra/rabbitmq"
	"pos-service/internal/repository"
)

var (
	_ repository.OrderRepository  = (*MockOrderRepository)(nil)
	_ repository.TableRepository  = (*MockTableRepository)(nil)
	_ repository.MenuRepository   = (*MockMenuRepository)(nil)
	_ rabbitmq.PublisherInterface = (*MockPublisher)(nil)
)

type MockOrderRepository struct {
	mock.Mock
}

type MockTableRepository struct {
	mock.Mock
}

type MockMenuRepository struct {
	mock.Mock
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}

func (m *MockOrderRepository) CreateWithItems(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, businessUnitID, orderID uint64) (*domain.Order, error) {
	args := m.Called(ctx, businessUnitID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByTable(ctx context.Context, businessUnitID, tableID uint64) ([]domain.Order, error) {
	args := m.Called(ctx, businessUnitID, tableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) LatestOrderNumber(ctx context.Context, businessUnitID uint64, prefix string) (string, error) {
	args := m.Called(ctx, businessUnitID, prefix)
	return args.String(0), args.Error(1)
}

func (m *MockOrderRepository) ReplaceItems(ctx context.Context, orderID uint64, items []domain.OrderItem, total, final decimal.Decimal) error {
	args := m.Called(ctx, orderID, items, total, final)
	return args.Error(0)
}

func (m *MockOrderRepository) HasRoutingRecords(ctx context.Context, orderID uint64) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Route(ctx context.Context, order *domain.Order, kitchen *domain.KitchenOrder, bar *domain.BarOrder) error {
	args := m.Called(ctx, order, kitchen, bar)
	return args.Error(0)
}

func (m *MockOrderRepository) Cancel(ctx context.Context, orderID uint64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockTableRepository) FindByID(ctx context.Context, businessUnitID, tableID uint64) (*domain.Table, error) {
	args := m.Called(ctx, businessUnitID, tableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Table), args.Error(1)
}

func (m *MockTableRepository) UpdateStatus(ctx context.Context, businessUnitID, tableID uint64, status domain.TableStatus) error {
	args := m.Called(ctx, businessUnitID, tableID, status)
	return args.Error(0)
}

func (m *MockMenuRepository) FindBusinessUnit(ctx context.Context, id uint64) (*domain.BusinessUnit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessUnit), args.Error(1)
}

func (m *MockMenuRepository) FindAvailableByIDs(ctx context.Context, businessUnitID uint64, ids []uint64) ([]domain.MenuItem, error) {
	args := m.Called(ctx, businessUnitID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) ListAvailable(ctx context.Context, businessUnitID uint64) ([]domain.MenuItem, error) {
	args := m.Called(ctx, businessUnitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MenuItem), args.Error(1)
}
