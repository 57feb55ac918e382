package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pos-service/internal/domain"
	"pos-service/internal/mocks"
)

type serviceMocks struct {
	orders *mocks.MockOrderRepository
	tables *mocks.MockTableRepository
	menu   *mocks.MockMenuRepository
	pub    *mocks.MockPublisher
}

func newServiceWithMocks() (*OrderService, *serviceMocks) {
	m := &serviceMocks{
		orders: new(mocks.MockOrderRepository),
		tables: new(mocks.MockTableRepository),
		menu:   new(mocks.MockMenuRepository),
		pub:    new(mocks.MockPublisher),
	}
	m.pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	return NewOrderService(m.orders, m.tables, m.menu, m.pub), m
}

func standardCatalog() []domain.MenuItem {
	return []domain.MenuItem{
		CreateMockMenuItem(1, TestBusinessUnitID, "Steak", 100, domain.ItemTypeFood, IntPtr(10)),
		CreateMockMenuItem(2, TestBusinessUnitID, "Lemonade", 50, domain.ItemTypeDrink, IntPtr(3)),
	}
}

func createInput(isDraft bool) CreateOrderInput {
	return CreateOrderInput{
		BusinessUnitID: TestBusinessUnitID,
		TableID:        TestTableID,
		WaiterID:       TestWaiterID,
		WaiterName:     TestWaiterName,
		Items: []OrderItemInput{
			{MenuItemID: 1, Quantity: 2},
			{MenuItemID: 2, Quantity: 1},
		},
		CustomerCount: 2,
		IsDraft:       isDraft,
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	tests := []struct {
		name          string
		input         CreateOrderInput
		setupMocks    func(m *serviceMocks)
		expectedError error
		check         func(t *testing.T, view *domain.OrderView, m *serviceMocks)
	}{
		{
			name:  "draft order is persisted but not routed",
			input: createInput(true),
			setupMocks: func(m *serviceMocks) {
				m.menu.On("FindBusinessUnit", mock.Anything, TestBusinessUnitID).Return(CreateMockBusinessUnit(TestBusinessUnitID, TestBusinessCode), nil)
				m.tables.On("FindByID", mock.Anything, TestBusinessUnitID, TestTableID).Return(CreateMockTable(TestTableID, TestBusinessUnitID, TestTableNumber, true), nil)
				m.menu.On("FindAvailableByIDs", mock.Anything, TestBusinessUnitID, mock.Anything).Return(standardCatalog(), nil)
				m.orders.On("LatestOrderNumber", mock.Anything, TestBusinessUnitID, "REST01-").Return("", nil)
				m.orders.On("CreateWithItems", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil).Run(func(args mock.Arguments) {
					args.Get(1).(*domain.Order).ID = 1
				})
			},
			check: func(t *testing.T, view *domain.OrderView, m *serviceMocks) {
				assert.Equal(t, "REST01-10001", view.OrderNumber)
				assert.Equal(t, domain.OrderStatusPending, view.Status)
				assert.Equal(t, 250.0, view.TotalAmount)
				assert.Equal(t, 250.0, view.FinalAmount)
				assert.Equal(t, 0.0, view.DiscountAmount)
				assert.Len(t, view.Items, 2)
				assert.Equal(t, domain.ItemStatusPending, view.Items[0].Status)
				m.orders.AssertNotCalled(t, "Route", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			},
		},
		{
			name:  "immediate order routes to kitchen and bar and occupies the table",
			input: createInput(false),
			setupMocks: func(m *serviceMocks) {
				m.menu.On("FindBusinessUnit", mock.Anything, TestBusinessUnitID).Return(CreateMockBusinessUnit(TestBusinessUnitID, TestBusinessCode), nil)
				m.tables.On("FindByID", mock.Anything, TestBusinessUnitID, TestTableID).Return(CreateMockTable(TestTableID, TestBusinessUnitID, TestTableNumber, true), nil)
				m.menu.On("FindAvailableByIDs", mock.Anything, TestBusinessUnitID, mock.Anything).Return(standardCatalog(), nil)
				m.orders.On("LatestOrderNumber", mock.Anything, TestBusinessUnitID, "REST01-").Return("", nil)
				m.orders.On("CreateWithItems", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil).Run(func(args mock.Arguments) {
					args.Get(1).(*domain.Order).ID = 1
				})
				m.orders.On("HasRoutingRecords", mock.Anything, uint64(1)).Return(false, nil)
				m.orders.On("Route", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
			},
			check: func(t *testing.T, view *domain.OrderView, m *serviceMocks) {
				assert.Equal(t, domain.OrderStatusConfirmed, view.Status)
				assert.Equal(t, 250.0, view.TotalAmount)

				routeCall := findCall(t, m.orders, "Route")
				kitchen := routeCall.Arguments.Get(2).(*domain.KitchenOrder)
				bar := routeCall.Arguments.Get(3).(*domain.BarOrder)
				assert.NotNil(t, kitchen)
				assert.NotNil(t, bar)
				assert.Equal(t, 10, kitchen.EstimatedTime)
				assert.Equal(t, 3, bar.EstimatedTime)
				assert.Equal(t, TestTableNumber, kitchen.TableNumber)
				assert.Equal(t, "REST01-10001", kitchen.OrderNumber)
				assert.Len(t, kitchen.Items, 1)
				assert.Equal(t, 2, kitchen.Items[0].Quantity)
				assert.Len(t, bar.Items, 1)
			},
		},
		{
			name: "no items",
			input: CreateOrderInput{
				BusinessUnitID: TestBusinessUnitID,
				TableID:        TestTableID,
				WaiterID:       TestWaiterID,
			},
			setupMocks:    func(m *serviceMocks) {},
			expectedError: domain.ErrNoItems,
		},
		{
			name:  "business unit missing",
			input: createInput(true),
			setupMocks: func(m *serviceMocks) {
				m.menu.On("FindBusinessUnit", mock.Anything, TestBusinessUnitID).Return(nil, nil)
			},
			expectedError: domain.ErrBusinessUnitNotFound,
		},
		{
			name:  "table missing",
			input: createInput(true),
			setupMocks: func(m *serviceMocks) {
				m.menu.On("FindBusinessUnit", mock.Anything, TestBusinessUnitID).Return(CreateMockBusinessUnit(TestBusinessUnitID, TestBusinessCode), nil)
				m.tables.On("FindByID", mock.Anything, TestBusinessUnitID, TestTableID).Return(nil, nil)
			},
			expectedError: domain.ErrTableNotFound,
		},
		{
			name:  "table inactive",
			input: createInput(true),
			setupMocks: func(m *serviceMocks) {
				m.menu.On("FindBusinessUnit", mock.Anything, TestBusinessUnitID).Return(CreateMockBusinessUnit(TestBusinessUnitID, TestBusinessCode), nil)
				m.tables.On("FindByID", mock.Anything, TestBusinessUnitID, TestTableID).Return(CreateMockTable(TestTableID, TestBusinessUnitID, TestTableNumber, false), nil)
			},
			expectedError: domain.ErrTableNotFound,
		},
		{
			name:  "one unavailable menu item fails the whole order",
			input: createInput(true),
			setupMocks: func(m *serviceMocks) {
				m.menu.On("FindBusinessUnit", mock.Anything, TestBusinessUnitID).Return(CreateMockBusinessUnit(TestBusinessUnitID, TestBusinessCode), nil)
				m.tables.On("FindByID", mock.Anything, TestBusinessUnitID, TestTableID).Return(CreateMockTable(TestTableID, TestBusinessUnitID, TestTableNumber, true), nil)
				// Item 2 is absent: unavailable or deleted.
				m.menu.On("FindAvailableByIDs", mock.Anything, TestBusinessUnitID, mock.Anything).Return(standardCatalog()[:1], nil)
			},
			expectedError: domain.ErrMenuItemUnavailable,
			check: func(t *testing.T, view *domain.OrderView, m *serviceMocks) {
				m.orders.AssertNotCalled(t, "CreateWithItems", mock.Anything, mock.Anything)
			},
		},
		{
			name: "zero quantity",
			input: CreateOrderInput{
				BusinessUnitID: TestBusinessUnitID,
				TableID:        TestTableID,
				WaiterID:       TestWaiterID,
				Items:          []OrderItemInput{{MenuItemID: 1, Quantity: 0}},
			},
			setupMocks: func(m *serviceMocks) {
				m.menu.On("FindBusinessUnit", mock.Anything, TestBusinessUnitID).Return(CreateMockBusinessUnit(TestBusinessUnitID, TestBusinessCode), nil)
				m.tables.On("FindByID", mock.Anything, TestBusinessUnitID, TestTableID).Return(CreateMockTable(TestTableID, TestBusinessUnitID, TestTableNumber, true), nil)
			},
			expectedError: domain.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newServiceWithMocks()
			tt.setupMocks(m)

			view, err := s.CreateOrder(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, view)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, view)
			}
			if tt.check != nil {
				tt.check(t, view, m)
			}
		})
	}
}

// findCall returns the recorded call with the given method name.
func findCall(t *testing.T, m *mocks.MockOrderRepository, method string) *mock.Call {
	t.Helper()
	for i := range m.Calls {
		if m.Calls[i].Method == method {
			return &m.Calls[i]
		}
	}
	t.Fatalf("expected a %s call", method)
	return nil
}

func TestOrderService_CreateOrder_RetriesOnNumberConflict(t *testing.T) {
	s, m := newServiceWithMocks()

	m.menu.On("FindBusinessUnit", mock.Anything, TestBusinessUnitID).Return(CreateMockBusinessUnit(TestBusinessUnitID, TestBusinessCode), nil)
	m.tables.On("FindByID", mock.Anything, TestBusinessUnitID, TestTableID).Return(CreateMockTable(TestTableID, TestBusinessUnitID, TestTableNumber, true), nil)
	m.menu.On("FindAvailableByIDs", mock.Anything, TestBusinessUnitID, mock.Anything).Return(standardCatalog(), nil)

	// Each attempt re-reads the latest committed number.
	m.orders.On("LatestOrderNumber", mock.Anything, TestBusinessUnitID, "REST01-").Return("", nil).Once()
	m.orders.On("LatestOrderNumber", mock.Anything, TestBusinessUnitID, "REST01-").Return("REST01-10001", nil).Once()
	m.orders.On("LatestOrderNumber", mock.Anything, TestBusinessUnitID, "REST01-").Return("REST01-10002", nil).Once()

	m.orders.On("CreateWithItems", mock.Anything, mock.Anything).Return(domain.ErrOrderNumberConflict).Twice()
	m.orders.On("CreateWithItems", mock.Anything, mock.Anything).Return(nil).Once().Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Order).ID = 3
	})

	view, err := s.CreateOrder(context.Background(), createInput(true))

	assert.NoError(t, err)
	assert.Equal(t, "REST01-10003", view.OrderNumber)
	m.orders.AssertNumberOfCalls(t, "CreateWithItems", 3)
}

func TestOrderService_CreateOrder_NumberExhausted(t *testing.T) {
	s, m := newServiceWithMocks()

	m.menu.On("FindBusinessUnit", mock.Anything, TestBusinessUnitID).Return(CreateMockBusinessUnit(TestBusinessUnitID, TestBusinessCode), nil)
	m.tables.On("FindByID", mock.Anything, TestBusinessUnitID, TestTableID).Return(CreateMockTable(TestTableID, TestBusinessUnitID, TestTableNumber, true), nil)
	m.menu.On("FindAvailableByIDs", mock.Anything, TestBusinessUnitID, mock.Anything).Return(standardCatalog(), nil)
	m.orders.On("LatestOrderNumber", mock.Anything, TestBusinessUnitID, "REST01-").Return("", nil)
	m.orders.On("CreateWithItems", mock.Anything, mock.Anything).Return(domain.ErrOrderNumberConflict)

	view, err := s.CreateOrder(context.Background(), createInput(true))

	assert.ErrorIs(t, err, domain.ErrOrderNumberExhausted)
	assert.Nil(t, view)
	m.orders.AssertNumberOfCalls(t, "CreateWithItems", 3)
}

func TestOrderService_CreateOrder_OtherErrorNotRetried(t *testing.T) {
	s, m := newServiceWithMocks()

	dbErr := errors.New("connection reset")
	m.menu.On("FindBusinessUnit", mock.Anything, TestBusinessUnitID).Return(CreateMockBusinessUnit(TestBusinessUnitID, TestBusinessCode), nil)
	m.tables.On("FindByID", mock.Anything, TestBusinessUnitID, TestTableID).Return(CreateMockTable(TestTableID, TestBusinessUnitID, TestTableNumber, true), nil)
	m.menu.On("FindAvailableByIDs", mock.Anything, TestBusinessUnitID, mock.Anything).Return(standardCatalog(), nil)
	m.orders.On("LatestOrderNumber", mock.Anything, TestBusinessUnitID, "REST01-").Return("", nil)
	m.orders.On("CreateWithItems", mock.Anything, mock.Anything).Return(dbErr)

	_, err := s.CreateOrder(context.Background(), createInput(true))

	assert.ErrorIs(t, err, dbErr)
	m.orders.AssertNumberOfCalls(t, "CreateWithItems", 1)
}
