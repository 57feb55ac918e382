package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"

	"pos-service/internal/domain"
	rabbit "pos-service/internal/infra/rabbitmq"
	"pos-service/internal/repository"
)

// OrderService is the order lifecycle core: it allocates order numbers,
// creates and mutates orders, and fans confirmed orders out to the kitchen
// and bar queues. Tables and the menu catalog are collaborators it reads but
// does not own.
type OrderService struct {
	orders      repository.OrderRepository
	tables      repository.TableRepository
	menu        repository.MenuRepository
	publisher   rabbit.PublisherInterface
	redisClient *redis.Client
}

func NewOrderService(orders repository.OrderRepository, tables repository.TableRepository, menu repository.MenuRepository, pub rabbit.PublisherInterface) *OrderService {
	return &OrderService{
		orders:    orders,
		tables:    tables,
		menu:      menu,
		publisher: pub,
	}
}

func (s *OrderService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// OrderItemInput is one requested line. Prices are never taken from the
// caller; they are snapshotted from the catalog at write time.
type OrderItemInput struct {
	MenuItemID uint64
	Quantity   int
	Notes      string
}

type CreateOrderInput struct {
	BusinessUnitID uint64
	TableID        uint64
	WaiterID       uint64
	WaiterName     string
	Items          []OrderItemInput
	CustomerID     *uint64
	IsWalkIn       bool
	WalkInName     *string
	CustomerCount  int
	Notes          string
	IsDraft        bool
}

type UpdateOrderInput struct {
	BusinessUnitID uint64
	OrderID        uint64
	WaiterID       uint64
	Items          []OrderItemInput
}

// CreateOrder validates the table and every menu item, snapshots prices,
// persists the order and its items in one transaction, and, unless the order
// is a draft, immediately routes it to kitchen/bar and occupies the table.
// Order-number collisions with concurrent creations are retried with a fresh
// number up to the attempt budget.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*domain.OrderView, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrNoItems
	}

	unit, err := s.menu.FindBusinessUnit(ctx, in.BusinessUnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrBusinessUnitNotFound
	}

	table, err := s.tables.FindByID(ctx, in.BusinessUnitID, in.TableID)
	if err != nil {
		return nil, err
	}
	if table == nil || !table.IsActive {
		return nil, domain.ErrTableNotFound
	}

	itemStatus := domain.ItemStatusConfirmed
	orderStatus := domain.OrderStatusConfirmed
	if in.IsDraft {
		itemStatus = domain.ItemStatusPending
		orderStatus = domain.OrderStatusPending
	}

	items, total, err := s.buildOrderItems(ctx, in.BusinessUnitID, in.Items, itemStatus)
	if err != nil {
		return nil, err
	}

	customerCount := in.CustomerCount
	if customerCount <= 0 {
		customerCount = 1
	}

	order := &domain.Order{
		BusinessUnitID: in.BusinessUnitID,
		TableID:        in.TableID,
		WaiterID:       in.WaiterID,
		WaiterName:     in.WaiterName,
		Status:         orderStatus,
		TotalAmount:    total,
		DiscountAmount: decimal.Zero,
		FinalAmount:    total,
		CustomerID:     in.CustomerID,
		IsWalkIn:       in.IsWalkIn,
		WalkInName:     in.WalkInName,
		CustomerCount:  customerCount,
		Notes:          in.Notes,
		Items:          items,
	}

	if err := s.createWithUniqueNumber(ctx, unit, order); err != nil {
		return nil, err
	}

	if !in.IsDraft {
		if err := s.routeOrder(ctx, order, table); err != nil {
			return nil, err
		}
	}

	go s.publishOrderCreated(context.Background(), order)

	return domain.NewOrderView(order), nil
}

// buildOrderItems resolves every requested line against the catalog and
// snapshots name, type, prep time and price. One invalid line fails the
// whole set.
func (s *OrderService) buildOrderItems(ctx context.Context, businessUnitID uint64, inputs []OrderItemInput, status domain.OrderItemStatus) ([]domain.OrderItem, decimal.Decimal, error) {
	ids := make([]uint64, 0, len(inputs))
	seen := make(map[uint64]bool, len(inputs))
	for _, in := range inputs {
		if in.Quantity <= 0 {
			return nil, decimal.Zero, fmt.Errorf("%w: menu item %d", domain.ErrInvalidQuantity, in.MenuItemID)
		}
		if !seen[in.MenuItemID] {
			seen[in.MenuItemID] = true
			ids = append(ids, in.MenuItemID)
		}
	}

	menuItems, err := s.availableMenuItems(ctx, businessUnitID, ids)
	if err != nil {
		return nil, decimal.Zero, err
	}
	byID := make(map[uint64]domain.MenuItem, len(menuItems))
	for _, mi := range menuItems {
		byID[mi.ID] = mi
	}

	items := make([]domain.OrderItem, 0, len(inputs))
	total := decimal.Zero
	for _, in := range inputs {
		mi, ok := byID[in.MenuItemID]
		if !ok {
			return nil, decimal.Zero, fmt.Errorf("%w: menu item %d", domain.ErrMenuItemUnavailable, in.MenuItemID)
		}
		lineTotal := mi.Price.Mul(decimal.NewFromInt(int64(in.Quantity)))
		items = append(items, domain.OrderItem{
			MenuItemID:   mi.ID,
			MenuItemName: mi.Name,
			ItemType:     mi.Type,
			PrepTime:     mi.PrepTime,
			Quantity:     in.Quantity,
			UnitPrice:    mi.Price,
			TotalPrice:   lineTotal,
			Status:       status,
			Notes:        in.Notes,
		})
		total = total.Add(lineTotal)
	}
	return items, total, nil
}

// UpdateOrder replaces a draft order's items wholesale and recomputes totals
// at current catalog prices. Anything other than a PENDING order owned by
// the requesting waiter in the requesting unit fails closed.
func (s *OrderService) UpdateOrder(ctx context.Context, in UpdateOrderInput) (*domain.OrderView, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrNoItems
	}

	order, err := s.orders.FindByID(ctx, in.BusinessUnitID, in.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.WaiterID != in.WaiterID || !order.Status.CanModify() {
		return nil, domain.ErrOrderNotModifiable
	}

	items, total, err := s.buildOrderItems(ctx, in.BusinessUnitID, in.Items, domain.ItemStatusPending)
	if err != nil {
		return nil, err
	}
	final := total.Sub(order.DiscountAmount)

	if err := s.orders.ReplaceItems(ctx, order.ID, items, total, final); err != nil {
		return nil, err
	}

	order.Items = items
	order.TotalAmount = total
	order.FinalAmount = final
	return domain.NewOrderView(order), nil
}

// SendOrderToKitchenAndBar routes a draft order's items to the kitchen and
// bar queues. Re-sending an already routed order is a no-op.
func (s *OrderService) SendOrderToKitchenAndBar(ctx context.Context, businessUnitID, orderID uint64) (*domain.OrderView, error) {
	order, err := s.orders.FindByID(ctx, businessUnitID, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	if !order.Status.CanRoute() {
		return nil, domain.ErrOrderNotRoutable
	}

	table, err := s.tables.FindByID(ctx, businessUnitID, order.TableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, domain.ErrTableNotFound
	}

	if err := s.routeOrder(ctx, order, table); err != nil {
		return nil, err
	}
	return domain.NewOrderView(order), nil
}

// CancelOrder terminates an order that the kitchen has not started on yet.
// Routing records created earlier are retracted in the same transaction.
func (s *OrderService) CancelOrder(ctx context.Context, businessUnitID, orderID uint64) (*domain.OrderView, error) {
	order, err := s.orders.FindByID(ctx, businessUnitID, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	if !order.Status.CanCancel() {
		return nil, domain.ErrOrderNotCancellable
	}

	if err := s.orders.Cancel(ctx, order.ID); err != nil {
		return nil, err
	}
	order.Status = domain.OrderStatusCancelled

	go s.publishOrderCancelled(context.Background(), order)

	return domain.NewOrderView(order), nil
}

func (s *OrderService) GetOrder(ctx context.Context, businessUnitID, orderID uint64) (*domain.OrderView, error) {
	order, err := s.orders.FindByID(ctx, businessUnitID, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	return domain.NewOrderView(order), nil
}

// GetOrdersByTable lists a table's orders, newest first, for the table
// display collaborators.
func (s *OrderService) GetOrdersByTable(ctx context.Context, businessUnitID, tableID uint64) ([]*domain.OrderView, error) {
	orders, err := s.orders.FindByTable(ctx, businessUnitID, tableID)
	if err != nil {
		return nil, err
	}
	views := make([]*domain.OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, domain.NewOrderView(&orders[i]))
	}
	return views, nil
}

// IsValidationError reports whether err is one of the descriptive,
// never-retried validation failures.
func IsValidationError(err error) bool {
	for _, target := range []error{
		domain.ErrBusinessUnitNotFound,
		domain.ErrTableNotFound,
		domain.ErrNoItems,
		domain.ErrInvalidQuantity,
		domain.ErrMenuItemUnavailable,
		domain.ErrOrderNotFound,
		domain.ErrOrderNotModifiable,
		domain.ErrOrderNotCancellable,
		domain.ErrOrderNotRoutable,
		domain.ErrOrderNumberExhausted,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
