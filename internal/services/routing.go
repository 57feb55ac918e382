package services

import (
	"context"

	"pos-service/internal/domain"
)

// routeOrder fans the order's items out to at most two queues: FOOD lines
// become one KitchenOrder, DRINK lines one BarOrder, each carrying a
// denormalized snapshot for the downstream display. The order is confirmed
// and the table occupied in the same transaction. An order that already has
// routing records is not fanned out again.
func (s *OrderService) routeOrder(ctx context.Context, order *domain.Order, table *domain.Table) error {
	routed, err := s.orders.HasRoutingRecords(ctx, order.ID)
	if err != nil {
		return err
	}
	if routed {
		// Still converge the order/table state, without new records.
		if err := s.orders.Route(ctx, order, nil, nil); err != nil {
			return err
		}
		order.Status = domain.OrderStatusConfirmed
		return nil
	}

	var food, drink []domain.OrderItem
	for _, it := range order.Items {
		if it.ItemType == domain.ItemTypeDrink {
			drink = append(drink, it)
		} else {
			food = append(food, it)
		}
	}

	var kitchen *domain.KitchenOrder
	if len(food) > 0 {
		kitchen = &domain.KitchenOrder{
			OrderID:       order.ID,
			OrderNumber:   order.OrderNumber,
			TableNumber:   table.Number,
			WaiterName:    order.WaiterName,
			Status:        string(domain.ItemStatusPending),
			EstimatedTime: estimatedMinutes(food),
			Items:         kitchenLines(food),
		}
	}

	var bar *domain.BarOrder
	if len(drink) > 0 {
		bar = &domain.BarOrder{
			OrderID:       order.ID,
			OrderNumber:   order.OrderNumber,
			TableNumber:   table.Number,
			WaiterName:    order.WaiterName,
			Status:        string(domain.ItemStatusPending),
			EstimatedTime: estimatedMinutes(drink),
			Items:         barLines(drink),
		}
	}

	if err := s.orders.Route(ctx, order, kitchen, bar); err != nil {
		return err
	}
	order.Status = domain.OrderStatusConfirmed
	for i := range order.Items {
		order.Items[i].Status = domain.ItemStatusConfirmed
	}

	go s.publishOrderRouted(context.Background(), order, table.Number, kitchen, bar)

	return nil
}

// estimatedMinutes is the longest prep time in the subset; lines without a
// recorded prep time fall back to the per-type default.
func estimatedMinutes(items []domain.OrderItem) int {
	max := 0
	for _, it := range items {
		minutes := it.ItemType.DefaultPrepMinutes()
		if it.PrepTime != nil {
			minutes = *it.PrepTime
		}
		if minutes > max {
			max = minutes
		}
	}
	return max
}

func kitchenLines(items []domain.OrderItem) []domain.KitchenOrderItem {
	out := make([]domain.KitchenOrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, domain.KitchenOrderItem{
			Name:     it.MenuItemName,
			Quantity: it.Quantity,
			Notes:    it.Notes,
		})
	}
	return out
}

func barLines(items []domain.OrderItem) []domain.BarOrderItem {
	out := make([]domain.BarOrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, domain.BarOrderItem{
			Name:     it.MenuItemName,
			Quantity: it.Quantity,
			Notes:    it.Notes,
		})
	}
	return out
}
