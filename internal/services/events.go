package services

import (
	"context"
	"log"
	"time"

	"pos-service/internal/domain"
)

// Event publishing is fire-and-forget after the database commit: a broker
// outage must not fail an order that is already persisted.

func (s *OrderService) publishOrderCreated(ctx context.Context, order *domain.Order) {
	evt := domain.OrderCreatedEvent{
		OrderID:        order.ID,
		OrderNumber:    order.OrderNumber,
		BusinessUnitID: order.BusinessUnitID,
		TableID:        order.TableID,
		Status:         order.Status,
		TotalAmount:    order.TotalAmount.InexactFloat64(),
		CreatedAt:      order.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, "order.created", evt); err != nil {
		log.Printf("Failed to publish order.created for %s: %v", order.OrderNumber, err)
	}
}

func (s *OrderService) publishOrderRouted(ctx context.Context, order *domain.Order, tableNumber int, kitchen *domain.KitchenOrder, bar *domain.BarOrder) {
	if kitchen != nil {
		evt := domain.OrderRoutedEvent{
			OrderID:       order.ID,
			OrderNumber:   order.OrderNumber,
			Queue:         "kitchen",
			TableNumber:   tableNumber,
			ItemCount:     len(kitchen.Items),
			EstimatedTime: kitchen.EstimatedTime,
		}
		if err := s.publisher.Publish(ctx, "order.routed.kitchen", evt); err != nil {
			log.Printf("Failed to publish order.routed.kitchen for %s: %v", order.OrderNumber, err)
		}
	}
	if bar != nil {
		evt := domain.OrderRoutedEvent{
			OrderID:       order.ID,
			OrderNumber:   order.OrderNumber,
			Queue:         "bar",
			TableNumber:   tableNumber,
			ItemCount:     len(bar.Items),
			EstimatedTime: bar.EstimatedTime,
		}
		if err := s.publisher.Publish(ctx, "order.routed.bar", evt); err != nil {
			log.Printf("Failed to publish order.routed.bar for %s: %v", order.OrderNumber, err)
		}
	}
}

func (s *OrderService) publishOrderCancelled(ctx context.Context, order *domain.Order) {
	evt := domain.OrderCancelledEvent{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		CancelledAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, "order.cancelled", evt); err != nil {
		log.Printf("Failed to publish order.cancelled for %s: %v", order.OrderNumber, err)
	}
}
