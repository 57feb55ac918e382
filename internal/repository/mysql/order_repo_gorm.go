package mysql

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"pos-service/internal/domain"
	"pos-service/internal/repository"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) CreateWithItems(ctx context.Context, order *domain.Order) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Items are written through the association in the same insert.
		return tx.Create(order).Error
	})
	if err != nil {
		// The only unique index on orders is order_number, so a
		// translated duplicate-key error can only mean a number race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrOrderNumberConflict
		}
		log.Printf("CreateWithItems error: %v", err)
		return err
	}
	return nil
}

func (r *orderRepo) FindByID(ctx context.Context, businessUnitID, orderID uint64) (*domain.Order, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ? AND business_unit_id = ?", orderID, businessUnitID).
		First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("FindByID error: %v", err)
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindByTable(ctx context.Context, businessUnitID, tableID uint64) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("business_unit_id = ? AND table_id = ?", businessUnitID, tableID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		log.Printf("FindByTable error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) LatestOrderNumber(ctx context.Context, businessUnitID uint64, prefix string) (string, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).
		Select("order_number").
		Where("business_unit_id = ? AND order_number LIKE ?", businessUnitID, prefix+"%").
		Order("created_at DESC").
		First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		log.Printf("LatestOrderNumber error: %v", err)
		return "", err
	}
	return o.OrderNumber, nil
}

func (r *orderRepo) ReplaceItems(ctx context.Context, orderID uint64, items []domain.OrderItem, total, final decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", orderID).Delete(&domain.OrderItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = orderID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		return tx.Model(&domain.Order{}).Where("id = ?", orderID).Updates(map[string]any{
			"total_amount": total,
			"final_amount": final,
			"updated_at":   time.Now(),
		}).Error
	})
}

func (r *orderRepo) HasRoutingRecords(ctx context.Context, orderID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.KitchenOrder{}).
		Where("order_id = ?", orderID).Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}
	err = r.db.WithContext(ctx).Model(&domain.BarOrder{}).
		Where("order_id = ?", orderID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *orderRepo) Route(ctx context.Context, order *domain.Order, kitchen *domain.KitchenOrder, bar *domain.BarOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if kitchen != nil {
			if err := tx.Create(kitchen).Error; err != nil {
				return err
			}
		}
		if bar != nil {
			if err := tx.Create(bar).Error; err != nil {
				return err
			}
		}
		err := tx.Model(&domain.Order{}).Where("id = ?", order.ID).Updates(map[string]any{
			"status":     domain.OrderStatusConfirmed,
			"updated_at": time.Now(),
		}).Error
		if err != nil {
			return err
		}
		err = tx.Model(&domain.OrderItem{}).Where("order_id = ?", order.ID).
			Update("status", domain.ItemStatusConfirmed).Error
		if err != nil {
			return err
		}
		return tx.Model(&domain.Table{}).Where("id = ?", order.TableID).
			Update("status", domain.TableStatusOccupied).Error
	})
}

func (r *orderRepo) Cancel(ctx context.Context, orderID uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&domain.Order{}).Where("id = ?", orderID).Updates(map[string]any{
			"status":     domain.OrderStatusCancelled,
			"updated_at": time.Now(),
		}).Error
		if err != nil {
			return err
		}
		err = tx.Model(&domain.KitchenOrder{}).Where("order_id = ?", orderID).
			Update("status", string(domain.OrderStatusCancelled)).Error
		if err != nil {
			return err
		}
		return tx.Model(&domain.BarOrder{}).Where("order_id = ?", orderID).
			Update("status", string(domain.OrderStatusCancelled)).Error
	})
}
