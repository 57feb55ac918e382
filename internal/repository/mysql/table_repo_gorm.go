package mysql

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"pos-service/internal/domain"
	"pos-service/internal/repository"
)

type tableRepo struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) repository.TableRepository {
	return &tableRepo{db: db}
}

func (r *tableRepo) FindByID(ctx context.Context, businessUnitID, tableID uint64) (*domain.Table, error) {
	var t domain.Table
	err := r.db.WithContext(ctx).
		Where("id = ? AND business_unit_id = ?", tableID, businessUnitID).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("table FindByID error: %v", err)
		return nil, err
	}
	return &t, nil
}

func (r *tableRepo) UpdateStatus(ctx context.Context, businessUnitID, tableID uint64, status domain.TableStatus) error {
	err := r.db.WithContext(ctx).Model(&domain.Table{}).
		Where("id = ? AND business_unit_id = ?", tableID, businessUnitID).
		Update("status", status).Error
	if err != nil {
		log.Printf("table UpdateStatus error: %v", err)
	}
	return err
}
