package mysql

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"pos-service/internal/domain"
	"pos-service/internal/repository"
)

type menuRepo struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) repository.MenuRepository {
	return &menuRepo{db: db}
}

func (r *menuRepo) FindBusinessUnit(ctx context.Context, id uint64) (*domain.BusinessUnit, error) {
	var u domain.BusinessUnit
	err := r.db.WithContext(ctx).First(&u, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("FindBusinessUnit error: %v", err)
		return nil, err
	}
	return &u, nil
}

func (r *menuRepo) FindAvailableByIDs(ctx context.Context, businessUnitID uint64, ids []uint64) ([]domain.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []domain.MenuItem
	err := r.db.WithContext(ctx).
		Where("business_unit_id = ? AND id IN ? AND is_available = ?", businessUnitID, ids, true).
		Find(&out).Error
	if err != nil {
		log.Printf("FindAvailableByIDs error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *menuRepo) ListAvailable(ctx context.Context, businessUnitID uint64) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	err := r.db.WithContext(ctx).
		Where("business_unit_id = ? AND is_available = ?", businessUnitID, true).
		Find(&out).Error
	if err != nil {
		log.Printf("ListAvailable error: %v", err)
		return nil, err
	}
	return out, nil
}
