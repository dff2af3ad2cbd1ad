package repository

import (
	"context"

	"github.com/ferhhaann/manzil-hotel-dashboard/internal/models"
	"gorm.io/gorm"
)

type CheckoutRepository interface {
	Create(ctx context.Context, tx *gorm.DB, record *models.CheckoutRecord) error
	FindAll(ctx context.Context) ([]models.CheckoutRecord, error)
}

type checkoutRepository struct {
	db *gorm.DB
}

func NewCheckoutRepository(db *gorm.DB) CheckoutRepository {
	return &checkoutRepository{db: db}
}

func (r *checkoutRepository) Create(ctx context.Context, tx *gorm.DB, record *models.CheckoutRecord) error {
	return tx.WithContext(ctx).Create(record).Error
}

func (r *checkoutRepository) FindAll(ctx context.Context) ([]models.CheckoutRecord, error) {
	var records []models.CheckoutRecord
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
