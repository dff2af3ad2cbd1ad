package repository

import (
	"context"

	"github.com/ferhhaann/manzil-hotel-dashboard/internal/models"
	"gorm.io/gorm"
)

type LedgerRepository interface {
	CreateSale(ctx context.Context, tx *gorm.DB, sale *models.Sale) error
	FindSales(ctx context.Context, month, year int, status *models.PaymentStatus) ([]models.Sale, error)
	CreateExpense(ctx context.Context, expense *models.Expense) error
	FindExpenses(ctx context.Context, category string) ([]models.Expense, error)
}

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) CreateSale(ctx context.Context, tx *gorm.DB, sale *models.Sale) error {
	return tx.WithContext(ctx).Create(sale).Error
}

// FindSales filters by calendar month when month/year are non-zero and by
// payment status when one is given.
func (r *ledgerRepository) FindSales(ctx context.Context, month, year int, status *models.PaymentStatus) ([]models.Sale, error) {
	var sales []models.Sale
	q := r.db.WithContext(ctx).Order("date DESC")
	if month > 0 && year > 0 {
		q = q.Where("EXTRACT(MONTH FROM date) = ? AND EXTRACT(YEAR FROM date) = ?", month, year)
	}
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if err := q.Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *ledgerRepository) CreateExpense(ctx context.Context, expense *models.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *ledgerRepository) FindExpenses(ctx context.Context, category string) ([]models.Expense, error) {
	var expenses []models.Expense
	q := r.db.WithContext(ctx).Order("date DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if err := q.Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}
