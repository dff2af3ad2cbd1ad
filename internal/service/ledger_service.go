package service

import (
	"context"
	"time"

	"github.com/ferhhaann/manzil-hotel-dashboard/internal/models"
	"github.com/ferhhaann/manzil-hotel-dashboard/internal/repository"
)

type LedgerService interface {
	ListSales(ctx context.Context, month, year int, status *models.PaymentStatus) ([]models.Sale, error)
	AddExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error)
	ListExpenses(ctx context.Context, category string) ([]models.Expense, error)
}

type ledgerService struct {
	ledgerRepo repository.LedgerRepository
}

func NewLedgerService(ledgerRepo repository.LedgerRepository) LedgerService {
	return &ledgerService{ledgerRepo: ledgerRepo}
}

func (s *ledgerService) ListSales(ctx context.Context, month, year int, status *models.PaymentStatus) ([]models.Sale, error) {
	return s.ledgerRepo.FindSales(ctx, month, year, status)
}

func (s *ledgerService) AddExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	if expense.Category == "" {
		return nil, &ValidationError{Field: "category", Reason: "is required"}
	}
	if expense.Description == "" {
		return nil, &ValidationError{Field: "description", Reason: "is required"}
	}
	if expense.Amount <= 0 {
		return nil, &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if expense.Date.IsZero() {
		expense.Date = time.Now()
	}

	if err := s.ledgerRepo.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *ledgerService) ListExpenses(ctx context.Context, category string) ([]models.Expense, error) {
	return s.ledgerRepo.FindExpenses(ctx, category)
}
