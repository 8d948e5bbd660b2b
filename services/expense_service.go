package services

import (
	"context"
	"errors"
	"strings"

	"ExpenseAPI/models"
	"ExpenseAPI/repositories"
	"ExpenseAPI/utils"
)

type ExpenseService struct {
	expenses repositories.ExpenseRepository
}

func NewExpenseService(expenses repositories.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenses: expenses}
}

// GetExpenses returns every expense owned by userID.
func (s *ExpenseService) GetExpenses(ctx context.Context, userID string) ([]models.Expense, error) {
	expenses, err := s.expenses.FindByOwner(ctx, userID)
	if err != nil {
		return nil, utils.NewAppError(utils.KindServerError, err, utils.MsgServerError)
	}
	return expenses, nil
}

// GetExpense returns one expense if userID owns it.
func (s *ExpenseService) GetExpense(ctx context.Context, id, userID string) (*models.Expense, error) {
	return s.findOwned(ctx, id, userID)
}

func (s *ExpenseService) CreateExpense(ctx context.Context, input models.ExpenseInput) (*models.Expense, error) {
	expense, err := s.expenses.Create(ctx, &models.Expense{
		Title:    strings.TrimSpace(input.Title),
		Amount:   input.Amount,
		Category: strings.TrimSpace(input.Category),
		Date:     input.Date,
		UserID:   input.UserID,
	})
	if err != nil {
		return nil, utils.NewAppError(utils.KindServerError, err, utils.MsgServerError)
	}
	return expense, nil
}

// UpdateExpense applies the non-empty fields of input. Nothing is written
// unless input.UserID owns the expense.
func (s *ExpenseService) UpdateExpense(ctx context.Context, id string, input models.ExpenseUpdate) (*models.Expense, error) {
	expense, err := s.findOwned(ctx, id, input.UserID)
	if err != nil {
		return nil, err
	}

	if v := trimmed(input.Title); v != "" {
		expense.Title = v
	}
	if input.Amount != nil && *input.Amount > 0 {
		expense.Amount = *input.Amount
	}
	if v := trimmed(input.Category); v != "" {
		expense.Category = v
	}
	if v := trimmed(input.Date); v != "" {
		expense.Date = v
	}

	updated, err := s.expenses.Update(ctx, expense)
	if errors.Is(err, repositories.ErrNotFound) {
		// deleted after findOwned
		return nil, utils.NewAppError(utils.KindNotFound, err, utils.MsgNotFound)
	}
	if err != nil {
		return nil, utils.NewAppError(utils.KindServerError, err, utils.MsgServerError)
	}
	return updated, nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, id, userID string) (*models.DeleteResult, error) {
	if _, err := s.findOwned(ctx, id, userID); err != nil {
		return nil, err
	}

	if err := s.expenses.Delete(ctx, id); err != nil {
		return nil, utils.NewAppError(utils.KindServerError, err, utils.MsgServerError)
	}
	return &models.DeleteResult{Message: utils.MsgDeleted}, nil
}

// findOwned loads an expense and checks that userID is its owner.
func (s *ExpenseService) findOwned(ctx context.Context, id, userID string) (*models.Expense, error) {
	expense, err := s.expenses.FindByID(ctx, id)
	if err != nil {
		return nil, utils.NewAppError(utils.KindServerError, err, utils.MsgServerError)
	}
	if expense == nil {
		return nil, utils.NewAppError(utils.KindNotFound, nil, utils.MsgNotFound)
	}
	if expense.UserID != userID {
		return nil, utils.NewAppError(utils.KindUnauthorized, nil, utils.MsgUnauthorized)
	}
	return expense, nil
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
