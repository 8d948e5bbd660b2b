package services

import (
	"context"
	"errors"

	"ExpenseAPI/models"
)

var errStorage = errors.New("storage unavailable")

type mockUserRepo struct {
	findByEmailOrUsernameFn func(ctx context.Context, email, username string) (*models.User, error)
	findByEmailFn           func(ctx context.Context, email string) (*models.User, error)
	findByIDFn              func(ctx context.Context, id string) (*models.User, error)
	createFn                func(ctx context.Context, user *models.User) (*models.User, error)
}

func (m *mockUserRepo) FindByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error) {
	if m.findByEmailOrUsernameFn != nil {
		return m.findByEmailOrUsernameFn(ctx, email, username)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	created := *user
	created.ID = "user-1"
	return &created, nil
}

type mockExpenseRepo struct {
	findByOwnerFn func(ctx context.Context, userID string) ([]models.Expense, error)
	findByIDFn    func(ctx context.Context, id string) (*models.Expense, error)
	createFn      func(ctx context.Context, expense *models.Expense) (*models.Expense, error)
	updateFn      func(ctx context.Context, expense *models.Expense) (*models.Expense, error)
	deleteFn      func(ctx context.Context, id string) error
}

func (m *mockExpenseRepo) FindByOwner(ctx context.Context, userID string) ([]models.Expense, error) {
	if m.findByOwnerFn != nil {
		return m.findByOwnerFn(ctx, userID)
	}
	return []models.Expense{}, nil
}

func (m *mockExpenseRepo) FindByID(ctx context.Context, id string) (*models.Expense, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockExpenseRepo) Create(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	if m.createFn != nil {
		return m.createFn(ctx, expense)
	}
	created := *expense
	created.ID = "expense-1"
	return &created, nil
}

func (m *mockExpenseRepo) Update(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, expense)
	}
	return expense, nil
}

func (m *mockExpenseRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}
