// Package repositories holds the persistence ports used by the services and
// their Firestore implementation. Alternative backends live in sub-packages.
package repositories

import (
	"context"
	"errors"

	"ExpenseAPI/models"
)

// ErrDuplicate is returned when a user with the same email or username
// already exists.
var ErrDuplicate = errors.New("duplicate record")

// ErrNotFound is returned by Update when the expense no longer exists.
var ErrNotFound = errors.New("record not found")

// UserRepository persists users. Email and username are unique.
type UserRepository interface {
	// FindByEmailOrUsername returns (nil, nil) when no user matches either field.
	FindByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error)
	// FindByEmail returns (nil, nil) when no user matches.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// FindByID returns (nil, nil) when the user does not exist.
	FindByID(ctx context.Context, id string) (*models.User, error)
	// Create stores user and fills in its ID. Returns ErrDuplicate on conflict.
	Create(ctx context.Context, user *models.User) (*models.User, error)
}

// ExpenseRepository persists expenses.
type ExpenseRepository interface {
	FindByOwner(ctx context.Context, userID string) ([]models.Expense, error)
	// FindByID returns (nil, nil) when the expense does not exist.
	FindByID(ctx context.Context, id string) (*models.Expense, error)
	Create(ctx context.Context, expense *models.Expense) (*models.Expense, error)
	// Update never recreates a deleted expense; it returns ErrNotFound instead.
	Update(ctx context.Context, expense *models.Expense) (*models.Expense, error)
	Delete(ctx context.Context, id string) error
}
