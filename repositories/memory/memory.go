// Package memory implements the repositories in process memory, for
// development and tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"ExpenseAPI/models"
	"ExpenseAPI/repositories"

	"github.com/google/uuid"
)

// DB holds users and expenses behind a single mutex.
type DB struct {
	mu       sync.Mutex
	users    map[string]models.User
	expenses map[string]models.Expense
}

func New() *DB {
	return &DB{
		users:    make(map[string]models.User),
		expenses: make(map[string]models.Expense),
	}
}

var _ repositories.UserRepository = (*Users)(nil)
var _ repositories.ExpenseRepository = (*Expenses)(nil)

// Users and Expenses are views over the same DB. Both interfaces have a
// Create method, so they cannot share a receiver.
type Users struct {
	db *DB
}

type Expenses struct {
	db *DB
}

func (db *DB) Users() *Users {
	return &Users{db: db}
}

func (db *DB) Expenses() *Expenses {
	return &Expenses{db: db}
}

// --- UserRepository ---

func (u *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	u.db.mu.Lock()
	defer u.db.mu.Unlock()

	for _, user := range u.db.users {
		if strings.EqualFold(user.Email, email) {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

func (u *Users) FindByID(ctx context.Context, id string) (*models.User, error) {
	u.db.mu.Lock()
	defer u.db.mu.Unlock()

	user, ok := u.db.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (u *Users) FindByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error) {
	u.db.mu.Lock()
	defer u.db.mu.Unlock()

	return u.db.conflictingUser(email, username), nil
}

func (u *Users) Create(ctx context.Context, user *models.User) (*models.User, error) {
	u.db.mu.Lock()
	defer u.db.mu.Unlock()

	if u.db.conflictingUser(user.Email, user.Username) != nil {
		return nil, repositories.ErrDuplicate
	}

	created := *user
	created.ID = uuid.NewString()
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}
	u.db.users[created.ID] = created
	return &created, nil
}

// conflictingUser must be called with db.mu held.
func (db *DB) conflictingUser(email, username string) *models.User {
	for _, u := range db.users {
		if strings.EqualFold(u.Email, email) || u.Username == username {
			found := u
			return &found
		}
	}
	return nil
}

// --- ExpenseRepository ---

func (e *Expenses) FindByOwner(ctx context.Context, userID string) ([]models.Expense, error) {
	e.db.mu.Lock()
	defer e.db.mu.Unlock()

	result := []models.Expense{}
	for _, exp := range e.db.expenses {
		if exp.UserID == userID {
			result = append(result, exp)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date > result[j].Date
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (e *Expenses) FindByID(ctx context.Context, id string) (*models.Expense, error) {
	e.db.mu.Lock()
	defer e.db.mu.Unlock()

	exp, ok := e.db.expenses[id]
	if !ok {
		return nil, nil
	}
	return &exp, nil
}

func (e *Expenses) Create(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	e.db.mu.Lock()
	defer e.db.mu.Unlock()

	now := time.Now().UTC()
	created := *expense
	created.ID = uuid.NewString()
	created.CreatedAt = now
	created.UpdatedAt = now
	e.db.expenses[created.ID] = created
	return &created, nil
}

func (e *Expenses) Update(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	e.db.mu.Lock()
	defer e.db.mu.Unlock()

	stored, ok := e.db.expenses[expense.ID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	stored.Title = expense.Title
	stored.Amount = expense.Amount
	stored.Category = expense.Category
	stored.Date = expense.Date
	stored.UpdatedAt = time.Now().UTC()
	e.db.expenses[stored.ID] = stored
	return &stored, nil
}

func (e *Expenses) Delete(ctx context.Context, id string) error {
	e.db.mu.Lock()
	defer e.db.mu.Unlock()

	if _, ok := e.db.expenses[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(e.db.expenses, id)
	return nil
}
