package memory

import (
	"context"
	"sync"
	"testing"

	"ExpenseAPI/models"
	"ExpenseAPI/repositories"
	"ExpenseAPI/repositories/repotest"

	"github.com/stretchr/testify/assert"
)

func TestUsers(t *testing.T) {
	repotest.RunUserRepositoryTests(t, func(t *testing.T) repositories.UserRepository {
		return New().Users()
	})
}

func TestExpenses(t *testing.T) {
	repotest.RunExpenseRepositoryTests(t, func(t *testing.T) (repositories.ExpenseRepository, []string) {
		return New().Expenses(), []string{"alice", "bob"}
	})
}

func TestConcurrentRegistrationsWithSameEmail(t *testing.T) {
	users := New().Users()

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := users.Create(context.Background(), &models.User{
				Username: "user" + string(rune('a'+i)),
				Email:    "same@example.com",
			})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
}

func TestUpdateMissingExpense(t *testing.T) {
	_, err := New().Expenses().Update(context.Background(), &models.Expense{ID: "nope"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
