// Package repotest holds behaviour tests every repository backend must pass.
package repotest

import (
	"context"
	"testing"

	"ExpenseAPI/models"
	"ExpenseAPI/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunUserRepositoryTests checks the UserRepository contract. newRepo must
// return an empty repository.
func RunUserRepositoryTests(t *testing.T, newRepo func(t *testing.T) repositories.UserRepository) {
	ctx := context.Background()

	t.Run("create and find", func(t *testing.T) {
		repo := newRepo(t)
		created, err := repo.Create(ctx, &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"})
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())

		found, err := repo.FindByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "alice", found.Username)
		assert.Equal(t, "hash", found.PasswordHash)

		found, err = repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "alice@example.com", found.Email)

		found, err = repo.FindByEmailOrUsername(ctx, "other@example.com", "alice")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("missing user", func(t *testing.T) {
		repo := newRepo(t)
		found, err := repo.FindByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, found)

		found, err = repo.FindByID(ctx, "does-not-exist")
		require.NoError(t, err)
		assert.Nil(t, found)

		found, err = repo.FindByEmailOrUsername(ctx, "nobody@example.com", "nobody")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("duplicates", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Create(ctx, &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"})
		require.NoError(t, err)

		_, err = repo.Create(ctx, &models.User{Username: "bob", Email: "alice@example.com", PasswordHash: "hash"})
		assert.ErrorIs(t, err, repositories.ErrDuplicate)

		_, err = repo.Create(ctx, &models.User{Username: "alice", Email: "bob@example.com", PasswordHash: "hash"})
		assert.ErrorIs(t, err, repositories.ErrDuplicate)
	})
}

// RunExpenseRepositoryTests checks the ExpenseRepository contract. newRepo
// must return an empty repository; ownerIDs returns user ids that the
// backend accepts as owners.
func RunExpenseRepositoryTests(t *testing.T, newRepo func(t *testing.T) (repositories.ExpenseRepository, []string)) {
	ctx := context.Background()

	t.Run("create, find and list", func(t *testing.T) {
		repo, owners := newRepo(t)
		alice, bob := owners[0], owners[1]

		first, err := repo.Create(ctx, &models.Expense{Title: "Lunch", Amount: 12.5, Category: "food", Date: "2024-05-01", UserID: alice})
		require.NoError(t, err)
		require.NotEmpty(t, first.ID)
		_, err = repo.Create(ctx, &models.Expense{Title: "Dinner", Amount: 30, Category: "food", Date: "2024-05-03", UserID: alice})
		require.NoError(t, err)
		_, err = repo.Create(ctx, &models.Expense{Title: "Bus", Amount: 2, Category: "transport", Date: "2024-05-02", UserID: bob})
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, first.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Lunch", found.Title)
		assert.Equal(t, 12.5, found.Amount)
		assert.Equal(t, alice, found.UserID)

		list, err := repo.FindByOwner(ctx, alice)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Dinner", list[0].Title)
		assert.Equal(t, "Lunch", list[1].Title)
	})

	t.Run("missing expense", func(t *testing.T) {
		repo, _ := newRepo(t)
		found, err := repo.FindByID(ctx, "does-not-exist")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("update of deleted expense", func(t *testing.T) {
		repo, owners := newRepo(t)
		created, err := repo.Create(ctx, &models.Expense{Title: "Lunch", Amount: 12.5, Category: "food", Date: "2024-05-01", UserID: owners[0]})
		require.NoError(t, err)
		require.NoError(t, repo.Delete(ctx, created.ID))

		created.Title = "Brunch"
		_, err = repo.Update(ctx, created)
		assert.ErrorIs(t, err, repositories.ErrNotFound)

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("update and delete", func(t *testing.T) {
		repo, owners := newRepo(t)
		created, err := repo.Create(ctx, &models.Expense{Title: "Lunch", Amount: 12.5, Category: "food", Date: "2024-05-01", UserID: owners[0]})
		require.NoError(t, err)

		created.Title = "Brunch"
		created.Amount = 14
		_, err = repo.Update(ctx, created)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Brunch", found.Title)
		assert.Equal(t, 14.0, found.Amount)
		assert.Equal(t, "food", found.Category)
		assert.Equal(t, owners[0], found.UserID)

		require.NoError(t, repo.Delete(ctx, created.ID))
		found, err = repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}
