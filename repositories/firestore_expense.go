package repositories

import (
	"context"
	"time"

	"ExpenseAPI/models"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const expensesCollection = "expenses"

type FirestoreExpenseRepository struct {
	FirestoreClient *firestore.Client
}

func NewFirestoreExpenseRepository(client *firestore.Client) *FirestoreExpenseRepository {
	return &FirestoreExpenseRepository{FirestoreClient: client}
}

var _ ExpenseRepository = (*FirestoreExpenseRepository)(nil)

func (r *FirestoreExpenseRepository) FindByOwner(ctx context.Context, userID string) ([]models.Expense, error) {
	iter := r.FirestoreClient.Collection(expensesCollection).
		Where("userId", "==", userID).
		OrderBy("date", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	expenses := []models.Expense{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var expense models.Expense
		if err := doc.DataTo(&expense); err != nil {
			return nil, err
		}
		expense.ID = doc.Ref.ID
		expenses = append(expenses, expense)
	}
	return expenses, nil
}

func (r *FirestoreExpenseRepository) FindByID(ctx context.Context, id string) (*models.Expense, error) {
	doc, err := r.FirestoreClient.Collection(expensesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var expense models.Expense
	if err := doc.DataTo(&expense); err != nil {
		return nil, err
	}
	expense.ID = doc.Ref.ID
	return &expense, nil
}

func (r *FirestoreExpenseRepository) Create(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	now := time.Now().UTC()
	created := *expense
	created.CreatedAt = now
	created.UpdatedAt = now

	docRef, _, err := r.FirestoreClient.Collection(expensesCollection).Add(ctx, created)
	if err != nil {
		return nil, err
	}
	created.ID = docRef.ID
	return &created, nil
}

// Update overwrites the mutable fields of an existing document. Firestore's
// Update fails on a missing document, unlike Set.
func (r *FirestoreExpenseRepository) Update(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	updated := *expense
	updated.UpdatedAt = time.Now().UTC()

	_, err := r.FirestoreClient.Collection(expensesCollection).Doc(expense.ID).Update(ctx, []firestore.Update{
		{Path: "title", Value: updated.Title},
		{Path: "amount", Value: updated.Amount},
		{Path: "category", Value: updated.Category},
		{Path: "date", Value: updated.Date},
		{Path: "updatedAt", Value: updated.UpdatedAt},
	})
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *FirestoreExpenseRepository) Delete(ctx context.Context, id string) error {
	_, err := r.FirestoreClient.Collection(expensesCollection).Doc(id).Delete(ctx)
	return err
}
