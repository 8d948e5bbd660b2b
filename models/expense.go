package models

import "time"

// Expense is a single spending record owned by one user.
type Expense struct {
	ID        string    `json:"id" firestore:"-"`
	Title     string    `json:"title" firestore:"title"`
	Amount    float64   `json:"amount" firestore:"amount"`
	Category  string    `json:"category" firestore:"category"`
	Date      string    `json:"date" firestore:"date"`
	UserID    string    `json:"userId" firestore:"userId"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// CreateExpenseRequest is the body of POST /api/expenses.
type CreateExpenseRequest struct {
	Title    string  `json:"title" binding:"required,notblank"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Category string  `json:"category" binding:"required,notblank"`
	Date     string  `json:"date" binding:"required,isodate"`
}

// UpdateExpenseRequest is the body of PUT /api/expenses/:id. Absent or empty
// fields keep their stored value.
type UpdateExpenseRequest struct {
	Title    *string  `json:"title"`
	Amount   *float64 `json:"amount" binding:"omitempty,gt=0"`
	Category *string  `json:"category"`
	Date     *string  `json:"date" binding:"omitempty,len=0|isodate"`
}

// ExpenseInput is what the service needs to create an expense.
type ExpenseInput struct {
	Title    string
	Amount   float64
	Category string
	Date     string
	UserID   string
}

// ExpenseUpdate carries a partial update on behalf of UserID.
type ExpenseUpdate struct {
	Title    *string
	Amount   *float64
	Category *string
	Date     *string
	UserID   string
}

type DeleteResult struct {
	Message string `json:"message"`
}
