// Package sqlite implements the repositories on top of an SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"ExpenseAPI/models"
	"ExpenseAPI/repositories"

	"github.com/google/uuid"
	// Import sqlite driver
	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB connection.
type DB struct {
	conn *sql.DB
}

// NewDB opens the database at path and runs migrations. Use ":memory:" for
// a throwaway database.
func NewDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if path == ":memory:" {
		// every new connection to :memory: would see an empty database
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		return nil, err
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			email TEXT UNIQUE NOT NULL COLLATE NOCASE,
			password_hash TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			amount REAL NOT NULL,
			category TEXT NOT NULL,
			date TEXT NOT NULL,
			user_id TEXT NOT NULL REFERENCES users(id),
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_user_id ON expenses(user_id)`,
	}

	for _, m := range migrations {
		if _, err := db.conn.Exec(m); err != nil {
			return err
		}
	}
	return nil
}

var _ repositories.UserRepository = (*Users)(nil)
var _ repositories.ExpenseRepository = (*Expenses)(nil)

// Users is the user table.
type Users struct {
	db *DB
}

// Expenses is the expense table.
type Expenses struct {
	db *DB
}

func (db *DB) Users() *Users {
	return &Users{db: db}
}

func (db *DB) Expenses() *Expenses {
	return &Expenses{db: db}
}

const userColumns = "id, username, email, password_hash, created_at"

func (u *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	row := u.db.conn.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = ?", email)
	return scanUser(row)
}

func (u *Users) FindByID(ctx context.Context, id string) (*models.User, error) {
	row := u.db.conn.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = ?", id)
	return scanUser(row)
}

func (u *Users) FindByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error) {
	row := u.db.conn.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = ? OR username = ? LIMIT 1", email, username)
	return scanUser(row)
}

func (u *Users) Create(ctx context.Context, user *models.User) (*models.User, error) {
	created := *user
	created.ID = uuid.NewString()
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	_, err := u.db.conn.ExecContext(ctx,
		"INSERT INTO users ("+userColumns+") VALUES (?, ?, ?, ?, ?)",
		created.ID, created.Username, created.Email, created.PasswordHash, formatTime(created.CreatedAt))
	if err != nil {
		if isUniqueConstraintErr(err) {
			return nil, repositories.ErrDuplicate
		}
		return nil, err
	}
	return &created, nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	var createdAt string
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	u.CreatedAt = parseTime(createdAt)
	return &u, nil
}

const expenseColumns = "id, title, amount, category, date, user_id, created_at, updated_at"

func (e *Expenses) FindByOwner(ctx context.Context, userID string) ([]models.Expense, error) {
	rows, err := e.db.conn.QueryContext(ctx,
		"SELECT "+expenseColumns+" FROM expenses WHERE user_id = ? ORDER BY date DESC, created_at DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		exp, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, *exp)
	}
	return expenses, rows.Err()
}

func (e *Expenses) FindByID(ctx context.Context, id string) (*models.Expense, error) {
	row := e.db.conn.QueryRowContext(ctx,
		"SELECT "+expenseColumns+" FROM expenses WHERE id = ?", id)
	exp, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return exp, err
}

func (e *Expenses) Create(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	now := time.Now().UTC()
	created := *expense
	created.ID = uuid.NewString()
	created.CreatedAt = now
	created.UpdatedAt = now

	_, err := e.db.conn.ExecContext(ctx,
		"INSERT INTO expenses ("+expenseColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		created.ID, created.Title, created.Amount, created.Category, created.Date, created.UserID,
		formatTime(created.CreatedAt), formatTime(created.UpdatedAt))
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (e *Expenses) Update(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	updated := *expense
	updated.UpdatedAt = time.Now().UTC()

	res, err := e.db.conn.ExecContext(ctx,
		"UPDATE expenses SET title = ?, amount = ?, category = ?, date = ?, updated_at = ? WHERE id = ?",
		updated.Title, updated.Amount, updated.Category, updated.Date, formatTime(updated.UpdatedAt), updated.ID)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, repositories.ErrNotFound
	}
	return &updated, nil
}

func (e *Expenses) Delete(ctx context.Context, id string) error {
	_, err := e.db.conn.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExpense(s scanner) (*models.Expense, error) {
	var exp models.Expense
	var createdAt, updatedAt string
	if err := s.Scan(&exp.ID, &exp.Title, &exp.Amount, &exp.Category, &exp.Date, &exp.UserID, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	exp.CreatedAt = parseTime(createdAt)
	exp.UpdatedAt = parseTime(updatedAt)
	return &exp, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// modernc sqlite reports constraint violations only through the message.
func isUniqueConstraintErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
