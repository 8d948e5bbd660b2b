package database

import (
	"context"
	"fmt"

	"ExpenseAPI/config/environment"
	"ExpenseAPI/logging"
	"ExpenseAPI/repositories"
	"ExpenseAPI/repositories/memory"
	"ExpenseAPI/repositories/sqlite"
)

// Stores bundles the repositories selected by STORE_DRIVER.
type Stores struct {
	Users    repositories.UserRepository
	Expenses repositories.ExpenseRepository

	close func() error
}

// Close releases the underlying connection, if any.
func (s *Stores) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open connects to the configured backend.
func Open(ctx context.Context, cfg environment.Config) (*Stores, error) {
	switch cfg.StoreDriver {
	case environment.DriverFirestore:
		client, err := NewFirestoreClient(ctx, cfg.FirebaseCredentials, cfg.FirebaseProjectID)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Users:    repositories.NewFirestoreUserRepository(client),
			Expenses: repositories.NewFirestoreExpenseRepository(client),
			close:    client.Close,
		}, nil

	case environment.DriverSQLite:
		db, err := sqlite.NewDB(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %q: %w", cfg.SQLitePath, err)
		}
		logging.Info().Str("path", cfg.SQLitePath).Msg("SQLite store opened")
		return &Stores{
			Users:    db.Users(),
			Expenses: db.Expenses(),
			close:    db.Close,
		}, nil

	case environment.DriverMemory:
		logging.Warn().Msg("Using in-memory store; data is lost on restart")
		db := memory.New()
		return &Stores{Users: db.Users(), Expenses: db.Expenses()}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
