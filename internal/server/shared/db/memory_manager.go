package db

import (
	"context"

	"github.com/dmitrijs2005/matchpredictor/internal/server/users"
)

// InMemoryRepositoryManager backs the user store with process memory. Used
// when no database DSN is configured; accounts are lost on restart.
type InMemoryRepositoryManager struct {
	users users.Repository
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Close() error {
	return nil
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{users: users.NewMemoryRepository()}
}
