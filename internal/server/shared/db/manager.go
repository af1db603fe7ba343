// Package db wires a concrete user store behind the users.Repository
// interface and owns schema migrations.
package db

import (
	"context"

	"github.com/dmitrijs2005/matchpredictor/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Users() users.Repository
	Close() error
}
