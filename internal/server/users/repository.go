package users

import (
	"context"

	"github.com/dmitrijs2005/matchpredictor/internal/server/models"
)

// Repository is the persistence contract for user accounts.
//
// Implementations must enforce email uniqueness, return
// common.ErrorNotFound for lookup misses, and common.ErrUserAlreadyExists
// when a duplicate email is inserted.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
