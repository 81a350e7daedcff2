package users

import (
	"context"

	"github.com/dmitrijs2005/byteme/internal/client/models"
)

// Repository stores User records keyed by ID with a unique email index.
type Repository interface {
	// Create assigns a new ID and persists u. It fails with
	// common.ErrDuplicateEmail when the email is already taken.
	Create(ctx context.Context, u models.NewUser) (*models.User, error)
	// FindByEmail returns common.ErrorNotFound when no record matches.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// UpdateFullName returns common.ErrorNotFound for an unknown id.
	UpdateFullName(ctx context.Context, id string, fullName string) error
}
