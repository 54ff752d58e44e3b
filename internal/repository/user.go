package repository

import (
	"context"
	"errors"

	"userbase/internal/domain"
)

// ErrDuplicate is returned by Create when a unique constraint (email or
// username) would be violated.
var ErrDuplicate = errors.New("duplicate record")

// UserRepository defines persistence operations for User entities. Lookups
// return (nil, nil) when no record matches. GetByEmail is the only read
// that populates HashedPassword; it exists solely to support login
// verification.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) error
	GetAll(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	DeleteByID(ctx context.Context, id string) error
}
