// Package repository defines the persistence contracts of the domain layer.
// Implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"roster/internal/domain/entity"
	"roster/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user matches the given predicate.
var ErrUserNotFound = errors.New("user not found")

// UserRepository persists the User aggregate.
type UserRepository interface {
	// Create inserts a new user together with its associated profile.
	// Both rows are written through the connection the repository is bound
	// to, so inside a transaction they commit or roll back together.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by id with the profile preloaded.
	// Returns ErrUserNotFound when no such user exists.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email with the profile preloaded.
	// Returns ErrUserNotFound when no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
