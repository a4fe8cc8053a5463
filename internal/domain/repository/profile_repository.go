package repository

import (
	"context"

	"roster/internal/domain/entity"
	"roster/internal/errors"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a user has no profile row.
var ErrProfileNotFound = errors.New("user profile not found")

// ProfileRepository persists the UserProfile entity.
type ProfileRepository interface {
	// FindByUserID retrieves the profile belonging to the given user.
	// Returns ErrProfileNotFound when no profile row exists.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)

	// UpdateName sets the profile display name for the given user.
	// Returns ErrProfileNotFound when no profile row was affected.
	UpdateName(ctx context.Context, userID uuid.UUID, name string) error
}
