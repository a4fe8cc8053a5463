package usecase

import (
	"context"

	"roster/internal/domain/entity"

	"github.com/google/uuid"
)

// ChangeNameInput defines the data required to change a user's display name.
type ChangeNameInput struct {
	UserID  uuid.UUID
	NewName string
}

// ChangeNameOutput returns the updated profile together with the audit record
// written for this change.
type ChangeNameOutput struct {
	Profile *entity.UserProfile
	Record  *entity.NameChangeRecord
}

// ProfileUsecase defines the interface for profile lookup and name management.
type ProfileUsecase interface {
	// GetProfile returns the user with their profile, or (nil, nil) when no
	// user exists for the given ID.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	ChangeName(ctx context.Context, input *ChangeNameInput) (*ChangeNameOutput, error)
	ListNameChanges(ctx context.Context, userID uuid.UUID) ([]*entity.NameChangeRecord, error)
}
