package repository

import (
	"context"

	"roster/internal/domain/entity"

	"github.com/google/uuid"
)

// NameChangeRepository persists the append-only name-change audit trail.
// Records are never updated or deleted.
type NameChangeRepository interface {
	// Create appends a new audit record.
	Create(ctx context.Context, record *entity.NameChangeRecord) error

	// ListByUserID returns all audit records for a user, newest first.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.NameChangeRecord, error)
}
