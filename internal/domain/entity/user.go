// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. It carries the login identity and the
// credential hash; everything a person shows to the outside world lives on
// the attached Profile.
type User struct {
	ID           uuid.UUID    // The unique identifier for the account.
	Email        string       // The login identifier. Unique across all users.
	PasswordHash string       // bcrypt hash of the account password. Never the plaintext.
	Profile      *UserProfile // The 1:1 profile, created in the same transaction as the user.
	CreatedAt    time.Time    // Timestamp of when this account was created.
	UpdatedAt    time.Time    // Timestamp of the last modification to this account.
}

// UserProfile holds the public-facing attributes of an account.
// Every user has exactly one profile; a user without a profile (or a profile
// without a user) must never be observable outside a transaction.
type UserProfile struct {
	UserID       uuid.UUID // Foreign key linking this profile to its User.
	Name         string    // Display name. The only mutable profile field, changed via the name-change operation.
	Age          int       // The user's age as supplied at registration.
	Gender       string    // Uppercase canonical form, see NormalizeGender.
	ProfileImage string    // Reference (URL or path) to the profile image.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NameChangeRecord is one entry of the append-only name-change audit trail.
// Records are immutable once created.
type NameChangeRecord struct {
	ID         uuid.UUID // The unique identifier of this audit entry.
	UserID     uuid.UUID // The account whose name was changed.
	BeforeName string    // The profile name immediately before the change.
	AfterName  string    // The profile name after the change.
	CreatedAt  time.Time // When the change was committed.
}
