package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time `gorm:"index"`

	Profile     *UserProfileModel `gorm:"foreignKey:UserID"`
	NameChanges []NameChangeModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserProfileModel mirrors the 'user_profiles' table. UserID references users.id (UUID).
type UserProfileModel struct {
	UserID       uuid.UUID `gorm:"primaryKey"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Age          int
	Gender       string `gorm:"type:varchar(16)"`
	ProfileImage string `gorm:"type:varchar(512)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}

// NameChangeModel mirrors the 'name_change_records' table.
// Rows are append-only; nothing in the codebase updates or deletes them.
type NameChangeModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	BeforeName string    `gorm:"type:varchar(100);not null"`
	AfterName  string    `gorm:"type:varchar(100);not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (NameChangeModel) TableName() string {
	return "name_change_records"
}
