package models

import (
	"time"

	"github.com/google/uuid"
)

// User authors answers. The identifier is a version-4 UUID, supplied by the client or generated on create.
// Passwords are stored as bcrypt hashes only.
type User struct {
	ID           uuid.UUID `gorm:"type:char(36);primaryKey"`
	Username     string    `gorm:"size:255;not null"`
	Email        string    `gorm:"size:255;not null;uniqueIndex:uni_users_email"`
	PasswordHash string    `gorm:"size:255;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime;not null"`
}

// All lists every model in dependency order for schema bootstrap.
func All() []interface{} {
	return []interface{}{&Question{}, &User{}, &Answer{}}
}
