package models

import (
	"time"
)

// User represents a user record in the database
type User struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key
	Name         string    `json:"name" db:"name"`             // Display name
	Email        string    `json:"email" db:"email"`           // Unique email, case-sensitive as stored
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash
	MinKcal      *float64  `json:"min_kcal" db:"min_kcal"`     // Optional lower daily target
	MaxKcal      *float64  `json:"max_kcal" db:"max_kcal"`     // Optional upper daily target
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// Targets returns the user's configured daily bounds.
func (u *User) Targets() Targets {
	return Targets{MinKcal: u.MinKcal, MaxKcal: u.MaxKcal}
}

// ProfileUpdate is a partial profile change. Only fields marked Set are applied;
// a Set field with a nil value clears the target.
type ProfileUpdate struct {
	Name    *string
	MinKcal OptionalFloat
	MaxKcal OptionalFloat
}

// Empty reports whether the update carries no recognized field.
func (p ProfileUpdate) Empty() bool {
	return p.Name == nil && !p.MinKcal.Set && !p.MaxKcal.Set
}
