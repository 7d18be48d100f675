package domain

import "time"

// SessionToken authenticates a user on every request after login. A user
// holds at most one live token; logging in again replaces the old row rather
// than mutating it.
type SessionToken struct {
	Token     string    `json:"token" gorm:"primaryKey"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"not null"`
	UserID    string    `json:"-" gorm:"type:uuid;uniqueIndex;not null"`
	User      User      `json:"user" gorm:"constraint:OnDelete:CASCADE"`
}

// IsExpired reports whether the token has passed its expiry. It never
// mutates or deletes anything; cleanup happens on replacement.
func (s *SessionToken) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
