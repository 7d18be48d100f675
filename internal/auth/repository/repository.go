package repository

import (
	"context"
	"time"

	authdomain "dda-backend/internal/auth/domain"
)

// UserRepository is the user directory. Lookup methods return (nil, nil)
// when no record matches.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*authdomain.User, error)
	FindByEmail(ctx context.Context, email string) (*authdomain.User, error)
	FindByPhone(ctx context.Context, phoneNumber string) (*authdomain.User, error)
	Create(ctx context.Context, user *authdomain.User) error
	Update(ctx context.Context, user *authdomain.User) error
	// GetOrCreate resolves the user owning candidate's email, creating the
	// record when absent. Atomic against concurrent first logins for the
	// same identity.
	GetOrCreate(ctx context.Context, candidate *authdomain.User) (*authdomain.User, error)
}

// SessionTokenRepository is the session store.
type SessionTokenRepository interface {
	// Replace deletes any session the user holds and inserts a fresh one,
	// as a single transaction.
	Replace(ctx context.Context, user *authdomain.User, ttl time.Duration) (*authdomain.SessionToken, error)
	FindByToken(ctx context.Context, token string) (*authdomain.SessionToken, error)
	DeleteForUser(ctx context.Context, userID string) error
}
