package repository

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	authdomain "dda-backend/internal/auth/domain"

	"gorm.io/gorm"
)

const tokenByteLength = 32

// sessionTokenRepository implements SessionTokenRepository on gorm.
type sessionTokenRepository struct {
	db *gorm.DB
}

func NewSessionTokenRepository(db *gorm.DB) SessionTokenRepository {
	return &sessionTokenRepository{
		db: db,
	}
}

// Replace enforces the at-most-one-session invariant: the delete of the old
// token and the insert of the new one commit together or not at all.
func (r *sessionTokenRepository) Replace(ctx context.Context, user *authdomain.User, ttl time.Duration) (*authdomain.SessionToken, error) {
	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	session := &authdomain.SessionToken{
		Token:     token,
		ExpiresAt: time.Now().Add(ttl),
		UserID:    user.ID,
		User:      *user,
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&authdomain.SessionToken{}).Error; err != nil {
			return err
		}
		// Omit the association so the user row is not re-inserted.
		return tx.Omit("User").Create(session).Error
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (r *sessionTokenRepository) FindByToken(ctx context.Context, token string) (*authdomain.SessionToken, error) {
	var session authdomain.SessionToken
	err := r.db.WithContext(ctx).Preload("User").Where("token = ?", token).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionTokenRepository) DeleteForUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&authdomain.SessionToken{}).Error
}

func generateToken() (string, error) {
	b := make([]byte, tokenByteLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
