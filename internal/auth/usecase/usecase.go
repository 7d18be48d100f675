package usecase

import (
	"context"

	authdomain "dda-backend/internal/auth/domain"
	authdto "dda-backend/internal/auth/dto"
)

// AuthUsecase orchestrates provider exchange, user provisioning and session
// issuance.
type AuthUsecase interface {
	// LoginWithGoogle exchanges the authorization code, resolves or creates
	// the local user and issues a replacement session token.
	LoginWithGoogle(ctx context.Context, req *authdto.GoogleTokenExchangeRequest) (*authdomain.SessionToken, error)
	// ValidateSessionToken resolves a bearer token to its user. Unknown or
	// expired tokens yield a nil user without error.
	ValidateSessionToken(ctx context.Context, token string) (*authdomain.User, error)
}

// UserUsecase serves profile reads and partial updates.
type UserUsecase interface {
	GetProfile(ctx context.Context, userID string) (*authdomain.User, error)
	UpdateProfile(ctx context.Context, userID string, update *authdto.UserUpdateRequest) (*authdomain.User, error)
}
