package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	authdomain "dda-backend/internal/auth/domain"
	authdto "dda-backend/internal/auth/dto"
	"dda-backend/internal/auth/repository"
	"dda-backend/pkg/apperror"
	"dda-backend/pkg/config"
	"dda-backend/pkg/google"
)

// authUsecase implements AuthUsecase.
type authUsecase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionTokenRepository
	provider    google.Service
	config      *config.Config
}

func NewAuthUsecase(userRepo repository.UserRepository, sessionRepo repository.SessionTokenRepository, provider google.Service, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		provider:    provider,
		config:      cfg,
	}
}

func (u *authUsecase) LoginWithGoogle(ctx context.Context, req *authdto.GoogleTokenExchangeRequest) (*authdomain.SessionToken, error) {
	idToken, err := u.provider.ExchangeAuthCode(ctx, req.AuthorizationCode, req.CodeVerifier, req.RedirectURI)
	if err != nil {
		if errors.Is(err, google.ErrTokenExchange) {
			slog.Warn("google code exchange rejected", "error", err)
			return nil, apperror.TokenExchangeFailed("authorization code could not be exchanged")
		}
		return nil, fmt.Errorf("exchange auth code: %w", err)
	}

	profile, err := u.provider.GetUserProfile(ctx, idToken)
	if err != nil {
		if errors.Is(err, google.ErrTokenValidation) {
			slog.Warn("google id token rejected", "error", err)
			return nil, apperror.InvalidToken("id token could not be verified")
		}
		return nil, fmt.Errorf("fetch user profile: %w", err)
	}

	user, err := u.userRepo.GetOrCreate(ctx, newUserFromProfile(profile))
	if err != nil {
		return nil, fmt.Errorf("resolve user %s: %w", profile.Email, err)
	}

	session, err := u.sessionRepo.Replace(ctx, user, time.Duration(u.config.SessionLengthMinutes)*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("issue session for user %s: %w", user.ID, err)
	}

	slog.Info("user logged in with google", "user_id", user.ID)
	return session, nil
}

func (u *authUsecase) ValidateSessionToken(ctx context.Context, token string) (*authdomain.User, error) {
	session, err := u.sessionRepo.FindByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("resolve session token: %w", err)
	}
	if session == nil || session.IsExpired(time.Now()) {
		return nil, nil
	}
	return &session.User, nil
}

func newUserFromProfile(profile *google.Profile) *authdomain.User {
	user := &authdomain.User{
		Email:           profile.Email,
		FamilyName:      profile.FamilyName,
		GivenName:       profile.GivenName,
		IsEmailVerified: profile.IsEmailVerified,
		ProfilePicture:  profile.ProfilePicture,
		Source:          authdomain.UserSourceGoogle,
	}
	if profile.PhoneNumber != "" {
		phone := profile.PhoneNumber
		user.PhoneNumber = &phone
	}
	return user
}
