package dto

import (
	"time"

	authdomain "dda-backend/internal/auth/domain"
)

type GoogleTokenExchangeRequest struct {
	AuthorizationCode string `json:"authorizationCode" binding:"required"`
	CodeVerifier      string `json:"codeVerifier" binding:"required"`
	RedirectURI       string `json:"redirectUri" binding:"required"`
}

type SessionTokenResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	User      *authdomain.User `json:"user"`
}

func NewSessionTokenResponse(session *authdomain.SessionToken) *SessionTokenResponse {
	return &SessionTokenResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      &session.User,
	}
}
