// Package google talks to Google's OAuth endpoints: it exchanges PKCE
// authorization codes for ID tokens and resolves verified ID tokens into
// user profiles.
package google

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// ErrTokenExchange marks a failed authorization-code exchange.
var ErrTokenExchange = errors.New("google token exchange failed")

// ErrTokenValidation marks an ID token that could not be verified or decoded.
var ErrTokenValidation = errors.New("google id token validation failed")

// Profile is the identity Google reports for a verified ID token.
type Profile struct {
	Email           string
	FamilyName      string
	GivenName       string
	IsEmailVerified bool
	PhoneNumber     string
	ProfilePicture  string
}

// Service is the provider contract used by the auth usecase. A production
// implementation calls Google; tests substitute a fixed-data double.
type Service interface {
	ExchangeAuthCode(ctx context.Context, authorizationCode, codeVerifier, redirectURI string) (string, error)
	GetUserProfile(ctx context.Context, idToken string) (*Profile, error)
}

type externalService struct {
	clientID     string
	clientSecret string
}

func NewService(clientID, clientSecret string) Service {
	return &externalService{
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

func (s *externalService) ExchangeAuthCode(ctx context.Context, authorizationCode, codeVerifier, redirectURI string) (string, error) {
	cfg := &oauth2.Config{
		ClientID:     s.clientID,
		ClientSecret: s.clientSecret,
		Endpoint:     googleoauth.Endpoint,
		RedirectURL:  redirectURI,
	}

	token, err := cfg.Exchange(ctx, authorizationCode, oauth2.VerifierOption(codeVerifier))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenExchange, err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return "", fmt.Errorf("%w: response contained no id_token", ErrTokenExchange)
	}
	return rawIDToken, nil
}

func (s *externalService) GetUserProfile(ctx context.Context, rawIDToken string) (*Profile, error) {
	payload, err := idtoken.Validate(ctx, rawIDToken, s.clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenValidation, err)
	}

	profile := &Profile{
		Email:           claimString(payload.Claims, "email"),
		FamilyName:      claimString(payload.Claims, "family_name"),
		GivenName:       claimString(payload.Claims, "given_name"),
		IsEmailVerified: claimBool(payload.Claims, "email_verified"),
		PhoneNumber:     claimString(payload.Claims, "phone_number"),
		ProfilePicture:  claimString(payload.Claims, "picture"),
	}
	if profile.Email == "" {
		return nil, fmt.Errorf("%w: token carried no email claim", ErrTokenValidation)
	}
	return profile, nil
}

func claimString(claims map[string]interface{}, key string) string {
	if value, ok := claims[key].(string); ok {
		return value
	}
	return ""
}

func claimBool(claims map[string]interface{}, key string) bool {
	switch value := claims[key].(type) {
	case bool:
		return value
	case string:
		// Google's tokeninfo endpoint reports this claim as "true"/"false"
		return value == "true"
	}
	return false
}
