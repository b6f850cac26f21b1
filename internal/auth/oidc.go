package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// googleIssuer is the OIDC discovery endpoint for Google accounts.
const googleIssuer = "https://accounts.google.com"

// Authenticator resolves an OAuth authorization code to a verified identity.
type Authenticator interface {
	AuthCodeURL(state string) string
	Identity(ctx context.Context, code string) (email string, err error)
}

// googleAuthenticator implements Authenticator against Google's OIDC
// provider.
type googleAuthenticator struct {
	oauth    oauth2.Config
	provider *oidc.Provider
}

// NewGoogleAuthenticator initializes the OIDC provider and OAuth2
// configuration for Google login.
func NewGoogleAuthenticator(ctx context.Context, clientID, clientSecret, redirectURL string) (Authenticator, error) {
	provider, err := oidc.NewProvider(ctx, googleIssuer)
	if err != nil {
		return nil, fmt.Errorf("auth: create OIDC provider: %w", err)
	}

	oauth := oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint:     provider.Endpoint(),
		Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
	}

	return &googleAuthenticator{
		provider: provider,
		oauth:    oauth,
	}, nil
}

// AuthCodeURL returns the provider authorization URL carrying state.
func (a *googleAuthenticator) AuthCodeURL(state string) string {
	return a.oauth.AuthCodeURL(state)
}

// Identity exchanges the authorization code for a token, verifies the ID
// token, and returns the verified email claim.
func (a *googleAuthenticator) Identity(ctx context.Context, code string) (string, error) {
	token, err := a.oauth.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("auth: exchange authorization code: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return "", errors.New("auth: no id_token field in oauth2 token")
	}

	verifier := a.provider.Verifier(&oidc.Config{ClientID: a.oauth.ClientID})
	idToken, err := verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return "", fmt.Errorf("auth: verify ID token: %w", err)
	}

	var claims struct {
		Email string `json:"email"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return "", fmt.Errorf("auth: decode ID token claims: %w", err)
	}
	if claims.Email == "" {
		return "", errors.New("auth: ID token carries no email claim")
	}
	return claims.Email, nil
}
