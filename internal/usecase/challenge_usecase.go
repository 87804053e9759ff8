// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// LoginInput carries what the front end collected for a login challenge.
type LoginInput struct {
	Challenge string
	Email     string
	Password  string
	TOTPCode  string
	Remember  bool
	ClientIP  string
}

// ConsentInput carries the user's decision on a consent challenge.
type ConsentInput struct {
	Challenge  string
	Accept     bool
	GrantScope []string
	Remember   bool
}

// ChallengeUsecase resolves the login, consent and logout challenges issued
// by the authorization server. Every method returns the URL the browser must
// be redirected to.
type ChallengeUsecase interface {
	ResolveLogin(ctx context.Context, input LoginInput) (string, error)
	ResolveConsent(ctx context.Context, input ConsentInput) (string, error)
	ResolveLogout(ctx context.Context, challenge string) (string, error)
}
