// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"farmnaturals/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput carries the issued bearer credential.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	IsAdmin     bool
}

// IdentityUsecase defines registration, login and capability checks.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type IdentityUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Authorize verifies the credential and checks that its principal holds the capability.
	// It never reads the database.
	Authorize(ctx context.Context, credential string, capability entity.Capability) (*entity.Principal, error)

	// BootstrapAdmins promotes the configured emails to administrators.
	BootstrapAdmins(ctx context.Context) error
}
