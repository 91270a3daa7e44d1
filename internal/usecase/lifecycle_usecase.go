// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"examhub/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a worker or a company.
// No credential is taken here; it is chosen when the activation link is confirmed.
type RegisterInput struct {
	Kind    entity.AccountKind
	Email   string
	Name    string
	Phone   string
	TaxID   string
	Address *entity.Address
}

// --- Output DTOs ---

// LoginOutput returns the session token issued after a successful login.
type LoginOutput struct {
	Token     string
	TokenType string
	ExpiresAt time.Time
	Account   *entity.Account
}

// LifecycleUsecase covers registration, activation, credential reset, login and pending purge.
type LifecycleUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.Account, error)
	Confirm(ctx context.Context, token, password string) error
	ResendActivation(ctx context.Context, email string) error
	RequestCredentialReset(ctx context.Context, email string) error
	ConfirmCredentialReset(ctx context.Context, token, newPassword string) error
	Login(ctx context.Context, email, password string) (*LoginOutput, error)
	PurgeExpiredPending(ctx context.Context, window time.Duration) (int64, error)
}
