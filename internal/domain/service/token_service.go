package service

import (
	"errors"
	"time"

	"examhub/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrInvalidToken is returned for tokens with a bad signature, wrong type or missing claims.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned for well-formed tokens whose exp has passed.
	ErrTokenExpired = errors.New("token expired")
)

// LifecyclePurpose distinguishes activation links from credential reset links.
type LifecyclePurpose string

const (
	// PurposeActivation proves control of the email address at registration.
	PurposeActivation LifecyclePurpose = "activation"
	// PurposeReset authorizes replacing the credential.
	PurposeReset LifecyclePurpose = "reset"
)

// LifecycleClaims is the payload of an email-delivered lifecycle token.
// It never carries the credential.
type LifecycleClaims struct {
	TokenID   string
	Email     string
	Kind      entity.AccountKind
	Name      string
	Phone     string
	TaxID     string
	Purpose   LifecyclePurpose
	ExpiresAt time.Time
}

// SessionClaims is the payload of a session token issued at login.
type SessionClaims struct {
	AccountID uuid.UUID
	Kind      entity.AccountKind
	Role      entity.Role
	ExpiresAt time.Time
}

// TokenService signs and verifies lifecycle and session tokens.
type TokenService interface {
	// IssueLifecycleToken signs a lifecycle token for the account's email and profile.
	IssueLifecycleToken(account *entity.Account, purpose LifecyclePurpose) (string, error)

	// VerifyLifecycleToken checks signature, expiry and purpose.
	VerifyLifecycleToken(token string, purpose LifecyclePurpose) (*LifecycleClaims, error)

	// IssueSessionToken signs a session token for an authenticated account.
	IssueSessionToken(account *entity.Account) (token string, expiresAt time.Time, err error)

	// VerifySessionToken checks a bearer session token.
	VerifySessionToken(token string) (*SessionClaims, error)
}
