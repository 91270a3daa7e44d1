// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"examhub/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateEmail is returned when an insert or update collides with the unique email index.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrDuplicateIdentifier is returned when a tax identifier collides within the same account kind.
	ErrDuplicateIdentifier = errors.New("tax identifier already registered")
)

// AccountFilter narrows account listings.
type AccountFilter struct {
	Kind       entity.AccountKind
	NameSearch string // Case-insensitive substring of the name. Empty matches every account.
	Offset     int
	Limit      int
}

// AccountRepository defines persistence for worker and company accounts.
// Email lookups span both kinds; identifier lookups are scoped to one kind.
type AccountRepository interface {
	// FindByID retrieves an account of the given kind by id.
	FindByID(ctx context.Context, kind entity.AccountKind, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves an account of either kind by email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// ExistsByTaxID reports whether an account of the kind already uses the tax identifier.
	// excludeID skips one account, so updates can keep their own identifier.
	ExistsByTaxID(ctx context.Context, kind entity.AccountKind, taxID string, excludeID uuid.UUID) (bool, error)

	// Create persists a new account.
	Create(ctx context.Context, account *entity.Account) error

	// Update persists every mutable field of an existing account and bumps updated_at.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account of the given kind.
	Delete(ctx context.Context, kind entity.AccountKind, id uuid.UUID) error

	// List returns one page of accounts plus the total number matching the filter.
	List(ctx context.Context, filter AccountFilter) ([]*entity.Account, int64, error)

	// DeleteInactiveCreatedBefore removes every inactive account created before cutoff and returns the removed ids.
	DeleteInactiveCreatedBefore(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error)

	// CountByKind counts accounts of a kind. When onlyInactive is set only pending records are counted.
	CountByKind(ctx context.Context, kind entity.AccountKind, onlyInactive bool) (int64, error)
}
