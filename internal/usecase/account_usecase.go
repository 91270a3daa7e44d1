package usecase

import (
	"context"

	"examhub/internal/domain/constants"
	"examhub/internal/domain/entity"

	"github.com/google/uuid"
)

// Page selects one page of a listing. Page is 1-based.
type Page struct {
	Page  int
	Limit int
}

// Normalize applies the default limit and clamps both fields into range.
func (p Page) Normalize() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = constants.PaginationDefaultLimit
	}
	if p.Limit > constants.PaginationMaxLimit {
		p.Limit = constants.PaginationMaxLimit
	}

	return p
}

// Offset is the number of rows skipped before this page.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// AccountPage is one page of accounts.
type AccountPage struct {
	Items []*entity.Account
	Total int64
	Page  int
	Limit int
}

// UpdateAccountInput carries a partial update. Nil fields are left unchanged.
type UpdateAccountInput struct {
	Name    *string
	Email   *string
	Phone   *string
	TaxID   *string
	Address *entity.Address
	Active  *bool
	Role    *entity.Role
}

// AccountUsecase is the account directory used by authenticated clients.
type AccountUsecase interface {
	Get(ctx context.Context, kind entity.AccountKind, id uuid.UUID) (*entity.Account, error)
	List(ctx context.Context, kind entity.AccountKind, page Page) (*AccountPage, error)
	Search(ctx context.Context, kind entity.AccountKind, query string, page Page) (*AccountPage, error)
	Update(ctx context.Context, kind entity.AccountKind, id uuid.UUID, input *UpdateAccountInput) (*entity.Account, error)
	Delete(ctx context.Context, kind entity.AccountKind, id uuid.UUID) error
}
