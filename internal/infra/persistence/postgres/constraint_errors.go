package postgres

import (
	"strings"

	"examhub/internal/domain/repository"
	"examhub/internal/infra/persistence/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// uniqueViolation maps a unique index collision on accounts to the matching repository error.
// It returns nil when err is not a unique violation.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgUniqueViolation {
			return nil
		}
		if pgErr.ConstraintName == model.AccountTaxIDIndex {
			return repository.ErrDuplicateIdentifier
		}

		return repository.ErrDuplicateEmail
	}

	msg := strings.ToLower(err.Error())
	if !errors.Is(err, gorm.ErrDuplicatedKey) &&
		!strings.Contains(msg, "unique constraint") &&
		!strings.Contains(msg, "duplicate key") {
		return nil
	}
	if strings.Contains(msg, "tax_id") {
		return repository.ErrDuplicateIdentifier
	}

	return repository.ErrDuplicateEmail
}
