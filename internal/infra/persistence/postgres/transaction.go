// Package postgres implements the account and exam repositories on GORM and PostgreSQL.
package postgres

import (
	"context"

	"examhub/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type txManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &txManager{db: db}
}

// Execute runs fn in one transaction. Errors returned by fn reach the caller
// unchanged so domain errors keep their identity; a panic rolls back and re-panics.
func (m *txManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepos{tx: tx})

		return fnErr
	})

	switch {
	case fnErr != nil:
		return fnErr
	case err != nil:
		return errors.Wrap(err, "transaction failed")
	}

	return nil
}

// txRepos hands out repositories bound to one transaction.
type txRepos struct {
	tx *gorm.DB
}

func (r txRepos) AccountRepo() repository.AccountRepository {
	return NewAccountRepository(r.tx)
}

func (r txRepos) ExamRepo() repository.ExamRepository {
	return NewExamRepository(r.tx)
}
