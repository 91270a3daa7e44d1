package repository

import "context"

// TransactionManager runs a unit of work atomically. Usecases use it for
// every operation that touches more than one row or table.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise, including on panic.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repositories bound to the running transaction.
type RepositoryFactory interface {
	AccountRepo() AccountRepository
	ExamRepo() ExamRepository
}
