package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"examhub/config"
	"examhub/internal/domain/repository"
	mockRepo "examhub/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

const txFuncType = "func(repository.RepositoryFactory) error"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
		Frontend: config.FrontendConfig{
			BaseURL:        "https://app.example.com/",
			ActivationPath: "/redefine-senha",
			ResetPath:      "/redefine-senha",
			ExamPath:       "/exames",
		},
	}
}

// txFixture runs transactional callbacks against mock repositories.
type txFixture struct {
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	accountRepo *mockRepo.MockAccountRepository
	examRepo    *mockRepo.MockExamRepository
}

func newTxFixture(t *testing.T) *txFixture {
	t.Helper()

	return &txFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
		examRepo:    mockRepo.NewMockExamRepository(t),
	}
}

// expectTx makes Execute invoke its callback with the mock factory.
// Factory accessors are optional so callbacks may use either repository.
func (f *txFixture) expectTx(times int) {
	f.factory.EXPECT().AccountRepo().Return(f.accountRepo).Maybe()
	f.factory.EXPECT().ExamRepo().Return(f.examRepo).Maybe()

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType(txFuncType)).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).
		Times(times)
}
