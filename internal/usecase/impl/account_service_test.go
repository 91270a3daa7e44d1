package impl

import (
	"context"
	"testing"

	"examhub/internal/domain/entity"
	domainerrors "examhub/internal/domain/errors"
	"examhub/internal/domain/repository"
	mockRepo "examhub/internal/mocks/repository"
	mockSvc "examhub/internal/mocks/service"
	"examhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	tx          *txFixture
	accountRepo *mockRepo.MockAccountRepository
	imageStore  *mockSvc.MockImageStore
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	tx := newTxFixture(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)

	svc := NewAccountService(AccountServiceParams{
		TxManager:   tx.txManager,
		AccountRepo: accountRepo,
		ImageStore:  imageStore,
		Logger:      newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:     svc,
		tx:          tx,
		accountRepo: accountRepo,
		imageStore:  imageStore,
	}
}

func TestAccountService_Get(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	account := activeWorker("ana@example.com", "h")

	fx.accountRepo.EXPECT().FindByID(ctx, entity.AccountKindWorker, account.ID).Return(account, nil)

	got, err := fx.service.Get(ctx, entity.AccountKindWorker, account.ID)

	require.NoError(t, err)
	assert.Equal(t, account, got)
}

func TestAccountService_Get_NotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.accountRepo.EXPECT().FindByID(ctx, entity.AccountKindCompany, id).Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.Get(ctx, entity.AccountKindCompany, id)

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_List_NormalizesPage(t *testing.T) {
	tests := []struct {
		name       string
		page       usecase.Page
		wantOffset int
		wantLimit  int
		wantPage   int
	}{
		{name: "defaults", page: usecase.Page{}, wantOffset: 0, wantLimit: 10, wantPage: 1},
		{name: "third page", page: usecase.Page{Page: 3, Limit: 20}, wantOffset: 40, wantLimit: 20, wantPage: 3},
		{name: "limit capped", page: usecase.Page{Page: 1, Limit: 500}, wantOffset: 0, wantLimit: 100, wantPage: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountService(t)
			ctx := context.Background()
			items := []*entity.Account{activeWorker("a@example.com", "h")}

			fx.accountRepo.EXPECT().
				List(ctx, repository.AccountFilter{Kind: entity.AccountKindWorker, Offset: tt.wantOffset, Limit: tt.wantLimit}).
				Return(items, int64(41), nil)

			got, err := fx.service.List(ctx, entity.AccountKindWorker, tt.page)

			require.NoError(t, err)
			assert.Equal(t, items, got.Items)
			assert.Equal(t, int64(41), got.Total)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}

func TestAccountService_Search(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.accountRepo.EXPECT().
		List(ctx, repository.AccountFilter{Kind: entity.AccountKindCompany, NameSearch: "acme", Limit: 10}).
		Return(nil, int64(0), nil)

	got, err := fx.service.Search(ctx, entity.AccountKindCompany, "  acme ", usecase.Page{})

	require.NoError(t, err)
	assert.Zero(t, got.Total)

	_, err = fx.service.Search(ctx, entity.AccountKindCompany, " ", usecase.Page{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_Update_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	account := activeWorker("ana@example.com", "h")
	editor := entity.RoleEditor

	fx.tx.expectTx(1)
	fx.tx.accountRepo.EXPECT().FindByID(ctx, entity.AccountKindWorker, account.ID).Return(account, nil)
	fx.tx.accountRepo.EXPECT().FindByEmail(ctx, "ana.souza@example.com").Return(nil, repository.ErrAccountNotFound)
	fx.tx.accountRepo.EXPECT().ExistsByTaxID(ctx, entity.AccountKindWorker, "98765432100", account.ID).Return(false, nil)
	fx.tx.accountRepo.EXPECT().Update(ctx, account).Return(nil)

	got, err := fx.service.Update(ctx, entity.AccountKindWorker, account.ID, &usecase.UpdateAccountInput{
		Name:    strPtr(" Ana S. Souza "),
		Email:   strPtr("Ana.Souza@example.com"),
		TaxID:   strPtr("987.654.321-00"),
		Address: &entity.Address{City: "Campinas"},
		Role:    &editor,
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana S. Souza", got.Name)
	assert.Equal(t, "ana.souza@example.com", got.Email)
	assert.Equal(t, "98765432100", got.TaxID)
	assert.Equal(t, "Campinas", got.Address.City)
	assert.Equal(t, entity.RoleEditor, got.Role)
}

func TestAccountService_Update_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	account := activeWorker("ana@example.com", "h")
	other := activeWorker("bia@example.com", "h")

	fx.tx.expectTx(1)
	fx.tx.accountRepo.EXPECT().FindByID(ctx, entity.AccountKindWorker, account.ID).Return(account, nil)
	fx.tx.accountRepo.EXPECT().FindByEmail(ctx, "bia@example.com").Return(other, nil)

	_, err := fx.service.Update(ctx, entity.AccountKindWorker, account.ID, &usecase.UpdateAccountInput{Email: strPtr("bia@example.com")})

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
}

func TestAccountService_Update_DuplicateIdentifier(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	account := activeWorker("ana@example.com", "h")

	fx.tx.expectTx(1)
	fx.tx.accountRepo.EXPECT().FindByID(ctx, entity.AccountKindWorker, account.ID).Return(account, nil)
	fx.tx.accountRepo.EXPECT().ExistsByTaxID(ctx, entity.AccountKindWorker, "11111111111", account.ID).Return(true, nil)

	_, err := fx.service.Update(ctx, entity.AccountKindWorker, account.ID, &usecase.UpdateAccountInput{TaxID: strPtr("111.111.111-11")})

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateIdentifier)
}

func TestAccountService_Update_RoleRules(t *testing.T) {
	t.Run("company cannot take a role", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		company := &entity.Account{ID: uuid.New(), Kind: entity.AccountKindCompany, Email: "rh@acme.com"}
		admin := entity.RoleAdmin

		fx.tx.expectTx(1)
		fx.tx.accountRepo.EXPECT().FindByID(ctx, entity.AccountKindCompany, company.ID).Return(company, nil)

		_, err := fx.service.Update(ctx, entity.AccountKindCompany, company.ID, &usecase.UpdateAccountInput{Role: &admin})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("worker cannot take the company role", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()
		worker := activeWorker("ana@example.com", "h")
		role := entity.RoleCompany

		fx.tx.expectTx(1)
		fx.tx.accountRepo.EXPECT().FindByID(ctx, entity.AccountKindWorker, worker.ID).Return(worker, nil)

		_, err := fx.service.Update(ctx, entity.AccountKindWorker, worker.ID, &usecase.UpdateAccountInput{Role: &role})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestAccountService_Update_NotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.tx.expectTx(1)
	fx.tx.accountRepo.EXPECT().FindByID(ctx, entity.AccountKindWorker, id).Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.Update(ctx, entity.AccountKindWorker, id, &usecase.UpdateAccountInput{Name: strPtr("x")})

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_Delete_RemovesExamsAndFiles(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	account := activeWorker("ana@example.com", "h")
	examA, examB := uuid.New(), uuid.New()

	fx.tx.expectTx(1)
	fx.tx.accountRepo.EXPECT().FindByID(ctx, entity.AccountKindWorker, account.ID).Return(account, nil)
	fx.tx.examRepo.EXPECT().DeleteByAccount(ctx, account.ID).Return([]uuid.UUID{examA, examB}, nil)
	fx.tx.accountRepo.EXPECT().Delete(ctx, entity.AccountKindWorker, account.ID).Return(nil)
	fx.imageStore.EXPECT().DeletePrefix(ctx, "exams/"+examA.String()+"/").Return([]string{"exams/a/x.png"}, nil)
	fx.imageStore.EXPECT().DeletePrefix(ctx, "exams/"+examB.String()+"/").Return(nil, errors.New("bucket unavailable"))

	err := fx.service.Delete(ctx, entity.AccountKindWorker, account.ID)

	require.NoError(t, err)
}

func TestAccountService_Delete_NotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.tx.expectTx(1)
	fx.tx.accountRepo.EXPECT().FindByID(ctx, entity.AccountKindCompany, id).Return(nil, repository.ErrAccountNotFound)

	err := fx.service.Delete(ctx, entity.AccountKindCompany, id)

	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	fx.imageStore.AssertNotCalled(t, "DeletePrefix", mock.Anything, mock.Anything)
}
