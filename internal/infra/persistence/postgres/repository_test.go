package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"examhub/internal/domain/entity"
	"examhub/internal/domain/repository"
	"examhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.AccountModel{}, &model.ExamModel{}))

	return db
}

func newAccount(kind entity.AccountKind, email, taxID string) *entity.Account {
	return &entity.Account{
		Kind:      kind,
		Email:     email,
		Name:      "Account " + taxID,
		Phone:     "11999990000",
		TaxID:     taxID,
		CreatedAt: time.Now().UTC(),
	}
}

func TestAccountRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(newTestDB(t))

	account := newAccount(entity.AccountKindCompany, "HR@Acme.com ", "11222333000181")
	account.Address = &entity.Address{Street: "Rua A", City: "Recife", State: "PE"}
	require.NoError(t, repo.Create(ctx, account))
	assert.NotEqual(t, uuid.Nil, account.ID)

	found, err := repo.FindByEmail(ctx, "hr@acme.com")
	require.NoError(t, err)
	assert.Equal(t, account.ID, found.ID)
	assert.Equal(t, "hr@acme.com", found.Email)
	assert.False(t, found.Active)
	assert.Nil(t, found.PasswordHash)
	require.NotNil(t, found.Address)
	assert.Equal(t, "Recife", found.Address.City)

	byID, err := repo.FindByID(ctx, entity.AccountKindCompany, account.ID)
	require.NoError(t, err)
	assert.Equal(t, account.TaxID, byID.TaxID)

	_, err = repo.FindByID(ctx, entity.AccountKindWorker, account.ID)
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	_, err = repo.FindByEmail(ctx, "nobody@acme.com")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_CreateWithoutAddress(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(newTestDB(t))

	account := newAccount(entity.AccountKindWorker, "ana@example.com", "12345678901")
	require.NoError(t, repo.Create(ctx, account))

	found, err := repo.FindByEmail(ctx, account.Email)
	require.NoError(t, err)
	assert.Nil(t, found.Address)
}

func TestAccountRepository_UniqueIndexes(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, newAccount(entity.AccountKindWorker, "ana@example.com", "12345678901")))

	err := repo.Create(ctx, newAccount(entity.AccountKindCompany, "ana@example.com", "11222333000181"))
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail, "email is unique across kinds")

	err = repo.Create(ctx, newAccount(entity.AccountKindWorker, "bia@example.com", "12345678901"))
	assert.ErrorIs(t, err, repository.ErrDuplicateIdentifier)

	err = repo.Create(ctx, newAccount(entity.AccountKindCompany, "acme@example.com", "12345678901"))
	assert.NoError(t, err, "tax identifiers are scoped per kind")
}

func TestAccountRepository_ExistsByTaxID(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(newTestDB(t))

	account := newAccount(entity.AccountKindWorker, "ana@example.com", "12345678901")
	require.NoError(t, repo.Create(ctx, account))

	exists, err := repo.ExistsByTaxID(ctx, entity.AccountKindWorker, "12345678901", uuid.Nil)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByTaxID(ctx, entity.AccountKindWorker, "12345678901", account.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.ExistsByTaxID(ctx, entity.AccountKindCompany, "12345678901", uuid.Nil)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAccountRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(newTestDB(t))

	account := newAccount(entity.AccountKindWorker, "ana@example.com", "12345678901")
	require.NoError(t, repo.Create(ctx, account))

	hash := "$2a$04$hash"
	account.Active = true
	account.PasswordHash = &hash
	account.Name = "Ana Maria"
	require.NoError(t, repo.Update(ctx, account))

	found, err := repo.FindByID(ctx, entity.AccountKindWorker, account.ID)
	require.NoError(t, err)
	assert.True(t, found.Active)
	require.NotNil(t, found.PasswordHash)
	assert.Equal(t, hash, *found.PasswordHash)
	assert.Equal(t, "Ana Maria", found.Name)

	missing := newAccount(entity.AccountKindWorker, "ghost@example.com", "000")
	missing.ID = uuid.New()
	assert.ErrorIs(t, repo.Update(ctx, missing), repository.ErrAccountNotFound)
}

func TestAccountRepository_ListAndSearch(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(newTestDB(t))

	for i, name := range []string{"Carla", "ana", "Bruno", "Mariana"} {
		account := newAccount(entity.AccountKindWorker, fmt.Sprintf("w%d@example.com", i), fmt.Sprintf("tax-%d", i))
		account.Name = name
		require.NoError(t, repo.Create(ctx, account))
	}
	require.NoError(t, repo.Create(ctx, newAccount(entity.AccountKindCompany, "c@example.com", "tax-c")))

	page, total, err := repo.List(ctx, repository.AccountFilter{Kind: entity.AccountKindWorker, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	require.Len(t, page, 2)

	found, total, err := repo.List(ctx, repository.AccountFilter{Kind: entity.AccountKindWorker, NameSearch: "ANA", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, found, 2)

	offset, _, err := repo.List(ctx, repository.AccountFilter{Kind: entity.AccountKindWorker, Offset: 3, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, offset, 1)
}

func TestAccountRepository_DeleteInactiveCreatedBefore(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(newTestDB(t))
	now := time.Now().UTC()

	stale := newAccount(entity.AccountKindWorker, "stale@example.com", "1")
	stale.CreatedAt = now.Add(-48 * time.Hour)
	require.NoError(t, repo.Create(ctx, stale))

	activeOld := newAccount(entity.AccountKindWorker, "active@example.com", "2")
	activeOld.CreatedAt = now.Add(-48 * time.Hour)
	activeOld.Active = true
	require.NoError(t, repo.Create(ctx, activeOld))

	fresh := newAccount(entity.AccountKindCompany, "fresh@example.com", "3")
	fresh.CreatedAt = now
	require.NoError(t, repo.Create(ctx, fresh))

	deleted, err := repo.DeleteInactiveCreatedBefore(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{stale.ID}, deleted)

	_, err = repo.FindByEmail(ctx, "stale@example.com")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	pending, err := repo.CountByKind(ctx, entity.AccountKindCompany, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pending)
}

func TestAccountRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(newTestDB(t))

	account := newAccount(entity.AccountKindWorker, "ana@example.com", "1")
	require.NoError(t, repo.Create(ctx, account))

	assert.ErrorIs(t, repo.Delete(ctx, entity.AccountKindCompany, account.ID), repository.ErrAccountNotFound)
	require.NoError(t, repo.Delete(ctx, entity.AccountKindWorker, account.ID))
	assert.ErrorIs(t, repo.Delete(ctx, entity.AccountKindWorker, account.ID), repository.ErrAccountNotFound)
}

func TestExamRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewExamRepository(newTestDB(t))

	workerID, companyID, otherWorker := uuid.New(), uuid.New(), uuid.New()
	day := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	nextDay := day.AddDate(0, 0, 1)

	first := &entity.Exam{Description: "Audiometry", ExamDate: &day, WorkerID: workerID, CompanyID: companyID}
	second := &entity.Exam{Description: "Blood test", ExamDate: &nextDay, WorkerID: otherWorker, CompanyID: companyID}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	byWorker, total, err := repo.List(ctx, repository.ExamFilter{WorkerID: workerID, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, byWorker, 1)
	assert.Equal(t, first.ID, byWorker[0].ID)

	filterDay := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	byDate, total, err := repo.List(ctx, repository.ExamFilter{CompanyID: companyID, Date: &filterDay, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, byDate, 1)
	assert.Equal(t, second.ID, byDate[0].ID)

	first.ImageUploaded = true
	require.NoError(t, repo.Update(ctx, first))
	withImages, err := repo.Count(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), withImages)

	removed, err := repo.DeleteByAccount(ctx, companyID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{first.ID, second.ID}, removed)

	_, err = repo.FindByID(ctx, first.ID)
	assert.ErrorIs(t, err, repository.ErrExamNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), repository.ErrExamNotFound)
}

func TestExamRepository_DeleteByAccounts(t *testing.T) {
	ctx := context.Background()
	repo := NewExamRepository(newTestDB(t))

	workerA, workerB, companyID := uuid.New(), uuid.New(), uuid.New()
	kept := &entity.Exam{Description: "Audiometry", WorkerID: uuid.New(), CompanyID: uuid.New()}
	byA := &entity.Exam{Description: "Blood test", WorkerID: workerA, CompanyID: uuid.New()}
	byCompany := &entity.Exam{Description: "X-ray", WorkerID: uuid.New(), CompanyID: companyID}
	for _, exam := range []*entity.Exam{kept, byA, byCompany} {
		require.NoError(t, repo.Create(ctx, exam))
	}

	none, err := repo.DeleteByAccounts(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)

	removed, err := repo.DeleteByAccounts(ctx, []uuid.UUID{workerA, workerB, companyID})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{byA.ID, byCompany.ID}, removed)

	_, err = repo.FindByID(ctx, kept.ID)
	assert.NoError(t, err)
}

func TestTransactionManager_PurgesPendingAccountWithExams(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	now := time.Now().UTC()

	pending := newAccount(entity.AccountKindWorker, "late@example.com", "1")
	pending.CreatedAt = now.Add(-48 * time.Hour)
	require.NoError(t, NewAccountRepository(db).Create(ctx, pending))
	exam := &entity.Exam{Description: "Audiometry", WorkerID: pending.ID, CompanyID: uuid.New(), ImageUploaded: true}
	require.NoError(t, NewExamRepository(db).Create(ctx, exam))

	var examIDs []uuid.UUID
	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		accountIDs, err := factory.AccountRepo().DeleteInactiveCreatedBefore(ctx, now.Add(-24*time.Hour))
		if err != nil {
			return err
		}
		examIDs, err = factory.ExamRepo().DeleteByAccounts(ctx, accountIDs)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{exam.ID}, examIDs)

	var remaining int64
	require.NoError(t, db.Model(&model.ExamModel{}).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	errBoom := errors.New("boom")

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.AccountRepo().Create(ctx, newAccount(entity.AccountKindWorker, "ana@example.com", "1")); err != nil {
			return err
		}

		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	_, err = NewAccountRepository(db).FindByEmail(ctx, "ana@example.com")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	err = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.AccountRepo().Create(ctx, newAccount(entity.AccountKindWorker, "ana@example.com", "1"))
	})
	require.NoError(t, err)

	_, err = NewAccountRepository(db).FindByEmail(ctx, "ana@example.com")
	assert.NoError(t, err)
}
