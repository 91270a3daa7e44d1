package postgres

import (
	"context"
	"strings"
	"time"

	"examhub/internal/domain/entity"
	"examhub/internal/domain/repository"
	"examhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves an account of the given kind by id.
func (repo *accountRepository) FindByID(ctx context.Context, kind entity.AccountKind, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND kind = ?", id, kind.String()).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves an account of either kind by its normalized email.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", entity.NormalizeEmail(email)).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// ExistsByTaxID reports whether the tax identifier is taken within the kind.
func (repo *accountRepository) ExistsByTaxID(ctx context.Context, kind entity.AccountKind, taxID string, excludeID uuid.UUID) (bool, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("kind = ? AND tax_id = ?", kind.String(), taxID)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check tax identifier")
	}

	return count > 0, nil
}

// Create persists a new account. A missing id is generated here.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if dupErr := uniqueViolation(err); dupErr != nil {
			return dupErr
		}

		return errors.Wrap(err, "failed to create account")
	}

	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update overwrites every mutable column of the account.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)
	accountM.UpdatedAt = time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ? AND kind = ?", account.ID, account.Kind.String()).
		Select("*").
		Omit("id", "kind", "created_at").
		Updates(accountM)
	if result.Error != nil {
		if dupErr := uniqueViolation(result.Error); dupErr != nil {
			return dupErr
		}

		return errors.Wrap(result.Error, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Delete removes an account of the given kind.
func (repo *accountRepository) Delete(ctx context.Context, kind entity.AccountKind, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND kind = ?", id, kind.String()).
		Delete(&model.AccountModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// List returns one page of accounts ordered by name.
func (repo *accountRepository) List(ctx context.Context, filter repository.AccountFilter) ([]*entity.Account, int64, error) {
	scope := func(tx *gorm.DB) *gorm.DB {
		tx = tx.Where("kind = ?", filter.Kind.String())
		if search := strings.TrimSpace(filter.NameSearch); search != "" {
			tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
		}

		return tx
	}

	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.AccountModel{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count accounts")
	}

	var accountMs []model.AccountModel
	err := repo.db.WithContext(ctx).
		Scopes(scope).
		Order("name ASC").Order("id ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&accountMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountMs))
	for i := range accountMs {
		accounts = append(accounts, toAccountDomain(&accountMs[i]))
	}

	return accounts, total, nil
}

// DeleteInactiveCreatedBefore removes pending accounts older than cutoff and returns their ids.
func (repo *accountRepository) DeleteInactiveCreatedBefore(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("active = ? AND created_at < ?", false, cutoff).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to collect pending accounts")
	}
	if len(ids) == 0 {
		return nil, nil
	}

	// active is checked again so an account activated in between survives.
	result := repo.db.WithContext(ctx).
		Where("id IN ? AND active = ?", ids, false).
		Delete(&model.AccountModel{})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to delete pending accounts")
	}
	if result.RowsAffected != int64(len(ids)) {
		return nil, errors.Errorf("pending accounts changed during purge: expected %d, deleted %d", len(ids), result.RowsAffected)
	}

	return ids, nil
}

// CountByKind counts accounts of a kind, optionally only the pending ones.
func (repo *accountRepository) CountByKind(ctx context.Context, kind entity.AccountKind, onlyInactive bool) (int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.AccountModel{}).Where("kind = ?", kind.String())
	if onlyInactive {
		query = query.Where("active = ?", false)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count accounts")
	}

	return count, nil
}

func toAccountDomain(accountM *model.AccountModel) *entity.Account {
	return &entity.Account{
		ID:           accountM.ID,
		Kind:         entity.AccountKind(accountM.Kind),
		Email:        accountM.Email,
		PasswordHash: accountM.PasswordHash,
		Active:       accountM.Active,
		Name:         accountM.Name,
		Phone:        accountM.Phone,
		TaxID:        accountM.TaxID,
		Address:      accountM.Address.Data(),
		Role:         entity.Role(accountM.Role),
		CreatedAt:    accountM.CreatedAt,
		UpdatedAt:    accountM.UpdatedAt,
	}
}

func fromAccountDomain(account *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:           account.ID,
		Kind:         account.Kind.String(),
		Email:        entity.NormalizeEmail(account.Email),
		PasswordHash: account.PasswordHash,
		Active:       account.Active,
		Name:         account.Name,
		Phone:        account.Phone,
		TaxID:        account.TaxID,
		Address:      datatypes.NewJSONType(account.Address),
		Role:         account.Role.String(),
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}
}
