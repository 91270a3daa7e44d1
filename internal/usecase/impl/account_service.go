package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "examhub/internal/delivery/context"
	"examhub/internal/domain/entity"
	domainerrors "examhub/internal/domain/errors"
	"examhub/internal/domain/repository"
	"examhub/internal/domain/service"
	"examhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	imageStore  service.ImageStore
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	ImageStore  service.ImageStore
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		imageStore:  params.ImageStore,
		logger:      params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get retrieves one account of the given kind.
func (srv *accountService) Get(ctx context.Context, kind entity.AccountKind, id uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, kind, id)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to get account")
	}

	return account, nil
}

// List returns one page of accounts of the given kind ordered by name.
func (srv *accountService) List(ctx context.Context, kind entity.AccountKind, page usecase.Page) (*usecase.AccountPage, error) {
	return srv.list(ctx, kind, "", page)
}

// Search returns accounts whose name contains query, case-insensitively.
func (srv *accountService) Search(ctx context.Context, kind entity.AccountKind, query string, page usecase.Page) (*usecase.AccountPage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, invalidInput("search query is required")
	}

	return srv.list(ctx, kind, query, page)
}

func (srv *accountService) list(ctx context.Context, kind entity.AccountKind, query string, page usecase.Page) (*usecase.AccountPage, error) {
	page = page.Normalize()

	items, total, err := srv.accountRepo.List(ctx, repository.AccountFilter{
		Kind:       kind,
		NameSearch: query,
		Offset:     page.Offset(),
		Limit:      page.Limit,
	})
	if err != nil {
		return nil, mapRepositoryError(err, "failed to list accounts")
	}

	return &usecase.AccountPage{
		Items: items,
		Total: total,
		Page:  page.Page,
		Limit: page.Limit,
	}, nil
}

// Update applies a partial update, re-checking email and tax identifier uniqueness when they change.
func (srv *accountService) Update(ctx context.Context, kind entity.AccountKind, id uuid.UUID, input *usecase.UpdateAccountInput) (*entity.Account, error) {
	if input == nil {
		return nil, invalidInput("update payload is required")
	}

	var updated *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(ctx, kind, id)
		if err != nil {
			return errors.Wrap(err, "failed to find account")
		}

		if err := srv.applyUpdate(ctx, accountRepo, account, input); err != nil {
			return err
		}

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to update account")
		}

		updated = account

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Account update failed", slog.Any("kind", kind), slog.Any("accountID", id), slog.Any("error", err))

		return nil, mapRepositoryError(err, "failed to execute account update transaction")
	}

	srv.log(ctx).Info("Account updated", slog.Any("kind", kind), slog.Any("accountID", id))

	return updated, nil
}

func (srv *accountService) applyUpdate(ctx context.Context, accountRepo repository.AccountRepository, account *entity.Account, input *usecase.UpdateAccountInput) error {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return invalidInput("name cannot be empty")
		}
		account.Name = name
	}

	if input.Phone != nil {
		account.Phone = strings.TrimSpace(*input.Phone)
	}

	if input.Email != nil {
		email := entity.NormalizeEmail(*input.Email)
		if err := validate.Var(email, "required,email,max=255"); err != nil {
			return invalidInput("a valid email is required")
		}

		if email != account.Email {
			existing, err := accountRepo.FindByEmail(ctx, email)
			switch {
			case err == nil && existing.ID != account.ID:
				return errors.Wrap(domainerrors.ErrDuplicateEmail, "email already registered")
			case err != nil && !errors.Is(err, repository.ErrAccountNotFound):
				return errors.Wrap(err, "failed to look up email")
			}
			account.Email = email
		}
	}

	if input.TaxID != nil {
		taxID := entity.NormalizeTaxID(*input.TaxID)
		if err := validate.Var(taxID, "required,alphanum,max=32"); err != nil {
			return invalidInput("a valid tax identifier is required")
		}

		if taxID != account.TaxID {
			taken, err := accountRepo.ExistsByTaxID(ctx, account.Kind, taxID, account.ID)
			if err != nil {
				return errors.Wrap(err, "failed to look up tax identifier")
			}
			if taken {
				return errors.Wrap(domainerrors.ErrDuplicateIdentifier, "tax identifier already registered")
			}
			account.TaxID = taxID
		}
	}

	if input.Address != nil {
		address := *input.Address
		account.Address = &address
	}

	if input.Active != nil {
		account.Active = *input.Active
	}

	if input.Role != nil {
		if account.Kind != entity.AccountKindWorker {
			return invalidInput("role can only be set on worker accounts")
		}
		if !input.Role.IsWorkerRole() {
			return invalidInput("role must be admin, editor or worker")
		}
		account.Role = *input.Role
	}

	return nil
}

// Delete removes an account together with its exams and their stored files.
func (srv *accountService) Delete(ctx context.Context, kind entity.AccountKind, id uuid.UUID) error {
	var examIDs []uuid.UUID
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		if _, err := accountRepo.FindByID(ctx, kind, id); err != nil {
			return errors.Wrap(err, "failed to find account")
		}

		var err error
		examIDs, err = repoFactory.ExamRepo().DeleteByAccount(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to delete account exams")
		}

		if err := accountRepo.Delete(ctx, kind, id); err != nil {
			return errors.Wrap(err, "failed to delete account")
		}

		return nil
	})
	if err != nil {
		return mapRepositoryError(err, "failed to execute account delete transaction")
	}

	srv.log(ctx).Info("Account deleted", slog.Any("kind", kind), slog.Any("accountID", id), slog.Int("exams", len(examIDs)))

	removeExamFiles(ctx, srv.imageStore, srv.log(ctx), examIDs)

	return nil
}
