// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"examhub/config"
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

// Login failure reasons. They are logged and counted but never returned to the caller.
const (
	loginReasonNotFound     = "not_found"
	loginReasonNoCredential = "no_credential"
	loginReasonMismatch     = "mismatch"
	loginReasonNotActivated = "not_activated"
	loginOutcomeSuccess     = "success"
)

const (
	registrationCreated             = "created"
	registrationInvalidInput        = "invalid_input"
	registrationDuplicateEmail      = "duplicate_email"
	registrationDuplicateIdentifier = "duplicate_identifier"
	registrationFailed              = "error"
)

const tokenTypeBearer = "Bearer"

// registerRules holds the validator tags applied to registration input.
type registerRules struct {
	Kind  string `validate:"required,oneof=worker company"`
	Email string `validate:"required,email,max=255"`
	Name  string `validate:"required,max=255"`
	Phone string `validate:"max=32"`
	TaxID string `validate:"required,alphanum,max=32"`
}

// lifecycleService implements the LifecycleUsecase interface.
type lifecycleService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	imageStore   service.ImageStore
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mail         *mailDispatcher
	metrics      service.LifecycleMetrics
	now          func() time.Time
	logger       *slog.Logger
}

// LifecycleServiceParams holds dependencies for LifecycleService, injected by Fx.
type LifecycleServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	ImageStore   service.ImageStore
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Notifier     service.Notifier
	Renderer     service.MessageRenderer
	Metrics      service.LifecycleMetrics
	Config       *config.Config
	Logger       *slog.Logger
}

// NewLifecycleService is the constructor for lifecycleService.
func NewLifecycleService(params LifecycleServiceParams) usecase.LifecycleUsecase {
	var frontend config.FrontendConfig
	if params.Config != nil {
		frontend = params.Config.Frontend
	}

	return &lifecycleService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		imageStore:   params.ImageStore,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mail:         newMailDispatcher(params.Renderer, params.Notifier, params.Metrics, frontend),
		metrics:      params.Metrics,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *lifecycleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a pending account and mails the activation link.
func (srv *lifecycleService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Account, error) {
	if input == nil {
		return nil, invalidInput("registration payload is required")
	}

	account := &entity.Account{
		Kind:    input.Kind,
		Email:   entity.NormalizeEmail(input.Email),
		Name:    strings.TrimSpace(input.Name),
		Phone:   strings.TrimSpace(input.Phone),
		TaxID:   entity.NormalizeTaxID(input.TaxID),
		Address: input.Address,
		Active:  false,
	}
	if account.Kind == entity.AccountKindWorker {
		account.Role = entity.RoleWorker
	}

	rules := registerRules{
		Kind:  account.Kind.String(),
		Email: account.Email,
		Name:  account.Name,
		Phone: account.Phone,
		TaxID: account.TaxID,
	}
	if err := validate.Struct(rules); err != nil {
		srv.recordRegistration(account.Kind, registrationInvalidInput)

		return nil, validationError(err)
	}

	srv.log(ctx).Info("Starting registration", slog.Any("kind", account.Kind), slog.String("email", account.Email))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		_, err := accountRepo.FindByEmail(ctx, account.Email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrDuplicateEmail, "email already registered")
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to look up email")
		}

		taken, err := accountRepo.ExistsByTaxID(ctx, account.Kind, account.TaxID, uuid.Nil)
		if err != nil {
			return errors.Wrap(err, "failed to look up tax identifier")
		}
		if taken {
			return errors.Wrap(domainerrors.ErrDuplicateIdentifier, "tax identifier already registered")
		}

		if err := accountRepo.Create(ctx, account); err != nil {
			return errors.Wrap(err, "failed to create account")
		}

		return nil
	})
	if err != nil {
		mapped := mapRepositoryError(err, "failed to execute registration transaction")
		srv.recordRegistration(account.Kind, registrationOutcome(mapped))
		srv.log(ctx).Warn("Registration failed", slog.Any("kind", account.Kind), slog.String("email", account.Email), slog.Any("error", err))

		return nil, mapped
	}

	srv.recordRegistration(account.Kind, registrationCreated)
	srv.log(ctx).Info("Account registered", slog.Any("kind", account.Kind), slog.Any("accountID", account.ID))

	srv.sendLifecycleMail(ctx, account, service.PurposeActivation)

	return account, nil
}

// Confirm activates the account named by an activation token and stores its first credential.
func (srv *lifecycleService) Confirm(ctx context.Context, token, password string) error {
	claims, err := srv.verifyLifecycleToken(ctx, token, service.PurposeActivation)
	if err != nil {
		return err
	}

	hash, err := srv.hashPassword(password)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := srv.findTokenAccount(ctx, accountRepo, claims)
		if err != nil {
			return err
		}

		if account.Active {
			srv.log(ctx).Info("Account already active, confirmation ignored", slog.Any("accountID", account.ID))

			return nil
		}

		account.Active = true
		account.PasswordHash = &hash

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to activate account")
		}

		srv.log(ctx).Info("Account activated", slog.Any("accountID", account.ID), slog.Any("kind", account.Kind))

		return nil
	})

	return mapRepositoryError(err, "failed to execute confirmation transaction")
}

// ResendActivation mails a fresh activation link to a pending account.
func (srv *lifecycleService) ResendActivation(ctx context.Context, email string) error {
	account, err := srv.findByEmail(ctx, email)
	if err != nil {
		return err
	}

	if account.Active {
		srv.log(ctx).Info("Account already active, activation not resent", slog.Any("accountID", account.ID))

		return nil
	}

	srv.sendLifecycleMail(ctx, account, service.PurposeActivation)

	return nil
}

// RequestCredentialReset mails a reset link. Pending accounts may use it too.
func (srv *lifecycleService) RequestCredentialReset(ctx context.Context, email string) error {
	account, err := srv.findByEmail(ctx, email)
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Credential reset requested", slog.Any("accountID", account.ID), slog.Bool("active", account.Active))
	srv.sendLifecycleMail(ctx, account, service.PurposeReset)

	return nil
}

// ConfirmCredentialReset replaces the credential of the account named by a reset token.
func (srv *lifecycleService) ConfirmCredentialReset(ctx context.Context, token, newPassword string) error {
	claims, err := srv.verifyLifecycleToken(ctx, token, service.PurposeReset)
	if err != nil {
		return err
	}

	hash, err := srv.hashPassword(newPassword)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := srv.findTokenAccount(ctx, accountRepo, claims)
		if err != nil {
			return err
		}

		account.PasswordHash = &hash

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to replace credential")
		}

		srv.log(ctx).Info("Credential replaced", slog.Any("accountID", account.ID))

		return nil
	})

	return mapRepositoryError(err, "failed to execute credential reset transaction")
}

// Login authenticates an active account and issues a session token.
func (srv *lifecycleService) Login(ctx context.Context, email, password string) (*usecase.LoginOutput, error) {
	email = entity.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, invalidInput("email and password are required")
	}

	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, srv.rejectLogin(ctx, email, loginReasonNotFound)
		}

		return nil, mapRepositoryError(err, "failed to load login account")
	}

	// Check the credential outside any transaction; bcrypt is CPU-bound.
	if !account.HasCredential() {
		return nil, srv.rejectLogin(ctx, email, loginReasonNoCredential)
	}
	if !srv.hasher.Check(password, *account.PasswordHash) {
		return nil, srv.rejectLogin(ctx, email, loginReasonMismatch)
	}
	if !account.Active {
		return nil, srv.rejectLogin(ctx, email, loginReasonNotActivated)
	}

	token, expiresAt, err := srv.tokenService.IssueSessionToken(account)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	srv.recordLogin(loginOutcomeSuccess)
	srv.log(ctx).Info("Account logged in", slog.Any("accountID", account.ID), slog.Any("kind", account.Kind))

	return &usecase.LoginOutput{
		Token:     token,
		TokenType: tokenTypeBearer,
		ExpiresAt: expiresAt,
		Account:   account,
	}, nil
}

// PurgeExpiredPending deletes inactive accounts created more than window ago,
// together with the exams they take part in and those exams' stored files.
func (srv *lifecycleService) PurgeExpiredPending(ctx context.Context, window time.Duration) (int64, error) {
	if window <= 0 {
		return 0, invalidInput("window must be positive")
	}

	cutoff := srv.now().Add(-window)

	var accountIDs, examIDs []uuid.UUID
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error

		accountIDs, err = repoFactory.AccountRepo().DeleteInactiveCreatedBefore(ctx, cutoff)
		if err != nil {
			return errors.Wrap(err, "failed to delete pending accounts")
		}
		if len(accountIDs) == 0 {
			return nil
		}

		examIDs, err = repoFactory.ExamRepo().DeleteByAccounts(ctx, accountIDs)
		if err != nil {
			return errors.Wrap(err, "failed to delete exams of pending accounts")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to purge pending accounts", slog.Time("cutoff", cutoff), slog.Any("error", err))

		return 0, mapRepositoryError(err, "failed to execute purge transaction")
	}

	removeExamFiles(ctx, srv.imageStore, srv.log(ctx), examIDs)

	deleted := int64(len(accountIDs))
	if srv.metrics != nil {
		srv.metrics.RecordPurge(deleted)
	}
	srv.log(ctx).Info("Purged pending accounts",
		slog.Int64("deleted", deleted),
		slog.Int("exams", len(examIDs)),
		slog.Time("cutoff", cutoff),
	)

	return deleted, nil
}

func (srv *lifecycleService) findByEmail(ctx context.Context, email string) (*entity.Account, error) {
	email = entity.NormalizeEmail(email)
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, invalidInput("a valid email is required")
	}

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, mapRepositoryError(err, "failed to find account by email")
	}

	return account, nil
}

func (srv *lifecycleService) findTokenAccount(ctx context.Context, accountRepo repository.AccountRepository, claims *service.LifecycleClaims) (*entity.Account, error) {
	account, err := accountRepo.FindByEmail(ctx, claims.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find token account")
	}

	if claims.Kind != "" && account.Kind != claims.Kind {
		srv.log(ctx).Warn("Token kind does not match account", slog.Any("tokenKind", claims.Kind), slog.Any("accountKind", account.Kind))

		return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "token kind mismatch")
	}

	return account, nil
}

func (srv *lifecycleService) verifyLifecycleToken(ctx context.Context, token string, purpose service.LifecyclePurpose) (*service.LifecycleClaims, error) {
	if strings.TrimSpace(token) == "" {
		return nil, invalidInput("token is required")
	}

	claims, err := srv.tokenService.VerifyLifecycleToken(token, purpose)
	if err != nil {
		srv.log(ctx).Warn("Lifecycle token rejected", slog.Any("purpose", purpose), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInvalidOrExpiredToken, err.Error())
	}

	return claims, nil
}

func (srv *lifecycleService) hashPassword(password string) (string, error) {
	if password == "" {
		return "", invalidInput("password is required")
	}
	if err := srv.hasher.ValidatePasswordStrength(password); err != nil {
		return "", passwordError(err)
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}

	return hash, nil
}

func (srv *lifecycleService) sendLifecycleMail(ctx context.Context, account *entity.Account, purpose service.LifecyclePurpose) {
	kind, path := service.MessageActivation, srv.mail.frontend.ActivationPath
	if purpose == service.PurposeReset {
		kind, path = service.MessageReset, srv.mail.frontend.ResetPath
	}

	token, err := srv.tokenService.IssueLifecycleToken(account, purpose)
	if err != nil {
		srv.log(ctx).Error("Failed to issue lifecycle token", slog.Any("purpose", purpose), slog.Any("accountID", account.ID), slog.Any("error", err))
		srv.mail.record(kind, mailOutcomeTokenFailed)

		return
	}

	srv.mail.dispatch(ctx, srv.log(ctx), kind, account.Email, service.MessageData{
		Name: account.Name,
		Link: srv.mail.link(path, token),
	})
}

func (srv *lifecycleService) rejectLogin(ctx context.Context, email, reason string) error {
	srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", reason))
	srv.recordLogin(reason)

	return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
}

func (srv *lifecycleService) recordLogin(outcome string) {
	if srv.metrics != nil {
		srv.metrics.RecordLogin(outcome)
	}
}

func (srv *lifecycleService) recordRegistration(kind entity.AccountKind, outcome string) {
	if srv.metrics != nil {
		srv.metrics.RecordRegistration(kind, outcome)
	}
}

func registrationOutcome(err error) string {
	switch {
	case errors.Is(err, domainerrors.ErrDuplicateEmail):
		return registrationDuplicateEmail
	case errors.Is(err, domainerrors.ErrDuplicateIdentifier):
		return registrationDuplicateIdentifier
	case errors.Is(err, domainerrors.ErrValidationFailed):
		return registrationInvalidInput
	default:
		return registrationFailed
	}
}
