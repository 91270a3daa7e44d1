package handler

import (
	"log/slog"
	"net/http"
	"time"

	"examhub/config"
	"examhub/internal/delivery/api/response"
	"examhub/internal/delivery/api/validator"
	deliverycontext "examhub/internal/delivery/context"
	"examhub/internal/domain/entity"
	"examhub/internal/usecase"
	"examhub/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	minPurgeWindow = time.Hour
	maxPurgeWindow = 30 * 24 * time.Hour
)

// LifecycleHandlerParams holds dependencies for LifecycleHandler, injected by Fx.
type LifecycleHandlerParams struct {
	fx.In

	LifecycleUC usecase.LifecycleUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// LifecycleHandler serves registration, activation, credential reset, login and the pending purge.
type LifecycleHandler struct {
	lifecycleUC usecase.LifecycleUsecase
	cfg         *config.Config
	logger      *slog.Logger
}

// NewLifecycleHandler is the constructor for LifecycleHandler
func NewLifecycleHandler(params LifecycleHandlerParams) *LifecycleHandler {
	return &LifecycleHandler{
		lifecycleUC: params.LifecycleUC,
		cfg:         params.Config,
		logger:      params.Logger,
	}
}

// RegisterRequest is the body of a worker or company registration.
type RegisterRequest struct {
	Email   string          `json:"email" validate:"required,email,max=254"`
	Name    string          `json:"name" validate:"required,max=200"`
	Phone   string          `json:"phone" validate:"omitempty,max=32"`
	TaxID   string          `json:"tax_id" validate:"required,taxid"`
	Address *entity.Address `json:"address"`
}

// TokenPasswordRequest carries a lifecycle token and the credential to set.
type TokenPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,strong_password"`
}

// EmailRequest carries only an email address.
type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token     string             `json:"token"`
	TokenType string             `json:"token_type"`
	ExpiresIn int64              `json:"expires_in"`
	AccountID string             `json:"account_id"`
	Kind      entity.AccountKind `json:"kind"`
	Role      entity.Role        `json:"role"`
}

// PurgeResponse reports how many pending accounts were removed.
type PurgeResponse struct {
	Deleted int64  `json:"deleted"`
	Window  string `json:"window"`
}

// RegisterWorker handles POST /workers/register
func (h *LifecycleHandler) RegisterWorker(c echo.Context) error {
	return h.register(c, entity.AccountKindWorker)
}

// RegisterCompany handles POST /companies/register
func (h *LifecycleHandler) RegisterCompany(c echo.Context) error {
	return h.register(c, entity.AccountKindCompany)
}

func (h *LifecycleHandler) register(c echo.Context, kind entity.AccountKind) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Details(err))
	}

	account, err := h.lifecycleUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Kind:    kind,
		Email:   req.Email,
		Name:    req.Name,
		Phone:   req.Phone,
		TaxID:   req.TaxID,
		Address: req.Address,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newAccountResponse(account))
}

// Confirm handles POST /accounts/confirm
func (h *LifecycleHandler) Confirm(c echo.Context) error {
	var req TokenPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid confirmation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Details(err))
	}

	if err := h.lifecycleUC.Confirm(c.Request().Context(), req.Token, req.Password); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Account activated"})
}

// ResendActivation handles POST /accounts/resend-activation
func (h *LifecycleHandler) ResendActivation(c echo.Context) error {
	var req EmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Details(err))
	}

	if err := h.lifecycleUC.ResendActivation(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Activation email sent"})
}

// RequestCredentialReset handles POST /accounts/password-reset
func (h *LifecycleHandler) RequestCredentialReset(c echo.Context) error {
	var req EmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Details(err))
	}

	if err := h.lifecycleUC.RequestCredentialReset(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password reset email sent"})
}

// ConfirmCredentialReset handles POST /accounts/password-reset/confirm
func (h *LifecycleHandler) ConfirmCredentialReset(c echo.Context) error {
	var req TokenPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Details(err))
	}

	if err := h.lifecycleUC.ConfirmCredentialReset(c.Request().Context(), req.Token, req.Password); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Password updated"})
}

// Login handles POST /auth/login
func (h *LifecycleHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Details(err))
	}

	out, err := h.lifecycleUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	expiresIn := int64(time.Until(out.ExpiresAt).Seconds())
	if expiresIn < 0 {
		expiresIn = 0
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		Token:     out.Token,
		TokenType: out.TokenType,
		ExpiresIn: expiresIn,
		AccountID: out.Account.ID.String(),
		Kind:      out.Account.Kind,
		Role:      out.Account.SessionRole(),
	})
}

// PurgePending handles DELETE /accounts/pending?window=720h
func (h *LifecycleHandler) PurgePending(c echo.Context) error {
	window := h.defaultPurgeWindow()
	if raw := c.QueryParam("window"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return response.ValidationError(c, map[string]string{"window": "duration"})
		}
		window = parsed
	}

	if window < minPurgeWindow || window > maxPurgeWindow {
		return response.ValidationError(c, map[string]string{"window": "range"})
	}

	deleted, err := h.lifecycleUC.PurgeExpiredPending(c.Request().Context(), window)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if accountID, ok := deliverycontext.GetAccountID(c); ok {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Pending accounts purged",
			slog.String("admin_id", accountID.String()),
			slog.Int64("deleted", deleted),
			slog.String("window", util.FormatDuration(window)),
		)
	}

	return response.Success(c, http.StatusOK, PurgeResponse{Deleted: deleted, Window: util.FormatDuration(window)})
}

func (h *LifecycleHandler) defaultPurgeWindow() time.Duration {
	if h.cfg.Maintenance != nil && h.cfg.Maintenance.PendingRetention > 0 {
		return min(h.cfg.Maintenance.PendingRetention, maxPurgeWindow)
	}

	return maxPurgeWindow
}
