package handler

import (
	"log/slog"
	"net/http"

	"examhub/internal/delivery/api/response"
	"examhub/internal/delivery/api/validator"
	deliverycontext "examhub/internal/delivery/context"
	"examhub/internal/domain/entity"
	domainerrors "examhub/internal/domain/errors"
	"examhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves the worker and company directories.
// Every route is bound to one kind through the closures returned by its methods.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// SearchQuery binds GET .../search
type SearchQuery struct {
	Query string `query:"q" validate:"required,max=200"`
	Page  int    `query:"page" validate:"omitempty,min=1"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// UpdateAccountRequest is a partial update; omitted fields keep their value.
type UpdateAccountRequest struct {
	Name    *string         `json:"name" validate:"omitempty,min=1,max=200"`
	Email   *string         `json:"email" validate:"omitempty,email,max=254"`
	Phone   *string         `json:"phone" validate:"omitempty,max=32"`
	TaxID   *string         `json:"tax_id" validate:"omitempty,taxid"`
	Address *entity.Address `json:"address"`
	Active  *bool           `json:"active"`
	Role    *entity.Role    `json:"role" validate:"omitempty,oneof=admin editor worker"`
}

// List handles GET /{workers|companies}
func (h *AccountHandler) List(kind entity.AccountKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		var query PageQuery
		if err := c.Bind(&query); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid pagination parameters")
		}

		if err := c.Validate(&query); err != nil {
			return response.ValidationError(c, validator.Details(err))
		}

		page, err := h.accountUC.List(c.Request().Context(), kind, usecase.Page{Page: query.Page, Limit: query.Limit})
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, accountPageData(page))
	}
}

// Search handles GET /{workers|companies}/search?q=
func (h *AccountHandler) Search(kind entity.AccountKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		var query SearchQuery
		if err := c.Bind(&query); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid search parameters")
		}

		if err := c.Validate(&query); err != nil {
			return response.ValidationError(c, validator.Details(err))
		}

		page, err := h.accountUC.Search(c.Request().Context(), kind, query.Query, usecase.Page{Page: query.Page, Limit: query.Limit})
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, accountPageData(page))
	}
}

// Get handles GET /{workers|companies}/:id
// Staff may read any profile, everyone else only their own.
func (h *AccountHandler) Get(kind entity.AccountKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid account ID")
		}

		if !canAccessAccount(c, kind, id) {
			return response.HandleAppError(c, domainerrors.ErrForbidden)
		}

		account, err := h.accountUC.Get(c.Request().Context(), kind, id)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, newAccountResponse(account))
	}
}

// Update handles PUT /{workers|companies}/:id
// Owners and editors may change profile fields; only admins may change active or role.
func (h *AccountHandler) Update(kind entity.AccountKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid account ID")
		}

		var req UpdateAccountRequest
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
		}

		if err := c.Validate(&req); err != nil {
			return response.ValidationError(c, validator.Details(err))
		}

		if !canAccessAccount(c, kind, id) {
			return response.HandleAppError(c, domainerrors.ErrForbidden)
		}
		if (req.Active != nil || req.Role != nil) && !deliverycontext.HasRole(c, entity.RoleAdmin) {
			return response.HandleAppError(c, domainerrors.ErrForbidden)
		}

		account, err := h.accountUC.Update(c.Request().Context(), kind, id, &usecase.UpdateAccountInput{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			TaxID:   req.TaxID,
			Address: req.Address,
			Active:  req.Active,
			Role:    req.Role,
		})
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, newAccountResponse(account))
	}
}

// Delete handles DELETE /{workers|companies}/:id
func (h *AccountHandler) Delete(kind entity.AccountKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid account ID")
		}

		if err := h.accountUC.Delete(c.Request().Context(), kind, id); err != nil {
			return response.HandleAppError(c, err)
		}

		return c.NoContent(http.StatusNoContent)
	}
}

func accountPageData(page *usecase.AccountPage) response.PageData[AccountResponse] {
	return response.PageData[AccountResponse]{
		Items: newAccountResponses(page.Items),
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
	}
}
