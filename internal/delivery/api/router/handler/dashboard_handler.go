package handler

import (
	"log/slog"
	"net/http"

	"examhub/internal/delivery/api/response"
	"examhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
	Logger      *slog.Logger
}

// DashboardHandler serves the admin counters.
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
	logger      *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: params.DashboardUC,
		logger:      params.Logger,
	}
}

// Stats handles GET /dashboard
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.dashboardUC.Stats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
