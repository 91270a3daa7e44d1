package middleware

import (
	"log/slog"
	"net/http"

	"examhub/internal/delivery/api/response"
	deliverycontext "examhub/internal/delivery/context"
	domainerrors "examhub/internal/domain/errors"
	"examhub/internal/errors"

	"github.com/labstack/echo/v4"
)

const (
	codeHTTPError       = "HTTP_ERROR"
	internalFailureText = "Internal server error, please try again later"
)

// ErrorMiddleware is the echo HTTPErrorHandler. Handlers render expected
// domain errors themselves; whatever they return ends up here.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError renders domain errors with their own code, echo errors
// (404, 405, 413, ...) as HTTP_ERROR, and everything else as an opaque 500.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		appErr  domainerrors.AppError
		httpErr *echo.HTTPError
	)

	switch {
	case errors.As(err, &appErr):
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logFailure(c, err, slog.String("code", appErr.ErrorCode()))
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), response.AppErrorDetails(appErr))

	case errors.As(err, &httpErr):
		_ = response.Error(c, httpErr.Code, codeHTTPError, httpErrorMessage(httpErr), nil)

	default:
		m.logFailure(c, err)
		_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), internalFailureText)
	}
}

func (m *ErrorMiddleware) logFailure(c echo.Context, err error, attrs ...slog.Attr) {
	req := c.Request()
	attrs = append(attrs,
		slog.String("method", req.Method),
		slog.String("route", c.Path()),
		slog.String("error", err.Error()),
		slog.String("stack", errors.StackTrace(err)),
	)

	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).
		LogAttrs(req.Context(), slog.LevelError, "Request failed", attrs...)
}

func httpErrorMessage(httpErr *echo.HTTPError) string {
	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		return msg
	}

	return http.StatusText(httpErr.Code)
}
