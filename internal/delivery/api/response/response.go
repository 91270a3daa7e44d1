// Package response writes the JSON envelope shared by every API endpoint:
// {"data": ..., "meta": {...}} on success and {"error": {...}, "meta": {...}} on failure.
package response

import (
	"net/http"

	deliverycontext "examhub/internal/delivery/context"
	domainerrors "examhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"` // e.g. "DUPLICATE_EMAIL"
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// PageData is the data of a paginated listing.
type PageData[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// hidesDetails reports whether details must be withheld for statusCode.
// Server faults and auth failures never describe what went wrong.
func hidesDetails(statusCode int) bool {
	return statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden
}

// Error writes an error envelope. details is dropped when hidesDetails(statusCode).
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if hidesDetails(statusCode) {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError reports a body, query or path value that could not be decoded.
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// ValidationError returns 400 VALIDATION_FAILED with per-field details.
func ValidationError(c echo.Context, details any) error {
	return Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), details)
}

func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError renders application errors. Anything else is returned for the central error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), AppErrorDetails(appErr))
	}

	return errors.WithStack(err)
}

// AppErrorDetails returns the details of err, or nil when it has none.
func AppErrorDetails(err domainerrors.AppError) any {
	if err.Details() == "" {
		return nil
	}

	return err.Details()
}
