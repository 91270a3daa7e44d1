package middleware

import (
	"log/slog"

	deliverycontext "examhub/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Client supplied ids longer than this are replaced.
const maxRequestIDLength = 128

type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Process tags the request with an id and a logger carrying it. Both are stored in
// the echo context and in the request context so usecases see the same id.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := acceptRequestID(c.Request().Header.Get(deliverycontext.HeaderXRequestID))

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", requestID)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// acceptRequestID keeps a client id only when it is short printable ASCII, since
// it ends up in log lines and response headers.
func acceptRequestID(candidate string) string {
	if candidate == "" || len(candidate) > maxRequestIDLength {
		return uuid.NewString()
	}

	for i := 0; i < len(candidate); i++ {
		if candidate[i] < 0x21 || candidate[i] > 0x7e {
			return uuid.NewString()
		}
	}

	return candidate
}
