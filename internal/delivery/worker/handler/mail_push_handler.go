// Package handler contains the Pub/Sub push endpoints of the mail worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"examhub/config"
	deliverycontext "examhub/internal/delivery/context"
	"examhub/internal/domain/constants"
	"examhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError marks failures that Pub/Sub should redeliver.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// tokenValidator checks a Google-signed OIDC token for an audience.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// MailPushHandler delivers queued mail events.
type MailPushHandler struct {
	verifyPushAuth bool
	audience       string
	validateToken  tokenValidator
	notifier       service.Notifier
	logger         *slog.Logger
}

// MailPushHandlerParams holds dependencies for the MailPushHandler
type MailPushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Notifier service.Notifier
}

// NewMailPushHandler creates a new Pub/Sub push handler for mail events
func NewMailPushHandler(params MailPushHandlerParams) *MailPushHandler {
	// Push tokens are only minted by Google; local publishers post unauthenticated.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	var audience string
	if params.Config.PubSub != nil {
		audience = params.Config.PubSub.PushAudience
	}

	return &MailPushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		validateToken:  idtoken.Validate,
		notifier:       params.Notifier,
		logger:         params.Logger,
	}
}

// HandlePush handles incoming Pub/Sub push messages.
// It answers 503 for failures worth a redelivery and 200 for everything else, including malformed events,
// so that a poison message is not retried forever.
func (h *MailPushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[MailWorker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[MailWorker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[MailWorker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.MailEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[MailWorker] Failed to parse mail event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("event_id", event.ID),
		slog.String("message_id", pushMsg.Message.MessageID),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.deliver(ctx, &event); err != nil {
		reqLogger.Error("[MailWorker] Failed to deliver mail",
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[MailWorker] Mail delivered")

	return c.NoContent(http.StatusOK)
}

func (h *MailPushHandler) deliver(ctx context.Context, event *service.MailEvent) error {
	if strings.TrimSpace(event.To) == "" || strings.TrimSpace(event.Subject) == "" {
		return errors.New("mail event without recipient or subject")
	}

	if err := h.notifier.Send(ctx, event.To, event.Subject, event.HTML); err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	return nil
}

// extractRequestID prefers message attributes, then the event payload, then the incoming request.
func extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.MailEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the OIDC token Google attaches to authenticated push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (h *MailPushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Without a configured audience the push endpoint URL is expected.
	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
