// Package handler holds the dispatch worker's Pub/Sub push endpoint.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"civicradar/config"
	deliverycontext "civicradar/internal/delivery/context"
	"civicradar/internal/domain/constants"
	"civicradar/internal/domain/entity"
	domainerrors "civicradar/internal/domain/errors"
	"civicradar/internal/errors"
	"civicradar/internal/infra/pubsub"
	"civicradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// TokenVerifier checks the OIDC token Pub/Sub attaches to push requests.
type TokenVerifier func(req *http.Request) error

// PushHandler turns report-created events into proximity dispatches.
type PushHandler struct {
	verify     TokenVerifier
	logger     *slog.Logger
	dispatchUC usecase.DispatchUsecase
}

type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	DispatchUC usecase.DispatchUsecase
}

// NewPushHandler verifies push tokens only for Google Pub/Sub outside develop.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:     params.Logger,
		dispatchUC: params.DispatchUC,
	}

	if params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop {
		h.verify = verifyPubSubToken
	}

	return h
}

// WithVerifier replaces the push token check.
func (h *PushHandler) WithVerifier(verify TokenVerifier) *PushHandler {
	h.verify = verify

	return h
}

// HandlePush answers 503 when Pub/Sub should redeliver and 2xx when the
// message is done, including messages that can never succeed.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verify != nil {
		if err := h.verify(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope pubsub.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := envelope.DecodeReportCreated()
	if err != nil {
		h.logger.Error("[Worker] Dropping undecodable message",
			slog.String("message_id", envelope.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &envelope, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Dispatching report",
		slog.String("experience_id", event.ExperienceID),
		slog.String("message_id", envelope.Message.MessageID),
	)

	result, err := h.dispatchUC.DispatchProximity(ctx, &usecase.DispatchInput{
		ExperienceID: event.ExperienceID,
		RadiusMeters: event.RadiusMeters,
	})
	if err != nil {
		retry := isRetryable(err)
		reqLogger.Error("[Worker] Dispatch failed",
			slog.String("experience_id", event.ExperienceID),
			slog.Bool("retryable", retry),
			slog.Any("error", err),
		)
		if retry {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Dispatch finished",
		slog.String("experience_id", event.ExperienceID),
		slog.Bool("success", result.Success),
		slog.Int("notified", result.Notified),
		slog.Int("total_subscriptions", result.TotalSubscriptions),
		slog.Int("errors", len(result.Errors)),
	)

	return c.NoContent(http.StatusOK)
}

// isRetryable reports whether a redelivery could succeed. Only storage
// failures qualify: they happen before any push is sent, so a retry cannot
// double-notify.
func isRetryable(err error) bool {
	var upstream *domainerrors.UpstreamQueryError

	return errors.As(err, &upstream)
}

// extractRequestID prefers message attributes, then the event body, then the
// request context.
func extractRequestID(ctx context.Context, envelope *pubsub.PushEnvelope, event *entity.ReportCreatedEvent) string {
	if requestID := envelope.Message.Attributes[pubsub.AttrRequestID]; requestID != "" {
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

// verifyPubSubToken validates the Google-signed OIDC token on push requests.
// See https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !found || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
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
