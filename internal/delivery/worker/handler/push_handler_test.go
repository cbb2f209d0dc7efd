package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"civicradar/config"
	deliverycontext "civicradar/internal/delivery/context"
	"civicradar/internal/domain/constants"
	"civicradar/internal/domain/entity"
	domainerrors "civicradar/internal/domain/errors"
	"civicradar/internal/errors"
	"civicradar/internal/infra/pubsub"
	mockusecase "civicradar/internal/mocks/usecase"
	"civicradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const experienceID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

func developConfig() *config.Config {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}
	cfg.Env.Env = constants.EnvDevelop

	return cfg
}

func envelopeBody(t *testing.T, event *entity.ReportCreatedEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var env pubsub.PushEnvelope
	env.Message.Data = base64.StdEncoding.EncodeToString(data)
	env.Message.Attributes = attributes
	env.Message.MessageID = "msg-1"
	body, err := json.Marshal(env)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(echo.New().NewContext(req, rec))

	return rec
}

func newPushHandler(t *testing.T) (*PushHandler, *mockusecase.MockDispatchUsecase) {
	uc := mockusecase.NewMockDispatchUsecase(t)

	return NewPushHandler(PushHandlerParams{Config: developConfig(), Logger: slog.New(slog.DiscardHandler), DispatchUC: uc}), uc
}

func TestHandlePush_Dispatches(t *testing.T) {
	h, uc := newPushHandler(t)
	radius := 800.0
	uc.EXPECT().
		DispatchProximity(mock.Anything, &usecase.DispatchInput{ExperienceID: experienceID, RadiusMeters: &radius}).
		RunAndReturn(func(ctx context.Context, _ *usecase.DispatchInput) (*usecase.DispatchResult, error) {
			assert.Equal(t, "req-attr", deliverycontext.GetRequestIDFromContext(ctx))

			return &usecase.DispatchResult{Success: true, Notified: 1}, nil
		})

	body := envelopeBody(t,
		&entity.ReportCreatedEvent{RequestID: "req-body", ExperienceID: experienceID, RadiusMeters: &radius},
		map[string]string{pubsub.AttrRequestID: "req-attr"},
	)

	rec := servePush(h, body)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_Outcomes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"storage failure is redelivered", domainerrors.NewUpstreamQueryError(errors.New("db down"), "find tracked users"), http.StatusServiceUnavailable},
		{"unknown report is dropped", domainerrors.ErrReportNotFound, http.StatusOK},
		{"invalid input is dropped", domainerrors.ErrValidationFailed.WithDetails("bad radius"), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newPushHandler(t)
			uc.EXPECT().DispatchProximity(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := servePush(h, envelopeBody(t, &entity.ReportCreatedEvent{ExperienceID: experienceID}, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandlePush_BadMessages(t *testing.T) {
	h, _ := newPushHandler(t)

	assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":`).Code)
	assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":{"data":"***"}}`).Code)

	notJSON := base64.StdEncoding.EncodeToString([]byte("plain text"))
	assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":{"data":"`+notJSON+`"}}`).Code)
}

func TestHandlePush_TokenVerification(t *testing.T) {
	t.Run("rejected", func(t *testing.T) {
		h, _ := newPushHandler(t)
		h.WithVerifier(func(*http.Request) error { return errors.New("bad audience") })

		rec := servePush(h, envelopeBody(t, &entity.ReportCreatedEvent{ExperienceID: experienceID}, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("enabled for google outside develop", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
		cfg.Env.Env = constants.EnvProduction

		h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: slog.New(slog.DiscardHandler)})

		assert.NotNil(t, h.verify)
	})

	t.Run("missing bearer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/push", nil)

		assert.Error(t, verifyPubSubToken(req))
	})
}
