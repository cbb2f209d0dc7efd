package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"civicradar/config"
	"civicradar/internal/delivery/api/response"
	domainerrors "civicradar/internal/domain/errors"
	"civicradar/internal/domain/service"
	"civicradar/internal/errors"
	mockservice "civicradar/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(method string, headers map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()

	t.Run("valid token", func(t *testing.T) {
		tokenSvc := mockservice.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID}, nil)

		c, rec := newRequest(http.MethodGet, map[string]string{echo.HeaderAuthorization: "Bearer good"})
		var seen uuid.UUID
		handler := NewAuthMiddleware(tokenSvc).Authenticate(func(c echo.Context) error {
			seen, _ = GetUserID(c)

			return okHandler(c)
		})

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, userID, seen)
	})

	t.Run("missing header", func(t *testing.T) {
		c, rec := newRequest(http.MethodGet, nil)

		require.NoError(t, NewAuthMiddleware(mockservice.NewMockTokenService(t)).Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "MISSING_TOKEN", errorCode(t, rec))
	})

	t.Run("not a bearer token", func(t *testing.T) {
		c, rec := newRequest(http.MethodGet, map[string]string{echo.HeaderAuthorization: "Basic abc"})

		require.NoError(t, NewAuthMiddleware(mockservice.NewMockTokenService(t)).Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		tokenSvc := mockservice.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))

		c, rec := newRequest(http.MethodGet, map[string]string{echo.HeaderAuthorization: "Bearer expired"})

		require.NoError(t, NewAuthMiddleware(tokenSvc).Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN", errorCode(t, rec))
	})
}

func triggerConfig(token string) *config.Config {
	return &config.Config{Dispatch: &config.DispatchConfig{TriggerToken: token}}
}

func TestTriggerToken(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	tests := []struct {
		name       string
		configured string
		headers    map[string]string
		wantStatus int
	}{
		{"dispatch header", "s3cret", map[string]string{HeaderDispatchToken: "s3cret"}, http.StatusNoContent},
		{"bearer header", "s3cret", map[string]string{echo.HeaderAuthorization: "Bearer s3cret"}, http.StatusNoContent},
		{"wrong token", "s3cret", map[string]string{HeaderDispatchToken: "guess"}, http.StatusUnauthorized},
		{"no token presented", "s3cret", nil, http.StatusUnauthorized},
		{"nothing configured", "", map[string]string{HeaderDispatchToken: ""}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newRequest(http.MethodPost, tt.headers)

			require.NoError(t, NewTriggerTokenMiddleware(triggerConfig(tt.configured), logger).Require(okHandler)(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantLogged bool
	}{
		{"domain 404", domainerrors.ErrRegionNotFound, http.StatusNotFound, "REGION_NOT_FOUND", false},
		{"upstream 500", domainerrors.NewUpstreamQueryError(errors.New("timeout"), "list regions"), http.StatusInternalServerError, "UPSTREAM_QUERY_FAILED", true},
		{"echo error", echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), http.StatusMethodNotAllowed, "HTTP_ERROR", false},
		{"unknown", errors.New("nil pointer somewhere"), http.StatusInternalServerError, "INTERNAL_ERROR", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&logs, nil)))
			c, rec := newRequest(http.MethodGet, nil)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, rec))
			assert.Equal(t, tt.wantLogged, logs.Len() > 0)
		})
	}
}
