package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "civicradar/internal/domain/errors"
	"civicradar/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()

	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHandleAppError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:        "client error keeps details",
			err:         domainerrors.ErrValidationFailed.WithDetails("radiusMeters must be positive"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "radiusMeters must be positive",
		},
		{
			name:       "wrapped not found",
			err:        errors.Wrap(domainerrors.ErrReportNotFound, "load report"),
			wantStatus: http.StatusNotFound,
			wantCode:   "REPORT_NOT_FOUND",
		},
		{
			name:       "upstream failure hides details",
			err:        domainerrors.NewUpstreamQueryError(errors.New("conn refused"), "find users"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "UPSTREAM_QUERY_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, HandleAppError(c, tt.err))
			assert.Equal(t, tt.wantStatus, rec.Code)

			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
		})
	}
}

func TestHandleAppError_PassesThroughUnknownErrors(t *testing.T) {
	c, rec := newContext()
	cause := errors.New("boom")

	err := HandleAppError(c, cause)

	require.Error(t, err)
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, 0, rec.Body.Len())
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]int{"notified": 2}))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"notified":2}`, extractData(t, rec))
}

func extractData(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return string(body.Data)
}
