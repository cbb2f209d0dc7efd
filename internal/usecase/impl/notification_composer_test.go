package impl

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"civicradar/config"
	domainerrors "civicradar/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestComposer(cfg *config.Config) *NotificationComposer {
	c := NewNotificationComposer(cfg)
	c.now = func() time.Time { return time.UnixMilli(1_700_000_000_000) }

	return c
}

func TestNotificationComposer_BuildProximityPayload(t *testing.T) {
	composer := newTestComposer(testConfig())
	report := kingstonReport()

	payload, err := composer.BuildProximityPayload(report, 0.25)
	require.NoError(t, err)

	id := report.ID.String()
	assert.Equal(t, "New issue reported nearby", payload.Title)
	assert.Equal(t, "Water main leak on Hope Road · 250 m away", payload.Body)
	assert.Equal(t, "proximity-"+id, payload.Tag)
	assert.Equal(t, "/icons/icon-192.png", payload.Icon)
	assert.True(t, payload.RequireInteraction)

	require.Len(t, payload.Actions, 2)
	assert.Equal(t, "view", payload.Actions[0].Action)
	assert.Equal(t, "https://civicradar.test/experiences/"+id, payload.Actions[0].URL)
	assert.Equal(t, "navigate", payload.Actions[1].Action)
	assert.Equal(t, "https://www.google.com/maps/dir/?api=1&destination=18.0179%2C-76.8099", payload.Actions[1].URL)

	assert.Equal(t, "proximity", payload.Data.Type)
	assert.Equal(t, id, payload.Data.ExperienceID)
	assert.Equal(t, "https://civicradar.test/experiences/"+id, payload.Data.URL)
	require.NotNil(t, payload.Data.Latitude)
	assert.InDelta(t, 18.0179, *payload.Data.Latitude, 0)
	assert.InDelta(t, -76.8099, *payload.Data.Longitude, 0)
	assert.Equal(t, int64(1_700_000_000_000), payload.Data.Timestamp)
}

func TestNotificationComposer_BuildProximityPayload_Kilometres(t *testing.T) {
	payload, err := newTestComposer(testConfig()).BuildProximityPayload(kingstonReport(), 4.26)

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(payload.Body, "· 4.3 km away"), payload.Body)
}

func TestNotificationComposer_BuildProximityPayload_TrimsLongTitle(t *testing.T) {
	report := kingstonReport()
	report.Title = strings.Repeat("Ünusually long description ", 400)

	payload, err := newTestComposer(testConfig()).BuildProximityPayload(report, 1)
	require.NoError(t, err)

	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(raw), MaxPayloadBytes)
	assert.True(t, strings.HasSuffix(payload.Body, "…"))
}

func TestNotificationComposer_BuildProximityPayload_TooLarge(t *testing.T) {
	cfg := testConfig()
	cfg.Composer.AppURL = "https://civicradar.test/" + strings.Repeat("x", MaxPayloadBytes)

	_, err := newTestComposer(cfg).BuildProximityPayload(kingstonReport(), 1)

	assert.ErrorIs(t, err, domainerrors.ErrPayloadTooLarge)
}

func TestNotificationComposer_BuildTestPayload(t *testing.T) {
	composer := newTestComposer(testConfig())

	payload, err := composer.BuildTestPayload("")
	require.NoError(t, err)
	assert.Equal(t, "test-notification", payload.Tag)
	assert.Equal(t, "Push notifications are working.", payload.Body)
	assert.Equal(t, "test", payload.Data.Type)
	assert.Empty(t, payload.Actions)

	payload, err = composer.BuildTestPayload("ping from settings")
	require.NoError(t, err)
	assert.Equal(t, "ping from settings", payload.Body)
}

func TestNewNotificationComposer_WithoutConfig(t *testing.T) {
	payload, err := NewNotificationComposer(&config.Config{}).BuildProximityPayload(kingstonReport(), 0.1)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(payload.Data.URL, "/experiences/"))
}
