package impl

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"civicradar/config"
	"civicradar/internal/domain/entity"
	domainerrors "civicradar/internal/domain/errors"
	"civicradar/internal/errors"
	"civicradar/internal/util"
)

const (
	// MaxPayloadBytes is the ceiling push services accept for an encrypted message body.
	MaxPayloadBytes = 4096

	proximityTitle   = "New issue reported nearby"
	testTitle        = "CivicRadar test notification"
	testTag          = "test-notification"
	defaultTestBody  = "Push notifications are working."
	mapsDirectionURL = "https://www.google.com/maps/dir/?api=1&destination="
)

// NotificationComposer builds push payloads. It never embeds binary content,
// only ids and URLs.
type NotificationComposer struct {
	appURL string
	icon   string
	badge  string
	now    func() time.Time
}

// NewNotificationComposer creates a composer from the composer config section
func NewNotificationComposer(cfg *config.Config) *NotificationComposer {
	c := &NotificationComposer{now: time.Now}
	if cfg != nil && cfg.Composer != nil {
		c.appURL = strings.TrimRight(cfg.Composer.AppURL, "/")
		c.icon = cfg.Composer.Icon
		c.badge = cfg.Composer.Badge
	}

	return c
}

// BuildProximityPayload describes report for a user distanceKm away.
func (c *NotificationComposer) BuildProximityPayload(report *entity.Report, distanceKm float64) (*entity.NotificationPayload, error) {
	experienceID := report.ID.String()
	link := c.appURL + "/experiences/" + experienceID
	lat, lon := report.Latitude, report.Longitude

	payload := &entity.NotificationPayload{
		Title:              proximityTitle,
		Body:               fmt.Sprintf("%s · %s away", report.Title, util.FormatDistance(distanceKm*1000)),
		Icon:               c.icon,
		Badge:              c.badge,
		Tag:                "proximity-" + experienceID,
		RequireInteraction: true,
		Actions: []entity.NotificationAction{
			{Action: "view", Title: "View Issue", URL: link},
			{Action: "navigate", Title: "Get Directions", URL: directionsURL(lat, lon)},
		},
		Data: entity.NotificationData{
			Type:         entity.PayloadTypeProximity,
			ExperienceID: experienceID,
			URL:          link,
			Latitude:     &lat,
			Longitude:    &lon,
			Timestamp:    c.now().UnixMilli(),
		},
	}

	if err := fitPayload(payload); err != nil {
		return nil, err
	}

	return payload, nil
}

// BuildTestPayload builds the diagnostic notification sent by the push test endpoint.
func (c *NotificationComposer) BuildTestPayload(message string) (*entity.NotificationPayload, error) {
	if strings.TrimSpace(message) == "" {
		message = defaultTestBody
	}

	payload := &entity.NotificationPayload{
		Title: testTitle,
		Body:  message,
		Icon:  c.icon,
		Tag:   testTag,
		Data: entity.NotificationData{
			Type:      entity.PayloadTypeTest,
			URL:       c.appURL,
			Timestamp: c.now().UnixMilli(),
		},
	}

	if err := fitPayload(payload); err != nil {
		return nil, err
	}

	return payload, nil
}

// fitPayload trims the body until the encoded payload fits MaxPayloadBytes.
func fitPayload(payload *entity.NotificationPayload) error {
	for {
		raw, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "failed to encode payload")
		}

		excess := len(raw) - MaxPayloadBytes
		if excess <= 0 {
			return nil
		}
		if payload.Body == "" {
			return domainerrors.ErrPayloadTooLarge.WithDetails(strconv.Itoa(len(raw)) + " bytes")
		}

		payload.Body = util.TruncateRunes(payload.Body, len(payload.Body)-excess)
	}
}

func directionsURL(lat, lon float64) string {
	destination := strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lon, 'f', -1, 64)

	return mapsDirectionURL + url.QueryEscape(destination)
}
