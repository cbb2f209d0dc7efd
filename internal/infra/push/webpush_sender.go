// Package push implements service.PushSender for Web Push and Firebase Cloud Messaging.
package push

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"civicradar/config"
	"civicradar/internal/domain/entity"
	"civicradar/internal/domain/service"
	"civicradar/internal/errors"

	webpush "github.com/SherClockHolmes/webpush-go"
)

// webPushSender delivers encrypted payloads to browser push services using VAPID.
type webPushSender struct {
	options webpush.Options
	logger  *slog.Logger
}

// NewWebPushSender validates VAPID settings and builds the sender.
// client may be nil to use http.DefaultClient.
func NewWebPushSender(cfg *config.WebPushConfig, client webpush.HTTPClient, logger *slog.Logger) (service.PushSender, error) {
	if cfg == nil {
		return nil, errors.New("webPush configuration is missing")
	}
	if cfg.VAPIDPublicKey == "" || cfg.VAPIDPrivateKey == "" {
		return nil, errors.New("VAPID key pair is required for web push")
	}
	if cfg.Subscriber == "" {
		return nil, errors.New("VAPID subscriber contact is required for web push")
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = config.DefaultPushTTL
	}

	return &webPushSender{
		options: webpush.Options{
			HTTPClient:      client,
			Subscriber:      cfg.Subscriber,
			TTL:             ttl,
			Urgency:         parseUrgency(cfg.Urgency),
			VAPIDPublicKey:  cfg.VAPIDPublicKey,
			VAPIDPrivateKey: cfg.VAPIDPrivateKey,
		},
		logger: logger,
	}, nil
}

func parseUrgency(urgency string) webpush.Urgency {
	switch webpush.Urgency(urgency) {
	case webpush.UrgencyVeryLow, webpush.UrgencyLow, webpush.UrgencyNormal:
		return webpush.Urgency(urgency)
	default:
		return webpush.UrgencyHigh
	}
}

// Send encrypts payload for sub and posts it to the subscription endpoint.
func (s *webPushSender) Send(ctx context.Context, sub *entity.PushSubscription, payload *entity.NotificationPayload) error {
	message, err := json.Marshal(payload)
	if err != nil {
		return &service.PermanentDeliveryError{Err: errors.Wrap(err, "failed to encode payload")}
	}

	opts := s.options
	opts.Topic = topicFor(payload.Tag)

	resp, err := webpush.SendNotificationWithContext(ctx, message, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.PublicKey,
			Auth:   sub.AuthSecret,
		},
	}, &opts)
	if err != nil {
		return &service.TransientDeliveryError{Err: errors.Wrap(err, "web push request failed")}
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp); err != nil {
		if service.IsPermanentDeliveryError(err) {
			s.logger.Debug("Push endpoint is gone", slog.String("subscription_id", sub.ID.String()), slog.Int("status", resp.StatusCode))
		}

		return err
	}

	return nil
}

// classifyStatus maps a push service response to the delivery outcome.
// 404 and 410 mean the subscription has expired or was revoked.
func classifyStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	cause := errors.Errorf("push service responded %s: %s", resp.Status, string(body))

	switch resp.StatusCode {
	case http.StatusNotFound, http.StatusGone:
		return &service.PermanentDeliveryError{StatusCode: resp.StatusCode, Err: cause}
	default:
		return &service.TransientDeliveryError{StatusCode: resp.StatusCode, Err: cause}
	}
}

// topicFor derives the Topic header so a newer message replaces an undelivered
// one with the same tag. Topics are limited to 32 URL-safe characters.
func topicFor(tag string) string {
	out := make([]byte, 0, 32)
	for i := 0; i < len(tag) && len(out) < 32; i++ {
		c := tag[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-' || c == '_' {
			out = append(out, c)
		}
	}

	return string(out)
}
