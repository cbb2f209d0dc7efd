package push

import (
	"context"
	"strconv"

	"civicradar/config"
	"civicradar/internal/domain/entity"
	"civicradar/internal/domain/service"
	"civicradar/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// messagingClient is the subset of *messaging.Client used for delivery.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// firebaseSender treats PushSubscription.Endpoint as an FCM registration token.
type firebaseSender struct {
	client messagingClient
}

// NewFirebaseSender creates a Firebase Cloud Messaging sender
func NewFirebaseSender(ctx context.Context, cfg *config.FirebaseConfig) (service.PushSender, error) {
	if cfg == nil {
		return nil, errors.New("firebase configuration is missing")
	}

	opts := []option.ClientOption{}
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseSender{client: client}, nil
}

func (s *firebaseSender) Send(ctx context.Context, sub *entity.PushSubscription, payload *entity.NotificationPayload) error {
	if _, err := s.client.Send(ctx, buildMessage(sub.Endpoint, payload)); err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) || messaging.IsSenderIDMismatch(err) {
			return &service.PermanentDeliveryError{Err: errors.Wrap(err, "registration token rejected")}
		}

		return &service.TransientDeliveryError{Err: errors.Wrap(err, "failed to send notification")}
	}

	return nil
}

func buildMessage(token string, payload *entity.NotificationPayload) *messaging.Message {
	data := map[string]string{
		"type":      payload.Data.Type,
		"url":       payload.Data.URL,
		"timestamp": strconv.FormatInt(payload.Data.Timestamp, 10),
	}
	if payload.Data.ExperienceID != "" {
		data["experienceId"] = payload.Data.ExperienceID
	}
	if payload.Data.Latitude != nil && payload.Data.Longitude != nil {
		data["lat"] = strconv.FormatFloat(*payload.Data.Latitude, 'f', -1, 64)
		data["lon"] = strconv.FormatFloat(*payload.Data.Longitude, 'f', -1, 64)
	}

	actions := make([]*messaging.WebpushNotificationAction, 0, len(payload.Actions))
	for _, a := range payload.Actions {
		actions = append(actions, &messaging.WebpushNotificationAction{
			Action: a.Action,
			Title:  a.Title,
		})
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		},
		Data: data,
		Webpush: &messaging.WebpushConfig{
			Notification: &messaging.WebpushNotification{
				Title:              payload.Title,
				Body:               payload.Body,
				Icon:               payload.Icon,
				Badge:              payload.Badge,
				Tag:                payload.Tag,
				RequireInteraction: payload.RequireInteraction,
				Actions:            actions,
			},
		},
		Android: &messaging.AndroidConfig{
			CollapseKey: payload.Tag,
			Priority:    "high",
		},
	}
	if payload.Data.URL != "" {
		msg.Webpush.FCMOptions = &messaging.WebpushFCMOptions{Link: payload.Data.URL}
	}

	return msg
}
