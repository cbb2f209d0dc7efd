package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"civicradar/internal/domain/entity"
	"civicradar/internal/errors"
)

// Attribute keys carried on every published message.
const (
	AttrExperienceID = "experience_id"
	AttrRequestID    = "request_id"
)

// PushEnvelope is the body Pub/Sub sends to push subscribers.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// DecodeReportCreated extracts the event from a push envelope.
func (e *PushEnvelope) DecodeReportCreated() (*entity.ReportCreatedEvent, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "message data is not base64")
	}

	var event entity.ReportCreatedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "message data is not a report-created event")
	}

	return &event, nil
}

func eventAttributes(event *entity.ReportCreatedEvent) map[string]string {
	attributes := map[string]string{AttrExperienceID: event.ExperienceID}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}

func newPushEnvelope(event *entity.ReportCreatedEvent, data []byte, messageID string) *PushEnvelope {
	env := &PushEnvelope{Subscription: "projects/local/subscriptions/report-created-sub"}
	env.Message.Data = base64.StdEncoding.EncodeToString(data)
	env.Message.Attributes = eventAttributes(event)
	env.Message.MessageID = messageID
	env.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return env
}
