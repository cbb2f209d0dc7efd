package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"civicradar/internal/domain/entity"
	"civicradar/internal/domain/service"
	"civicradar/internal/errors"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
)

const (
	localPublishRetries   = 3
	localPublishBaseDelay = 200 * time.Millisecond
)

// localHTTPPublisher posts Pub/Sub-shaped push envelopes straight to the
// dispatch worker for local development.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	backoff    func() retry.Backoff
	logger     *slog.Logger
}

// NewLocalHTTPPublisher creates a publisher targeting endpoint
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		backoff: func() retry.Backoff {
			return retry.WithMaxRetries(localPublishRetries, retry.NewExponential(localPublishBaseDelay))
		},
		logger: logger,
	}
}

// PublishReportCreated delivers the event, retrying while the worker answers 5xx
// the way Pub/Sub redelivers on a 503.
func (p *localHTTPPublisher) PublishReportCreated(ctx context.Context, event *entity.ReportCreatedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	body, err := json.Marshal(newPushEnvelope(event, data, uuid.NewString()))
	if err != nil {
		return errors.WithStack(err)
	}

	err = retry.Do(ctx, p.backoff(), func(ctx context.Context) error {
		return p.post(ctx, body, event.RequestID)
	})
	if err != nil {
		return errors.Wrapf(err, "failed to publish report %s", event.ExperienceID)
	}

	p.logger.Info("[LocalPubSub] Report-created event published",
		slog.String("endpoint", p.endpoint),
		slog.String("experience_id", event.ExperienceID),
	)

	return nil
}

func (p *localHTTPPublisher) post(ctx context.Context, body []byte, requestID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return retry.RetryableError(errors.WithStack(err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode >= 500:
		return retry.RetryableError(errors.Errorf("worker returned status %d", resp.StatusCode))
	default:
		return errors.Errorf("worker rejected event with status %d", resp.StatusCode)
	}
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
