package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"civicradar/config"
	"civicradar/internal/domain/entity"
	"civicradar/internal/errors"
	"civicradar/internal/usecase"
)

const (
	regionsPath   = "/api/v1/regions"
	locationsPath = "/api/v1/locations"

	maxErrorBody = 512
)

// APIClient talks to the civicradar API on behalf of the agent.
type APIClient struct {
	baseURL     string
	accessToken string
	http        *http.Client
}

// NewAPIClient uses httpClient, or a client with a 30s timeout when nil.
func NewAPIClient(cfg *config.TrackerConfig, httpClient *http.Client) (*APIClient, error) {
	if cfg == nil || cfg.ServerURL == "" {
		return nil, errors.New("tracker server URL is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &APIClient{
		baseURL:     strings.TrimSuffix(cfg.ServerURL, "/"),
		accessToken: cfg.AccessToken,
		http:        httpClient,
	}, nil
}

// FetchRegions downloads the public region catalogue.
func (c *APIClient) FetchRegions(ctx context.Context) ([]entity.GeofenceRegion, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+regionsPath, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var regions []entity.GeofenceRegion
	if err := c.do(req, &regions); err != nil {
		return nil, errors.Wrap(err, "fetch regions")
	}

	return regions, nil
}

// UploadLocation implements LocationUploader.
func (c *APIClient) UploadLocation(ctx context.Context, loc Location) error {
	body, err := json.Marshal(usecase.ReportLocationInput{
		Latitude:  &loc.Latitude,
		Longitude: &loc.Longitude,
		Accuracy:  loc.Accuracy,
		Timestamp: loc.Timestamp,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+locationsPath, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	return c.do(req, nil)
}

// do sends req and decodes the "data" member of the response envelope into out.
func (c *APIClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	envelope := struct {
		Data any `json:"data"`
	}{Data: out}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return errors.Wrap(err, "decode response")
	}

	return nil
}
