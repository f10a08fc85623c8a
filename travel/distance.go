package travel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DistanceProvider resolves a driving duration between two addresses.
// Implementations are allowed to fail; the Estimator falls back to its
// offline table on any error.
type DistanceProvider interface {
	Duration(ctx context.Context, origin, destination string) (time.Duration, error)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RemoteDistance queries a Distance-Matrix style HTTP endpoint.
type RemoteDistance struct {
	url    string
	apiKey string
	client httpDoer
}

// NewRemoteDistance builds a provider for the endpoint at rawURL. A nil
// client gets a default with a request timeout.
func NewRemoteDistance(rawURL, apiKey string, client *http.Client) *RemoteDistance {
	doer := httpDoer(client)
	if client == nil {
		doer = &http.Client{Timeout: 10 * time.Second}
	}
	return &RemoteDistance{url: rawURL, apiKey: apiKey, client: doer}
}

type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Duration struct {
				Value int64  `json:"value"` // seconds
				Text  string `json:"text"`
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// Duration asks for the driving time from origin to destination.
func (r *RemoteDistance) Duration(ctx context.Context, origin, destination string) (time.Duration, error) {
	query := url.Values{}
	query.Set("origins", origin)
	query.Set("destinations", destination)
	query.Set("mode", "driving")
	if r.apiKey != "" {
		query.Set("key", r.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url+"?"+query.Encode(), nil)
	if err != nil {
		return 0, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("distance request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("distance service returned %d", resp.StatusCode)
	}
	var payload matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("decode distance response: %w", err)
	}
	if payload.Status != "OK" {
		return 0, fmt.Errorf("distance service status %q", payload.Status)
	}
	if len(payload.Rows) == 0 || len(payload.Rows[0].Elements) == 0 {
		return 0, fmt.Errorf("distance response has no elements")
	}
	element := payload.Rows[0].Elements[0]
	if element.Status != "OK" {
		return 0, fmt.Errorf("no route found: element status %q", element.Status)
	}
	return time.Duration(element.Duration.Value) * time.Second, nil
}
