package repair

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Corrector suggests a corrected form for mangled text. Implementations are
// allowed to fail; the Repairer treats any error as "use the local rules".
type Corrector interface {
	Correct(ctx context.Context, text string) (string, error)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RemoteCorrector asks an HTTP text-correction service. Calls are metered
// with a token bucket so a large export cannot blow through the service's
// per-minute quota.
type RemoteCorrector struct {
	url     string
	apiKey  string
	client  httpDoer
	limiter *rate.Limiter
}

type correctionRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type correctionResponse struct {
	Text string `json:"text"`
}

// NewRemoteCorrector builds a corrector for the service at url. A nil client
// gets a default with a request timeout.
func NewRemoteCorrector(url, apiKey string, callsPerMinute int, client *http.Client) *RemoteCorrector {
	if callsPerMinute <= 0 {
		callsPerMinute = defaultCallsPerMinute
	}
	doer := httpDoer(client)
	if client == nil {
		doer = &http.Client{Timeout: 10 * time.Second}
	}
	return &RemoteCorrector{
		url:     url,
		apiKey:  apiKey,
		client:  doer,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(callsPerMinute)), 1),
	}
}

const defaultCallsPerMinute = 30

// Correct sends one correction request, blocking first until the rate
// limiter hands out a token.
func (c *RemoteCorrector) Correct(ctx context.Context, text string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	body, err := json.Marshal(correctionRequest{Text: text, Language: "de"})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("correction request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("correction service returned %d: %s",
			resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var payload correctionResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode correction response: %w", err)
	}
	if payload.Text == "" {
		return "", fmt.Errorf("correction service returned an empty result")
	}
	return payload.Text, nil
}
