package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/itsAryan-devop09/mindspace-backend2/internal/apperr"
)

// Result is the normalized output of one classification call.
type Result struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Classifier is the capability the mood service depends on. Two instances are
// wired at startup, one for emotion and one for risk; both may point at the
// same underlying model.
type Classifier interface {
	Classify(ctx context.Context, text string) (Result, error)
}

// Client is a client for the classification model service API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type classifyRequest struct {
	Text string `json:"text"`
}

type classifyResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// NewClient creates a new classifier client with a bounded request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Classify sends text to the model service and returns its label and confidence.
// Any transport failure, non-200 status, malformed body or out-of-range
// confidence is reported as a classifier-unavailable error; the result is never
// clamped or defaulted, since crisis decisions depend on it.
func (c *Client) Classify(ctx context.Context, text string) (Result, error) {
	jsonData, err := json.Marshal(classifyRequest{Text: text})
	if err != nil {
		return Result{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/classify", bytes.NewBuffer(jsonData))
	if err != nil {
		return Result{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, apperr.ClassifierUnavailable("classifier request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return Result{}, apperr.ClassifierUnavailable(
			fmt.Sprintf("classifier returned status %d: %s", resp.StatusCode, string(body)), nil)
	}

	var result classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Result{}, apperr.ClassifierUnavailable("failed to decode classifier response", err)
	}

	if result.Score < 0 || result.Score > 1 {
		return Result{}, apperr.ClassifierUnavailable(
			fmt.Sprintf("classifier confidence out of range: %v", result.Score), nil)
	}

	return Result{Label: result.Label, Confidence: result.Score}, nil
}
