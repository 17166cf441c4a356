// Package formclient implements the inquiry form controllers used by the
// academy website: per-form field state, submit-time validation, and the
// submission lifecycle against the backend's inquiry endpoints. The state
// machine is independent of any rendering layer so it can be driven and
// tested in-process.
package formclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/bijalsangnaach/academy-backend/logger"
)

// Status is the submission lifecycle state of one form instance.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// ErrSubmissionInFlight is returned when Submit is called while a previous
// submission on the same form instance has not resolved yet. The guard keeps
// double-clicks from producing duplicate emails.
var ErrSubmissionInFlight = errors.New("a submission is already in flight")

// Client posts form payloads to the inquiry backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the backend at baseURL. No timeout is set
// here; timeout behavior is inherited from the transport defaults and the
// caller's context.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// apiError is the error portion of either endpoint's response body: the
// contact endpoint reports {error}, the registration endpoint {message}.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// postJSON issues one POST and maps the response: 2xx is success, anything
// else yields an error carrying the body's error/message text, or fallback
// when the body is unusable.
func (c *Client) postJSON(ctx context.Context, path string, payload interface{}, fallback string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.GetLogger().Warnw("Form submission request failed", "path", path, "error", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var apiErr apiError
	_ = json.NewDecoder(resp.Body).Decode(&apiErr)

	text := apiErr.Error
	if text == "" {
		text = apiErr.Message
	}
	if text == "" {
		text = fallback
	}
	logger.GetLogger().Warnw("Form submission rejected",
		"path", path, "status", resp.StatusCode, "message", text)
	return errors.New(text)
}
