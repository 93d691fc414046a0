package widget

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ItemStatus is the per-item state returned by the status endpoint.
type ItemStatus struct {
	Count int64 `json:"count"`
	Liked bool  `json:"liked"`
}

// ToggleResult is the authoritative state returned by the toggle endpoint.
type ToggleResult struct {
	Liked bool  `json:"liked"`
	Count int64 `json:"count"`
}

// API is the slice of the backend the widget needs.
type API interface {
	Status(ctx context.Context, itemIDs []string, visitorID string) (map[string]ItemStatus, error)
	Toggle(ctx context.Context, itemID, visitorID string) (ToggleResult, error)
}

// NetworkError wraps a transport or non-success failure from the backend.
// It is never shown to the end visitor; the widget reacts by rolling back.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("like request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Client is the HTTP implementation of API. No retries: a failed request is
// reported once and the caller decides.
type Client struct {
	baseURL    string
	bearer     string
	httpClient *http.Client
}

// NewClient creates a Client for the backend at baseURL, authenticating
// every call with the host-supplied bearer credential.
func NewClient(baseURL, bearer string) *Client {
	return &Client{
		baseURL: baseURL,
		bearer:  bearer,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Status fetches count and liked state for the given items in one call.
func (c *Client) Status(ctx context.Context, itemIDs []string, visitorID string) (map[string]ItemStatus, error) {
	body := map[string]interface{}{
		"itemIds":   itemIDs,
		"visitorId": visitorID,
	}

	// The response body is the bare itemId -> {count, liked} mapping.
	resp := make(map[string]ItemStatus)
	if err := c.post(ctx, "/v1/likes/status", body, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Toggle flips the visitor's like state for one item.
func (c *Client) Toggle(ctx context.Context, itemID, visitorID string) (ToggleResult, error) {
	body := map[string]interface{}{
		"itemId":    itemID,
		"visitorId": visitorID,
	}

	var resp ToggleResult
	if err := c.post(ctx, "/v1/likes/toggle", body, &resp); err != nil {
		return ToggleResult{}, err
	}
	return resp, nil
}

func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &NetworkError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.bearer)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return &NetworkError{Err: fmt.Errorf("unexpected status %d", res.StatusCode)}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &NetworkError{Err: err}
	}
	return nil
}
