package forms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// StatusError is a non-2xx API response with the server's error message.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// IsConflict reports whether err is a 409 response, i.e. the entity is still
// referenced by others.
func IsConflict(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusConflict
}

// APIClient talks to the entity endpoints over JSON.
type APIClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewAPIClient builds a client for the API at baseURL authenticating with the
// given bearer token.
func NewAPIClient(baseURL, token string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *APIClient) Create(ctx context.Context, storeID, resource string, payload any) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/%s/%s", storeID, resource), payload)
}

func (c *APIClient) Update(ctx context.Context, storeID, resource, entityID string, payload any) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/%s/%s/%s", storeID, resource, entityID), payload)
}

func (c *APIClient) Delete(ctx context.Context, storeID, resource, entityID string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/%s/%s/%s", storeID, resource, entityID), nil)
}

func (c *APIClient) do(ctx context.Context, method, path string, payload any) error {
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	return &StatusError{
		StatusCode: resp.StatusCode,
		Message:    decodeErrorMessage(resp),
	}
}

func decodeErrorMessage(resp *http.Response) string {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Error.Message == "" {
		return http.StatusText(resp.StatusCode)
	}
	return envelope.Error.Message
}
