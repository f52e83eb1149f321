package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Client is the single outbound HTTP adapter for the admin API. It owns the
// base URL, attaches the bearer token to every request and surfaces server
// errors as HTTPError values.
type Client struct {
	BaseURL    string
	BasePath   string
	Token      string
	HTTPClient *http.Client
}

// HTTPError carries a server-reported failure.
type HTTPError struct {
	Message string
	Status  int
}

func (e *HTTPError) Error() string {
	return e.Message
}

// errorEnvelope is the error body shape the API uses.
type errorEnvelope struct {
	Message string `json:"message"`
}

// New creates a client for the API rooted at baseURL+basePath.
func New(baseURL, basePath string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		BasePath:   basePath,
		HTTPClient: &http.Client{},
	}
}

// Get performs a GET request against the API path.
func (c *Client) Get(path string) ([]byte, int, error) {
	return c.do(http.MethodGet, path, nil)
}

// Post performs a POST request with a JSON body. A nil body sends no payload.
func (c *Client) Post(path string, body any) ([]byte, int, error) {
	payload, err := marshalBody(body)
	if err != nil {
		return nil, 0, err
	}
	return c.do(http.MethodPost, path, payload)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(path string, body any) ([]byte, int, error) {
	payload, err := marshalBody(body)
	if err != nil {
		return nil, 0, err
	}
	return c.do(http.MethodPut, path, payload)
}

// Delete performs a DELETE request against the API path.
func (c *Client) Delete(path string) ([]byte, int, error) {
	return c.do(http.MethodDelete, path, nil)
}

func marshalBody(body any) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return payload, nil
}

// Helper function for making HTTP requests to the admin API.
func (c *Client) do(method, path string, body []byte) ([]byte, int, error) {
	url := c.BaseURL + c.BasePath + path

	req, err := http.NewRequest(method, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	if c.Token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.Token))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		log.Debug().Str("method", method).Str("url", url).
			Int("status", resp.StatusCode).Msg("api request failed")

		// Forward the server's message when the body carries one
		var envelope errorEnvelope
		if err := json.Unmarshal(respBody, &envelope); err != nil || envelope.Message == "" {
			envelope.Message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return respBody, resp.StatusCode, &HTTPError{Message: envelope.Message, Status: resp.StatusCode}
	}

	return respBody, resp.StatusCode, nil
}
