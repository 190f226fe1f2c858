package core

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/segmentio/encoding/json"
)

// Fetcher retrieves the greeting shown by a view.
type Fetcher interface {
	FetchMessage(ctx context.Context) (string, error)
}

type APIClient struct {
	base string
	http *http.Client
}

type apiResponse struct {
	Message *string `json:"message"`
}

// NewAPIClient returns a client for the backend rooted at base. A nil hc
// gets a client without a timeout; requests end on response, transport error
// or context cancellation.
func NewAPIClient(base string, hc *http.Client) *APIClient {
	if hc == nil {
		hc = &http.Client{}
	}
	return &APIClient{
		base: strings.TrimRight(base, "/"),
		http: hc,
	}
}

func (c *APIClient) URL() string {
	return c.base + "/api/"
}

func (c *APIClient) FetchMessage(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAPIUnreachable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAPIUnreachable, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s", ErrAPIStatus, resp.Status)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAPIBody, err)
	}
	if body.Message == nil || *body.Message == "" {
		return "", fmt.Errorf("%w: missing message", ErrAPIBody)
	}

	return *body.Message, nil
}
