// Package graph executes workbook request descriptors against a Microsoft
// Graph REST host.
package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/workbooktools/workbook-app-graph/workbook"
)

// Client issues a single HTTP request for a descriptor, joining the resource
// host with the API version segment and the descriptor path. It does not
// retry.
type Client struct {
	Resource string
	Version  string
	HTTP     *http.Client
}

// NewClient creates a client for a resource host (e.g.
// https://graph.microsoft.com) and API version (e.g. v1.0).
func NewClient(resource, version string) *Client {
	return &Client{
		Resource: resource,
		Version:  version,
		HTTP: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Execute performs the HTTP call described by the descriptor, attaching the
// access token as a bearer credential, and returns the raw JSON response
// body. A response with an empty body (e.g. from clear or delete) returns
// nil.
func (c *Client) Execute(ctx context.Context, descriptor workbook.Descriptor, token string) (json.RawMessage, error) {
	endpoint := strings.TrimSuffix(c.Resource, "/") + "/" + c.Version + descriptor.Path

	var body io.Reader
	if descriptor.Body != nil {
		encoded, err := json.Marshal(descriptor.Body)
		if err != nil {
			return nil, fmt.Errorf("unable to encode request body (%w)", err)
		}

		body = bytes.NewReader(encoded)
	}

	rq, err := http.NewRequestWithContext(ctx, descriptor.Method, endpoint, body)
	if err != nil {
		return nil, err
	}

	rq.Header.Set("Authorization", "Bearer "+token)
	rq.Header.Set("Accept", "application/json")
	rq.Header.Set("client-request-id", uuid.NewString())
	if descriptor.Body != nil {
		rq.Header.Set("Content-Type", "application/json")
	}

	response, err := c.HTTP.Do(rq)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close()

	b, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, apiError(response.StatusCode, b)
	}

	if len(b) == 0 {
		return nil, nil
	}

	return json.RawMessage(b), nil
}

// apiError decodes the Graph error envelope ({"error":{"code","message"}}),
// falling back to the HTTP status when the body is not an error document.
func apiError(status int, body []byte) error {
	envelope := struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}{}

	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Code != "" {
		return fmt.Errorf("API error %s (%s)", envelope.Error.Code, envelope.Error.Message)
	}

	return fmt.Errorf("request failed with status %d", status)
}
