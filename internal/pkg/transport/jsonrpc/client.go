// Package jsonrpc is a minimal JSON-RPC 2.0 client over HTTP. The CLI uses it
// to talk to a running bridge server.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrProviderReturnedError matches every error object returned by the remote
// server. Use errors.As with *ProviderError to read the code.
var ErrProviderReturnedError = errors.New("provider error")

// ProviderError is the error object of a JSON-RPC response.
type ProviderError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: [%d] - %s", ErrProviderReturnedError, e.Code, e.Message)
}

func (e *ProviderError) Is(target error) bool {
	return target == ErrProviderReturnedError
}

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Error   *ProviderError  `json:"error"`
	Result  json.RawMessage `json:"result"`
}

func (r response) err() error {
	if r.Error == nil {
		return nil
	}
	return r.Error
}

// Client sends JSON-RPC calls and hands back the raw result.
type Client interface {
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

type client struct {
	endpoint   string
	httpClient *http.Client
}

var _ Client = (*client)(nil)

// Fetch posts a single request with a fresh UUID id. A nil params list is
// sent as an empty array.
func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(request{
		JSONRPC: "2.0",
		ID:      uuid.NewString(),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode %s response (http %d): %w", method, res.StatusCode, err)
	}

	if err := data.err(); err != nil {
		return nil, err
	}

	return data.Result, nil
}

// NewClient returns a Client posting to endpoint through httpClient.
func NewClient(httpClient *http.Client, endpoint string) *client {
	return &client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}
