package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	rpctypes "github.com/blouflashdb/nimiq-rpc/rpc/jsonrpc/types"
)

// Client is a JSON-RPC client which sends POST HTTP requests to the remote
// server. Params are encoded as a positional array, the way the Albatross RPC
// interface expects them.
//
// Client is safe for concurrent use by multiple goroutines.
type Client struct {
	address  string
	username string
	password string

	client *http.Client
	id     rpctypes.JSONRPCStringID
}

// Caller implementers can facilitate calling the JSON-RPC endpoint.
type Caller interface {
	Call(ctx context.Context, method string, params []interface{}, result interface{}) error
}

var _ Caller = (*Client)(nil)

// New returns a Client pointed at the given address. Basic-auth credentials
// embedded in the URL userinfo are applied to every request. An error is
// returned on an invalid remote.
func New(remote string) (*Client, error) {
	return NewWithHTTPClient(remote, &http.Client{})
}

// NewWithHTTPClient returns a Client pointed at the given address using a
// custom http client.
func NewWithHTTPClient(remote string, client *http.Client) (*Client, error) {
	if client == nil {
		return nil, fmt.Errorf("nil http.Client")
	}

	parsedURL, err := newParsedURL(remote)
	if err != nil {
		return nil, fmt.Errorf("invalid remote %q: %w", remote, err)
	}
	parsedURL.SetDefaultSchemeHTTP()

	username := parsedURL.User.Username()
	password, _ := parsedURL.User.Password()
	parsedURL.User = nil

	return &Client{
		address:  parsedURL.String(),
		username: username,
		password: password,
		client:   client,
		id:       rpctypes.JSONRPCStringID("nimiq-rpc-" + uuid.NewString()[:8]),
	}, nil
}

// Call issues the request for the given method through to the RPC endpoint
// and unmarshals the result into result, unwrapping the {data, metadata}
// envelope the server wraps state-derived results in.
func (c *Client) Call(ctx context.Context, method string, params []interface{}, result interface{}) error {
	request, err := rpctypes.ParamsToRequest(c.id, method, params)
	if err != nil {
		return fmt.Errorf("failed to encode params: %w", err)
	}

	requestBytes, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, c.address, bytes.NewBuffer(requestBytes))
	if err != nil {
		return fmt.Errorf("request setup failed: %w", err)
	}
	httpRequest.Header.Set("Content-Type", "application/json")
	if c.username != "" || c.password != "" {
		httpRequest.SetBasicAuth(c.username, c.password)
	}

	httpResponse, err := c.client.Do(httpRequest)
	if err != nil {
		return err
	}
	defer httpResponse.Body.Close()

	responseBytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	return unmarshalResponseBytes(responseBytes, c.id, result)
}

// Remote returns the normalized address of the RPC endpoint.
func (c *Client) Remote() string {
	return c.address
}
