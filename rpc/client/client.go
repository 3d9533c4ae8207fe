/*
Package client provides a typed client for the JSON-RPC interface of an
Albatross node.

The client communicates with the node over HTTP for request/response calls
and over websocket for subscriptions. One Client may be shared by multiple
goroutines.

	c, err := client.New("http://localhost:8648")
	if err != nil { ... }
	head, err := c.GetLatestBlock(ctx, false)

Subscriptions survive connection loss: the underlying engine redials the
node and replays the subscribe request, delivering pushed events to the
supplied handler until the subscription is closed or the reconnect budget
is exhausted.
*/
package client

import (
	"fmt"

	"github.com/blouflashdb/nimiq-rpc/libs/log"
	rpcclient "github.com/blouflashdb/nimiq-rpc/rpc/jsonrpc/client"
)

// Client is a typed client for an Albatross node reachable at a remote
// endpoint of the form scheme://host:port.
type Client struct {
	remote string
	caller rpcclient.Caller
	logger log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the client logger. Defaults to a no-op logger. The logger
// is inherited by subscriptions opened through this client.
func WithLogger(logger log.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithCaller replaces the HTTP JSON-RPC caller, mainly for tests.
func WithCaller(caller rpcclient.Caller) Option {
	return func(c *Client) {
		c.caller = caller
	}
}

// New returns a Client pointed at the node behind remote.
func New(remote string, opts ...Option) (*Client, error) {
	c := &Client{
		remote: remote,
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.caller == nil {
		caller, err := rpcclient.New(remote)
		if err != nil {
			return nil, fmt.Errorf("rpc client: %w", err)
		}
		c.caller = caller
	}

	return c, nil
}

// Remote returns the endpoint address the client was created with.
func (c *Client) Remote() string {
	return c.remote
}
