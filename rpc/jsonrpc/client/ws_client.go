package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/blouflashdb/nimiq-rpc/libs/log"
	rpctypes "github.com/blouflashdb/nimiq-rpc/rpc/jsonrpc/types"
)

// ErrConnectionClosed is returned by in-flight calls when the underlying
// websocket connection goes away before a response arrives.
var ErrConnectionClosed = errors.New("websocket connection closed")

// grace period for delivering the close frame on an explicit Close
const closeWriteWait = time.Second

// wsConnection owns a single websocket JSON-RPC channel. It correlates
// request/response pairs by id and routes server-push notifications,
// protocol errors and the close event to the hooks installed before start.
//
// The connection is exclusively owned by one subscription; it is never
// shared.
type wsConnection struct {
	conn   *websocket.Conn
	logger log.Logger

	// hooks, installed once between dial and start
	onNotification  func(rpctypes.SubscriptionParams)
	onProtocolError func(*rpctypes.RPCError)
	onClose         func(error)

	mtx     sync.Mutex
	nextID  int
	pending map[int]chan<- rpctypes.RPCResponse
	closed  bool

	closeOnce sync.Once
}

// newWSConnection dials the given websocket endpoint. The read loop is not
// started until start is called, so the caller can install hooks first.
func newWSConnection(endpoint string, logger log.Logger) (*wsConnection, error) {
	dialer := &websocket.Dialer{
		Proxy: http.ProxyFromEnvironment,
	}
	conn, _, err := dialer.Dial(endpoint, http.Header{})
	if err != nil {
		return nil, err
	}

	return &wsConnection{
		conn:    conn,
		logger:  logger,
		pending: make(map[int]chan<- rpctypes.RPCResponse),
	}, nil
}

func (c *wsConnection) start() {
	go c.readRoutine()
}

// Call sends the given method over the connection and waits for the matching
// response, bounded by ctx.
func (c *wsConnection) Call(ctx context.Context, method string, params []interface{}) (json.RawMessage, error) {
	ch := make(chan rpctypes.RPCResponse, 1)

	c.mtx.Lock()
	if c.closed {
		c.mtx.Unlock()
		return nil, ErrConnectionClosed
	}
	c.nextID++
	id := c.nextID
	request, err := rpctypes.ParamsToRequest(rpctypes.JSONRPCIntID(id), method, params)
	if err != nil {
		c.mtx.Unlock()
		return nil, err
	}
	c.pending[id] = ch
	// the lock also serializes writers, per the websocket package's
	// one-concurrent-writer requirement
	err = c.conn.WriteJSON(request)
	c.mtx.Unlock()

	if err != nil {
		c.forgetPending(id)
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	select {
	case response, ok := <-ch:
		if !ok {
			return nil, ErrConnectionClosed
		}
		if response.Error != nil {
			return nil, response.Error
		}
		return response.Result, nil
	case <-ctx.Done():
		c.forgetPending(id)
		return nil, ctx.Err()
	}
}

// Close tears the connection down. Idempotent; the close hook fires at most
// once per connection, with a nil error on explicit close.
func (c *wsConnection) Close() {
	// best effort; the server sees an abrupt close otherwise. WriteControl
	// is safe concurrently with an in-flight Call write and cannot block
	// behind one.
	_ = c.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(closeWriteWait),
	)
	c.terminate(nil)
}

func (c *wsConnection) forgetPending(id int) {
	c.mtx.Lock()
	delete(c.pending, id)
	c.mtx.Unlock()
}

func (c *wsConnection) readRoutine() {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			c.terminate(err)
			return
		}
		c.dispatch(data)
	}
}

func (c *wsConnection) dispatch(data []byte) {
	var frame struct {
		Method string `json:"method"`
	}
	if err := json.Unmarshal(data, &frame); err != nil {
		c.logger.Error("failed to parse incoming message", "err", err, "data", string(data))
		return
	}

	// server-push notifications carry a method and no id
	if frame.Method != "" {
		var notification rpctypes.RPCNotification
		if err := json.Unmarshal(data, &notification); err != nil {
			c.logger.Error("failed to parse notification", "err", err, "data", string(data))
			return
		}
		if c.onNotification != nil {
			c.onNotification(notification.Params)
		}
		return
	}

	var response rpctypes.RPCResponse
	if err := json.Unmarshal(data, &response); err != nil {
		c.logger.Error("failed to parse response", "err", err, "data", string(data))
		return
	}

	if id, ok := response.ID.(rpctypes.JSONRPCIntID); ok {
		c.mtx.Lock()
		ch := c.pending[int(id)]
		delete(c.pending, int(id))
		c.mtx.Unlock()
		if ch != nil {
			ch <- response
			return
		}
	}

	// an error frame not tied to any in-flight call is an async protocol error
	if response.Error != nil {
		if c.onProtocolError != nil {
			c.onProtocolError(response.Error)
		}
		return
	}

	c.logger.Debug("dropped unsolicited response", "resp", response)
}

// terminate marks the connection closed, fails all in-flight calls and fires
// the close hook exactly once.
func (c *wsConnection) terminate(err error) {
	c.closeOnce.Do(func() {
		// closing the socket first unblocks a Call write stalled on
		// backpressure, which holds the mutex we need next
		_ = c.conn.Close()

		c.mtx.Lock()
		c.closed = true
		pending := c.pending
		c.pending = nil
		c.mtx.Unlock()

		for _, ch := range pending {
			close(ch)
		}
		if c.onClose != nil {
			c.onClose(err)
		}
	})
}
