package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/blouflashdb/nimiq-rpc/libs/log"
	rpctypes "github.com/blouflashdb/nimiq-rpc/rpc/jsonrpc/types"
)

const (
	defaultCallTimeout          = 30 * time.Second
	defaultReconnectInterval    = 3 * time.Second
	defaultMaxReconnectAttempts = 5
)

// ErrReconnectExhausted is the terminal reason passed to OnClosed when the
// reconnect budget is spent without regaining a connection.
var ErrReconnectExhausted = errors.New("maximum reconnect attempts reached")

// Request identifies which server-side event stream to open. It is replayed
// verbatim on every reconnect, so it must not be mutated after subscribing.
type Request struct {
	Method string
	Params []interface{}
}

// Callbacks are invoked by the subscription for incoming events. All fields
// are optional. OnMessage receives every notification that passes the
// filter, in the order the transport received them. OnError receives
// server-side RPC errors unrelated to connection loss. OnConnectionError
// receives socket-level errors; these are informational and do not affect
// the subscription state. OnClosed fires exactly once when the subscription
// terminates without an explicit Close, e.g. on reconnect exhaustion.
type Callbacks struct {
	OnMessage         func(rpctypes.RPCData)
	OnError           func(*rpctypes.RPCError)
	OnConnectionError func(error)
	OnClosed          func(reason error)
}

// SubscriptionOption configures a Subscription. Options must only be passed
// to Subscribe; they are not safe to apply afterwards.
type SubscriptionOption func(*Subscription)

// CallTimeout bounds the subscribe round trip, both on the initial call and
// on every re-subscribe after a reconnect. Defaults to 30s.
func CallTimeout(d time.Duration) SubscriptionOption {
	return func(s *Subscription) {
		s.callTimeout = d
	}
}

// ReconnectInterval sets the fixed delay between an unexpected disconnect
// and the next reconnect attempt. Defaults to 3s. There is no backoff.
func ReconnectInterval(d time.Duration) SubscriptionOption {
	return func(s *Subscription) {
		s.reconnectInterval = d
	}
}

// MaxReconnectAttempts sets how many consecutive reconnect attempts are made
// before the subscription becomes terminal. Defaults to 5. The budget is
// restored in full by every successful reconnect.
func MaxReconnectAttempts(max int) SubscriptionOption {
	return func(s *Subscription) {
		s.maxReconnectAttempts = max
	}
}

// WithFilter installs a predicate over the raw notification payload. Only
// payloads the predicate accepts are delivered to OnMessage; the rest are
// dropped silently. The predicate must be side-effect free.
func WithFilter(filter func(data json.RawMessage) bool) SubscriptionOption {
	return func(s *Subscription) {
		s.filter = filter
	}
}

// WithLogger sets the subscription logger. Defaults to a no-op logger.
func WithLogger(logger log.Logger) SubscriptionOption {
	return func(s *Subscription) {
		s.logger = logger
	}
}

// WithMetrics sets the metrics recorded by the subscription. Defaults to
// no-op metrics.
func WithMetrics(metrics *Metrics) SubscriptionOption {
	return func(s *Subscription) {
		s.metrics = metrics
	}
}

// Subscription is a reconnect-resilient stream of server-pushed events tied
// to one subscribe call. It owns exactly one websocket connection at a time
// and transparently redials and re-subscribes after an unexpected
// disconnect, replaying the original request.
//
// The methods of Subscription are safe for use by multiple goroutines, and
// Close may be called from inside any of the callbacks.
type Subscription struct {
	logger  log.Logger
	metrics *Metrics

	endpoint string
	req      Request
	cb       Callbacks

	callTimeout          time.Duration
	reconnectInterval    time.Duration
	maxReconnectAttempts int
	filter               func(json.RawMessage) bool

	mtx         sync.Mutex
	conn        *wsConnection
	id          int64 // server-issued subscription identity
	disconnects int   // consecutive unexpected closes, reset on successful (re)subscribe
	established bool  // the first subscribe succeeded; reconnects allowed
	forceClosed bool  // the caller closed us; suppress everything
	closed      bool  // terminal, whether by Close or exhaustion
}

// Subscribe opens a websocket connection to the node behind remote, issues
// the subscribe request and returns the live subscription handle. The
// websocket endpoint is derived from remote (http→ws, path /ws).
//
// Subscribe returns only after the first subscription is established; an
// initial connection or subscribe failure is returned as an error and no
// reconnect is attempted for it.
func Subscribe(ctx context.Context, remote string, req Request, cb Callbacks, opts ...SubscriptionOption) (*Subscription, error) {
	endpoint, err := WebsocketEndpoint(remote)
	if err != nil {
		return nil, err
	}

	s := &Subscription{
		logger:               log.NewNopLogger(),
		metrics:              NopMetrics(),
		endpoint:             endpoint,
		req:                  req,
		cb:                   cb,
		callTimeout:          defaultCallTimeout,
		reconnectInterval:    defaultReconnectInterval,
		maxReconnectAttempts: defaultMaxReconnectAttempts,
		filter:               func(json.RawMessage) bool { return true },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("method", req.Method)

	if err := s.connect(ctx); err != nil {
		return nil, fmt.Errorf("subscribe %s: %w", req.Method, err)
	}

	return s, nil
}

// ID returns the most recently known server-issued subscription identity. It
// may be stale for a brief window while a reconnect is in flight.
func (s *Subscription) ID() int64 {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.id
}

// IsActive reports whether the subscription still delivers, or will resume
// delivering, notifications.
func (s *Subscription) IsActive() bool {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return !s.closed
}

// Close terminates the subscription and the underlying connection. It is
// idempotent, does not wait for a server-side acknowledgement, and cancels
// any pending reconnect. No OnMessage callback fires once Close returns.
func (s *Subscription) Close() {
	s.mtx.Lock()
	if s.forceClosed {
		s.mtx.Unlock()
		return
	}
	s.forceClosed = true
	s.closed = true
	conn := s.conn
	s.conn = nil
	s.mtx.Unlock()

	if conn != nil {
		conn.Close()
	}
	s.logger.Debug("subscription closed")
}

// connect dials a fresh connection, installs it as live and replays the
// subscribe request. On success the subscription identity is updated and the
// disconnect counter is reset. Dial failures count against the reconnect
// budget (except before the first subscription is established, where the
// caller sees the error directly).
func (s *Subscription) connect(ctx context.Context) error {
	conn, err := newWSConnection(s.endpoint, s.logger)
	if err != nil {
		s.connectionLost()
		return fmt.Errorf("dial %s: %w", s.endpoint, err)
	}

	conn.onNotification = func(params rpctypes.SubscriptionParams) {
		s.handleNotification(conn, params)
	}
	conn.onProtocolError = func(rpcErr *rpctypes.RPCError) {
		s.handleProtocolError(conn, rpcErr)
	}
	conn.onClose = func(err error) {
		s.handleClose(conn, err)
	}

	// the force-close flag is checked before the new connection is
	// installed as live; a racing Close must win
	s.mtx.Lock()
	if s.closed {
		s.mtx.Unlock()
		conn.Close()
		return ErrConnectionClosed
	}
	s.conn = conn
	s.mtx.Unlock()

	conn.start()

	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()
	result, err := conn.Call(callCtx, s.req.Method, s.req.Params)
	if err != nil {
		conn.Close()
		return err
	}

	var id int64
	if err := json.Unmarshal(result, &id); err != nil {
		conn.Close()
		return fmt.Errorf("invalid subscription id %q: %w", result, err)
	}

	s.mtx.Lock()
	if s.conn != conn { // closed while the call was in flight
		s.mtx.Unlock()
		return ErrConnectionClosed
	}
	s.id = id
	s.disconnects = 0
	s.established = true
	s.mtx.Unlock()

	s.logger.Info("subscription established", "id", id)
	return nil
}

func (s *Subscription) handleNotification(conn *wsConnection, params rpctypes.SubscriptionParams) {
	s.mtx.Lock()
	if s.closed || conn != s.conn {
		s.mtx.Unlock()
		return
	}
	onMessage := s.cb.OnMessage
	s.mtx.Unlock()

	if !s.filter(params.Result.Data) {
		s.metrics.FilteredNotifications.Add(1)
		return
	}

	s.metrics.Notifications.Add(1)
	if onMessage != nil {
		onMessage(params.Result)
	}
}

func (s *Subscription) handleProtocolError(conn *wsConnection, rpcErr *rpctypes.RPCError) {
	s.mtx.Lock()
	if s.closed || conn != s.conn {
		s.mtx.Unlock()
		return
	}
	onError := s.cb.OnError
	s.mtx.Unlock()

	s.logger.Error("server error", "err", rpcErr)
	if onError != nil {
		onError(rpcErr)
	}
}

func (s *Subscription) handleClose(conn *wsConnection, err error) {
	s.mtx.Lock()
	if conn != s.conn { // explicitly closed, or already replaced
		s.mtx.Unlock()
		return
	}
	s.conn = nil
	onConnectionError := s.cb.OnConnectionError
	s.mtx.Unlock()

	if isAbnormalClose(err) {
		s.logger.Error("connection error", "err", err)
		if onConnectionError != nil {
			onConnectionError(err)
		}
	}

	s.connectionLost()
}

// connectionLost records an unexpected disconnect and either schedules the
// next reconnect attempt or, once the budget is spent, moves the
// subscription to its terminal state.
func (s *Subscription) connectionLost() {
	s.mtx.Lock()
	if s.closed || !s.established {
		s.mtx.Unlock()
		return
	}
	s.disconnects++
	if s.disconnects > s.maxReconnectAttempts {
		s.closed = true
		onClosed := s.cb.OnClosed
		s.mtx.Unlock()

		s.logger.Error("reconnect attempts exhausted", "attempts", s.maxReconnectAttempts)
		if onClosed != nil {
			onClosed(ErrReconnectExhausted)
		}
		return
	}
	attempt := s.disconnects
	s.mtx.Unlock()

	s.logger.Info("connection lost, scheduling reconnect",
		"attempt", attempt, "max", s.maxReconnectAttempts, "in", s.reconnectInterval)
	time.AfterFunc(s.reconnectInterval, s.reconnect)
}

func (s *Subscription) reconnect() {
	s.mtx.Lock()
	if s.closed {
		s.mtx.Unlock()
		return
	}
	attempt := s.disconnects
	s.mtx.Unlock()

	s.metrics.Reconnects.Add(1)
	s.logger.Info("reconnecting", "attempt", attempt, "max", s.maxReconnectAttempts)

	// failure bookkeeping happens inside connect: a dial error feeds
	// connectionLost directly, a failed subscribe call closes the adopted
	// connection which arrives back through handleClose
	if err := s.connect(context.Background()); err != nil {
		s.logger.Error("reconnect attempt failed", "err", err)
	}
}

func isAbnormalClose(err error) bool {
	if err == nil {
		return false
	}
	return !websocket.IsCloseError(err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway,
	)
}
