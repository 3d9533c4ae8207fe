package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/fortytw2/leaktest"
	"github.com/go-kit/kit/metrics/generic"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blouflashdb/nimiq-rpc/libs/log"
	rpctypes "github.com/blouflashdb/nimiq-rpc/rpc/jsonrpc/types"
)

var testCallTimeout = 5 * time.Second

// mockNode is a minimal websocket JSON-RPC server: every request it reads is
// answered with a fresh numeric subscription id, and the test can push
// notifications or kill connections at will.
type mockNode struct {
	t        *testing.T
	upgrader websocket.Upgrader

	mtx        sync.Mutex
	refuse     bool          // reject upgrades to simulate the node being down
	gate       chan struct{} // when set, responses are held until the gate closes
	dials      int
	conns      []*websocket.Conn
	closed     int // connections whose read loop has exited
	requests   []rpctypes.RPCRequest
	nextSubID  int64
	writeMtxes map[*websocket.Conn]*sync.Mutex
}

func newMockNode(t *testing.T) *mockNode {
	return &mockNode{
		t:          t,
		upgrader:   websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 1024},
		writeMtxes: make(map[*websocket.Conn]*sync.Mutex),
	}
}

func (n *mockNode) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	n.mtx.Lock()
	n.dials++
	refuse := n.refuse
	n.mtx.Unlock()

	if refuse {
		http.Error(w, "node is down", http.StatusInternalServerError)
		return
	}

	conn, err := n.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	n.mtx.Lock()
	n.conns = append(n.conns, conn)
	n.writeMtxes[conn] = &sync.Mutex{}
	n.mtx.Unlock()

	defer func() {
		n.mtx.Lock()
		n.closed++
		n.mtx.Unlock()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var req rpctypes.RPCRequest
		if err := json.Unmarshal(data, &req); err != nil {
			n.t.Errorf("mock node: bad request: %v", err)
			return
		}

		n.mtx.Lock()
		n.requests = append(n.requests, req)
		n.nextSubID++
		subID := n.nextSubID
		gate := n.gate
		n.mtx.Unlock()

		if gate != nil {
			<-gate
		}

		resp := fmt.Sprintf(`{"jsonrpc":"2.0","id":%s,"result":%d}`, req.ID, subID)
		if err := n.write(conn, []byte(resp)); err != nil {
			return
		}
	}
}

func (n *mockNode) write(conn *websocket.Conn, data []byte) error {
	n.mtx.Lock()
	wm := n.writeMtxes[conn]
	n.mtx.Unlock()

	wm.Lock()
	defer wm.Unlock()
	return conn.WriteMessage(websocket.TextMessage, data)
}

// push sends a notification with the given data payload on the most recent
// connection.
func (n *mockNode) push(data string) {
	n.mtx.Lock()
	require.NotEmpty(n.t, n.conns, "no live connection to push on")
	conn := n.conns[len(n.conns)-1]
	subID := n.nextSubID
	n.mtx.Unlock()

	frame := fmt.Sprintf(
		`{"jsonrpc":"2.0","method":"subscribeForHeadBlock","params":{"subscription":%d,"result":{"data":%s}}}`,
		subID, data,
	)
	require.NoError(n.t, n.write(conn, []byte(frame)))
}

// pushError sends an async error frame on the most recent connection.
func (n *mockNode) pushError(code int, msg string) {
	n.mtx.Lock()
	conn := n.conns[len(n.conns)-1]
	n.mtx.Unlock()

	frame := fmt.Sprintf(`{"jsonrpc":"2.0","id":null,"error":{"code":%d,"message":%q}}`, code, msg)
	require.NoError(n.t, n.write(conn, []byte(frame)))
}

// kill abruptly closes the most recent connection.
func (n *mockNode) kill() {
	n.mtx.Lock()
	conn := n.conns[len(n.conns)-1]
	n.mtx.Unlock()
	_ = conn.Close()
}

func (n *mockNode) setRefuse(refuse bool) {
	n.mtx.Lock()
	n.refuse = refuse
	n.mtx.Unlock()
}

func (n *mockNode) dialCount() int {
	n.mtx.Lock()
	defer n.mtx.Unlock()
	return n.dials
}

func (n *mockNode) requestCount() int {
	n.mtx.Lock()
	defer n.mtx.Unlock()
	return len(n.requests)
}

func (n *mockNode) liveConnCount() int {
	n.mtx.Lock()
	defer n.mtx.Unlock()
	return len(n.conns) - n.closed
}

func subscribeToMock(t *testing.T, remote string, cb Callbacks, opts ...SubscriptionOption) *Subscription {
	opts = append([]SubscriptionOption{
		CallTimeout(testCallTimeout),
		ReconnectInterval(10 * time.Millisecond),
		WithLogger(log.NewTestingLogger(t)),
	}, opts...)
	s, err := Subscribe(
		context.Background(),
		remote,
		Request{Method: "subscribeForHeadBlock", Params: []interface{}{true}},
		cb,
		opts...,
	)
	require.NoError(t, err)
	return s
}

func TestSubscribeDeliversInOrder(t *testing.T) {
	n := newMockNode(t)
	srv := httptest.NewServer(n)
	defer srv.Close()

	received := make(chan int64, 8)
	s := subscribeToMock(t, srv.URL, Callbacks{
		OnMessage: func(payload rpctypes.RPCData) {
			var block struct {
				Number int64 `json:"number"`
			}
			require.NoError(t, json.Unmarshal(payload.Data, &block))
			received <- block.Number
		},
	})
	defer s.Close()

	require.Greater(t, s.ID(), int64(0))

	for i := 1; i <= 4; i++ {
		n.push(fmt.Sprintf(`{"number":%d}`, i))
	}

	for want := int64(1); want <= 4; want++ {
		select {
		case got := <-received:
			assert.Equal(t, want, got)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for notification %d", want)
		}
	}
}

func TestSubscribeFilter(t *testing.T) {
	n := newMockNode(t)
	srv := httptest.NewServer(n)
	defer srv.Close()

	received := make(chan int64, 8)
	s := subscribeToMock(t, srv.URL, Callbacks{
		OnMessage: func(payload rpctypes.RPCData) {
			var block struct {
				Number int64 `json:"number"`
			}
			require.NoError(t, json.Unmarshal(payload.Data, &block))
			received <- block.Number
		},
	}, WithFilter(func(data json.RawMessage) bool {
		var block struct {
			Number int64 `json:"number"`
		}
		if err := json.Unmarshal(data, &block); err != nil {
			return false
		}
		return block.Number%2 == 0
	}))
	defer s.Close()

	for i := 1; i <= 4; i++ {
		n.push(fmt.Sprintf(`{"number":%d}`, i))
	}

	// only 2 and 4 pass the filter, in order
	for _, want := range []int64{2, 4} {
		select {
		case got := <-received:
			assert.Equal(t, want, got)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for notification %d", want)
		}
	}
	select {
	case got := <-received:
		t.Fatalf("unexpected extra notification: %d", got)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSubscribeInitialFailure(t *testing.T) {
	n := newMockNode(t)
	n.setRefuse(true)
	srv := httptest.NewServer(n)
	defer srv.Close()

	_, err := Subscribe(
		context.Background(),
		srv.URL,
		Request{Method: "subscribeForHeadBlock", Params: nil},
		Callbacks{},
		CallTimeout(testCallTimeout),
	)
	require.Error(t, err)

	// an initial failure must not trigger reconnects
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, n.dialCount())
}

func TestCloseIsIdempotent(t *testing.T) {
	defer leaktest.CheckTimeout(t, time.Second)()

	n := newMockNode(t)
	srv := httptest.NewServer(n)
	defer srv.Close()

	received := make(chan struct{}, 1)
	s := subscribeToMock(t, srv.URL, Callbacks{
		OnMessage: func(rpctypes.RPCData) { received <- struct{}{} },
	})

	s.Close()
	s.Close()
	assert.False(t, s.IsActive())

	// pushing on the server side after close must not reach the handler
	// (the connection is gone; give a failed push some slack)
	time.Sleep(20 * time.Millisecond)
	select {
	case <-received:
		t.Fatal("notification delivered after Close")
	default:
	}
}

func TestCloseFromWithinCallback(t *testing.T) {
	n := newMockNode(t)
	srv := httptest.NewServer(n)
	defer srv.Close()

	var s *Subscription
	count := 0
	done := make(chan struct{})
	s = subscribeToMock(t, srv.URL, Callbacks{
		OnMessage: func(rpctypes.RPCData) {
			count++
			s.Close()
			close(done)
		},
	})

	n.push(`{"number":1}`)
	n.push(`{"number":2}`)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler never ran")
	}

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, count, "no notification may be delivered after Close")
	assert.False(t, s.IsActive())
}

func TestReconnectBound(t *testing.T) {
	n := newMockNode(t)
	srv := httptest.NewServer(n)
	defer srv.Close()

	closed := make(chan error, 1)
	s := subscribeToMock(t, srv.URL, Callbacks{
		OnClosed: func(reason error) { closed <- reason },
	}, MaxReconnectAttempts(2))
	defer s.Close()

	dialsBefore := n.dialCount()
	n.setRefuse(true)
	n.kill()

	select {
	case reason := <-closed:
		require.ErrorIs(t, reason, ErrReconnectExhausted)
	case <-time.After(2 * time.Second):
		t.Fatal("subscription never reached the terminal state")
	}

	// exactly 2 reconnect attempts, then no more
	assert.Equal(t, 2, n.dialCount()-dialsBefore)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 2, n.dialCount()-dialsBefore)
	assert.False(t, s.IsActive())
}

func TestReconnectResetsCounter(t *testing.T) {
	n := newMockNode(t)
	srv := httptest.NewServer(n)
	defer srv.Close()

	s := subscribeToMock(t, srv.URL, Callbacks{}, MaxReconnectAttempts(1))
	defer s.Close()

	firstID := s.ID()

	// two isolated disconnects, each within a budget of 1, must both recover
	for i := 0; i < 2; i++ {
		before := n.requestCount()
		n.kill()
		require.Eventually(t, func() bool {
			return n.requestCount() > before
		}, 2*time.Second, 5*time.Millisecond, "re-subscribe %d never arrived", i+1)
	}

	require.Eventually(t, func() bool {
		return s.ID() == firstID+2
	}, time.Second, 5*time.Millisecond)
	assert.True(t, s.IsActive())
}

func TestReconnectReplaysRequest(t *testing.T) {
	n := newMockNode(t)
	srv := httptest.NewServer(n)
	defer srv.Close()

	params := []interface{}{"NQ07 0000 0000 0000 0000 0000 0000 0000 0000", []string{"transfer"}}
	s, err := Subscribe(
		context.Background(),
		srv.URL,
		Request{Method: "subscribeForLogsByAddressesAndTypes", Params: params},
		Callbacks{},
		CallTimeout(testCallTimeout),
		ReconnectInterval(10*time.Millisecond),
		WithLogger(log.NewTestingLogger(t)),
	)
	require.NoError(t, err)
	defer s.Close()

	n.kill()
	require.Eventually(t, func() bool {
		return n.requestCount() == 2
	}, 2*time.Second, 5*time.Millisecond)

	n.mtx.Lock()
	defer n.mtx.Unlock()
	require.Len(t, n.requests, 2)
	assert.Equal(t, n.requests[0].Method, n.requests[1].Method)
	assert.JSONEq(t, string(n.requests[0].Params), string(n.requests[1].Params))
}

func TestCloseCancelsPendingReconnect(t *testing.T) {
	n := newMockNode(t)
	srv := httptest.NewServer(n)
	defer srv.Close()

	s := subscribeToMock(t, srv.URL, Callbacks{}, ReconnectInterval(50*time.Millisecond))

	dialsBefore := n.dialCount()
	n.kill()
	s.Close() // before the reconnect timer fires

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, 0, n.dialCount()-dialsBefore, "no reconnect may happen after Close")
}

func TestCloseRacingInflightReconnect(t *testing.T) {
	n := newMockNode(t)
	srv := httptest.NewServer(n)
	defer srv.Close()

	received := make(chan struct{}, 1)
	s := subscribeToMock(t, srv.URL, Callbacks{
		OnMessage: func(rpctypes.RPCData) { received <- struct{}{} },
	})

	// hold the re-subscribe response so the reconnect is in flight when we
	// close the subscription
	gate := make(chan struct{})
	n.mtx.Lock()
	n.gate = gate
	n.mtx.Unlock()

	dialsBefore := n.dialCount()
	n.kill()

	require.Eventually(t, func() bool {
		return n.dialCount() > dialsBefore
	}, 2*time.Second, 5*time.Millisecond, "reconnect never started")

	s.Close()
	close(gate)

	// the connection adopted after Close must be shut, not used
	require.Eventually(t, func() bool {
		return n.liveConnCount() == 0
	}, 2*time.Second, 5*time.Millisecond, "client kept the post-Close connection alive")

	select {
	case <-received:
		t.Fatal("notification delivered after Close")
	default:
	}
}

func TestSubscriptionMetrics(t *testing.T) {
	n := newMockNode(t)
	srv := httptest.NewServer(n)
	defer srv.Close()

	m := &Metrics{
		Reconnects:            generic.NewCounter("reconnects"),
		Notifications:         generic.NewCounter("notifications"),
		FilteredNotifications: generic.NewCounter("filtered_notifications"),
	}

	received := make(chan int64, 8)
	s := subscribeToMock(t, srv.URL, Callbacks{
		OnMessage: func(payload rpctypes.RPCData) {
			var block struct {
				Number int64 `json:"number"`
			}
			require.NoError(t, json.Unmarshal(payload.Data, &block))
			received <- block.Number
		},
	},
		WithMetrics(m),
		WithFilter(func(data json.RawMessage) bool {
			var block struct {
				Number int64 `json:"number"`
			}
			if err := json.Unmarshal(data, &block); err != nil {
				return false
			}
			return block.Number%2 == 0
		}),
	)
	defer s.Close()

	for i := 1; i <= 4; i++ {
		n.push(fmt.Sprintf(`{"number":%d}`, i))
	}
	for _, want := range []int64{2, 4} {
		select {
		case got := <-received:
			require.Equal(t, want, got)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for notification %d", want)
		}
	}

	// notifications are dispatched sequentially, so once 4 is delivered the
	// drops for 1 and 3 are recorded too
	assert.Equal(t, float64(2), m.Notifications.(*generic.Counter).Value())
	assert.Equal(t, float64(2), m.FilteredNotifications.(*generic.Counter).Value())
	assert.Equal(t, float64(0), m.Reconnects.(*generic.Counter).Value())

	before := n.requestCount()
	n.kill()
	require.Eventually(t, func() bool {
		return n.requestCount() > before
	}, 2*time.Second, 5*time.Millisecond, "re-subscribe never arrived")

	assert.Equal(t, float64(1), m.Reconnects.(*generic.Counter).Value())
}

// captureLogger records message lines so tests can assert on them.
type captureLogger struct {
	mtx  sync.Mutex
	msgs []string
}

func (l *captureLogger) Debug(msg string, keyvals ...interface{}) { l.record(msg) }
func (l *captureLogger) Info(msg string, keyvals ...interface{})  { l.record(msg) }
func (l *captureLogger) Error(msg string, keyvals ...interface{}) { l.record(msg) }
func (l *captureLogger) With(keyvals ...interface{}) log.Logger   { return l }

func (l *captureLogger) record(msg string) {
	l.mtx.Lock()
	l.msgs = append(l.msgs, msg)
	l.mtx.Unlock()
}

func (l *captureLogger) count(msg string) int {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	n := 0
	for _, m := range l.msgs {
		if m == msg {
			n++
		}
	}
	return n
}

func TestCloseRacedReconnectDoesNotReportSuccess(t *testing.T) {
	n := newMockNode(t)
	srv := httptest.NewServer(n)
	defer srv.Close()

	logger := &captureLogger{}
	s := subscribeToMock(t, srv.URL, Callbacks{}, WithLogger(logger))

	gate := make(chan struct{})
	n.mtx.Lock()
	n.gate = gate
	n.mtx.Unlock()

	dialsBefore := n.dialCount()
	n.kill()
	require.Eventually(t, func() bool {
		return n.dialCount() > dialsBefore
	}, 2*time.Second, 5*time.Millisecond, "reconnect never started")

	s.Close()
	close(gate)

	require.Eventually(t, func() bool {
		return n.liveConnCount() == 0
	}, 2*time.Second, 5*time.Millisecond)

	// only the initial subscribe may have been reported as established
	assert.Equal(t, 1, logger.count("subscription established"))
}

func TestProtocolErrorDoesNotReconnect(t *testing.T) {
	n := newMockNode(t)
	srv := httptest.NewServer(n)
	defer srv.Close()

	errs := make(chan *rpctypes.RPCError, 1)
	s := subscribeToMock(t, srv.URL, Callbacks{
		OnError: func(rpcErr *rpctypes.RPCError) { errs <- rpcErr },
	})
	defer s.Close()

	dialsBefore := n.dialCount()
	n.pushError(-32000, "mempool full")

	select {
	case rpcErr := <-errs:
		assert.Equal(t, -32000, rpcErr.Code)
	case <-time.After(time.Second):
		t.Fatal("OnError never fired")
	}

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, n.dialCount()-dialsBefore)
	assert.True(t, s.IsActive())
}
