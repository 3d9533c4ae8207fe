package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fortytw2/leaktest"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/blouflashdb/nimiq-rpc/libs/log"
)

// TestCloseDuringBlockedWrite closes the connection while a Call write is
// stalled on TCP backpressure against a server that never reads. Close must
// neither race the in-flight write nor block behind it, and the call must
// fail out.
func TestCloseDuringBlockedWrite(t *testing.T) {
	defer leaktest.CheckTimeout(t, 10*time.Second)()

	upgrader := websocket.Upgrader{}
	connected := make(chan struct{})
	stop := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serverConn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		close(connected)
		// deliberately never read, so the client write backs up
		<-stop
		serverConn.Close()
	}))
	defer srv.Close()
	defer close(stop)

	endpoint, err := WebsocketEndpoint(srv.URL)
	require.NoError(t, err)

	conn, err := newWSConnection(endpoint, log.NewTestingLogger(t))
	require.NoError(t, err)
	conn.start()
	<-connected

	// large enough to overrun the websocket and kernel socket buffers
	payload := strings.Repeat("x", 1<<22)
	callErr := make(chan error, 1)
	go func() {
		_, err := conn.Call(context.Background(), "sendRawTransaction", []interface{}{payload})
		callErr <- err
	}()

	// let the write stall before closing
	time.Sleep(100 * time.Millisecond)
	conn.Close()
	conn.Close() // still idempotent with a write in flight

	select {
	case err := <-callErr:
		require.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("call never returned after Close")
	}
}
