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
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blouflashdb/nimiq-rpc/libs/log"
	rpctypes "github.com/blouflashdb/nimiq-rpc/rpc/jsonrpc/types"
	"github.com/blouflashdb/nimiq-rpc/types"
)

// headBlockNode answers every websocket request with subscription id 1 and
// lets the test push head blocks.
type headBlockNode struct {
	t        *testing.T
	upgrader websocket.Upgrader

	mtx      sync.Mutex
	conn     *websocket.Conn
	writeMtx sync.Mutex
	method   string
}

func (n *headBlockNode) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := n.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	n.mtx.Lock()
	n.conn = conn
	n.mtx.Unlock()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var req rpctypes.RPCRequest
		if err := json.Unmarshal(data, &req); err != nil {
			continue
		}
		n.mtx.Lock()
		n.method = req.Method
		n.mtx.Unlock()

		id, _ := json.Marshal(req.ID)
		n.write([]byte(fmt.Sprintf(`{"jsonrpc":"2.0","id":%s,"result":1}`, id)))
	}
}

func (n *headBlockNode) write(msg []byte) {
	n.writeMtx.Lock()
	defer n.writeMtx.Unlock()
	n.mtx.Lock()
	conn := n.conn
	n.mtx.Unlock()
	require.NoError(n.t, conn.WriteMessage(websocket.TextMessage, msg))
}

func (n *headBlockNode) pushBlock(blockJSON string) {
	n.write([]byte(fmt.Sprintf(
		`{"jsonrpc":"2.0","method":"subscribeForHeadBlock","params":{"subscription":1,"result":{"data":%s,"metadata":null}}}`,
		blockJSON)))
}

func TestSubscribeForHeadBlockFilter(t *testing.T) {
	defer leaktest.CheckTimeout(t, 10*time.Second)()

	node := &headBlockNode{t: t, upgrader: websocket.Upgrader{}}
	srv := httptest.NewServer(node)
	defer srv.Close()

	c, err := New(srv.URL, WithLogger(log.NewTestingLogger(t)))
	require.NoError(t, err)

	blocks := make(chan *types.Block, 4)
	sub, err := c.SubscribeForHeadBlock(context.Background(), false, func(b *types.Block) {
		blocks <- b
	}, types.MacroBlocks)
	require.NoError(t, err)
	defer sub.Close()

	node.mtx.Lock()
	assert.Equal(t, "subscribeForHeadBlock", node.method)
	node.mtx.Unlock()

	node.pushBlock(`{"number":1,"type":"micro"}`)
	node.pushBlock(`{"number":2,"type":"macro"}`)
	node.pushBlock(`{"number":3,"type":"micro"}`)
	node.pushBlock(`{"number":4,"type":"macro","isElectionBlock":true}`)

	for _, want := range []int64{2, 4} {
		select {
		case b := <-blocks:
			assert.Equal(t, want, b.Number)
			assert.True(t, b.IsMacro())
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for block %d", want)
		}
	}
	select {
	case b := <-blocks:
		t.Fatalf("unexpected extra block %d", b.Number)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSubscribeForHeadBlockHash(t *testing.T) {
	defer leaktest.CheckTimeout(t, 10*time.Second)()

	node := &headBlockNode{t: t, upgrader: websocket.Upgrader{}}
	srv := httptest.NewServer(node)
	defer srv.Close()

	c, err := New(srv.URL, WithLogger(log.NewTestingLogger(t)))
	require.NoError(t, err)

	hashes := make(chan string, 1)
	sub, err := c.SubscribeForHeadBlockHash(context.Background(), func(hash string) {
		hashes <- hash
	})
	require.NoError(t, err)
	defer sub.Close()

	node.write([]byte(`{"jsonrpc":"2.0","method":"subscribeForHeadBlockHash","params":{"subscription":1,"result":{"data":"ab12","metadata":null}}}`))

	select {
	case hash := <-hashes:
		assert.Equal(t, "ab12", hash)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for head block hash")
	}
}
