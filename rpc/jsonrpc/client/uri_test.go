package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebsocketEndpoint(t *testing.T) {
	testCases := []struct {
		remote string
		want   string
	}{
		{"http://localhost:8648", "ws://localhost:8648/ws"},
		{"https://seed1.example.com:8648", "wss://seed1.example.com:8648/ws"},
		{"http://localhost:8648/", "ws://localhost:8648/ws"},
		{"http://localhost:8648/custom", "ws://localhost:8648/custom"},
		{"ws://localhost:8648/ws", "ws://localhost:8648/ws"},
	}

	for _, tc := range testCases {
		got, err := WebsocketEndpoint(tc.remote)
		require.NoError(t, err, tc.remote)
		assert.Equal(t, tc.want, got, tc.remote)
	}
}

func TestParsedURLDefaultScheme(t *testing.T) {
	u, err := newParsedURL("wss://node.example.com:8648")
	require.NoError(t, err)
	u.SetDefaultSchemeHTTP()
	assert.Equal(t, "https", u.Scheme)

	u, err = newParsedURL("ws://node.example.com:8648")
	require.NoError(t, err)
	u.SetDefaultSchemeHTTP()
	assert.Equal(t, "http", u.Scheme)
}
