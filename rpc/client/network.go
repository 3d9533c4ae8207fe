package client

import (
	"context"
	"fmt"
)

// GetPeerID returns the node's own libp2p peer id.
func (c *Client) GetPeerID(ctx context.Context) (string, error) {
	var result string
	if err := c.caller.Call(ctx, "getPeerId", nil, &result); err != nil {
		return "", fmt.Errorf("getPeerId: %w", err)
	}
	return result, nil
}

// GetPeerCount returns the number of connected peers.
func (c *Client) GetPeerCount(ctx context.Context) (int, error) {
	var result int
	if err := c.caller.Call(ctx, "getPeerCount", nil, &result); err != nil {
		return 0, fmt.Errorf("getPeerCount: %w", err)
	}
	return result, nil
}

// GetPeerList returns the peer ids of all connected peers.
func (c *Client) GetPeerList(ctx context.Context) ([]string, error) {
	var result []string
	if err := c.caller.Call(ctx, "getPeerList", nil, &result); err != nil {
		return nil, fmt.Errorf("getPeerList: %w", err)
	}
	return result, nil
}
