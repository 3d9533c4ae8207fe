package client

import (
	"context"
	"fmt"

	"github.com/blouflashdb/nimiq-rpc/types"
)

// GetZKPState returns the state of the node's zero-knowledge proof
// component.
func (c *Client) GetZKPState(ctx context.Context) (*types.ZKPState, error) {
	result := new(types.ZKPState)
	if err := c.caller.Call(ctx, "getZkpState", nil, result); err != nil {
		return nil, fmt.Errorf("getZkpState: %w", err)
	}
	return result, nil
}
