package client

import (
	"context"
	"fmt"

	"github.com/blouflashdb/nimiq-rpc/types"
)

// GetPolicyConstants returns the chain's policy constants. They never change
// for a given network, so callers may cache the result.
func (c *Client) GetPolicyConstants(ctx context.Context) (*types.PolicyConstants, error) {
	result := new(types.PolicyConstants)
	if err := c.caller.Call(ctx, "getPolicyConstants", nil, result); err != nil {
		return nil, fmt.Errorf("getPolicyConstants: %w", err)
	}
	return result, nil
}

// callBlockNumber runs a policy call taking a block number and returning
// another block-number-like integer.
func (c *Client) callBlockNumber(ctx context.Context, method string, params []interface{}) (int64, error) {
	var result int64
	if err := c.caller.Call(ctx, method, params, &result); err != nil {
		return 0, fmt.Errorf("%s: %w", method, err)
	}
	return result, nil
}

func (c *Client) callBool(ctx context.Context, method string, params []interface{}) (bool, error) {
	var result bool
	if err := c.caller.Call(ctx, method, params, &result); err != nil {
		return false, fmt.Errorf("%s: %w", method, err)
	}
	return result, nil
}

// GetEpochAt returns the epoch number the given block height falls in.
func (c *Client) GetEpochAt(ctx context.Context, blockNumber int64) (int64, error) {
	return c.callBlockNumber(ctx, "getEpochAt", []interface{}{blockNumber})
}

// GetEpochIndexAt returns the given block's index within its epoch.
func (c *Client) GetEpochIndexAt(ctx context.Context, blockNumber int64) (int64, error) {
	return c.callBlockNumber(ctx, "getEpochIndexAt", []interface{}{blockNumber})
}

// GetBatchAt returns the batch number the given block height falls in.
func (c *Client) GetBatchAt(ctx context.Context, blockNumber int64) (int64, error) {
	return c.callBlockNumber(ctx, "getBatchAt", []interface{}{blockNumber})
}

// GetBatchIndexAt returns the given block's index within its batch.
func (c *Client) GetBatchIndexAt(ctx context.Context, blockNumber int64) (int64, error) {
	return c.callBlockNumber(ctx, "getBatchIndexAt", []interface{}{blockNumber})
}

// GetElectionBlockAfter returns the height of the first election block
// strictly after the given height.
func (c *Client) GetElectionBlockAfter(ctx context.Context, blockNumber int64) (int64, error) {
	return c.callBlockNumber(ctx, "getElectionBlockAfter", []interface{}{blockNumber})
}

// GetElectionBlockBefore returns the height of the last election block
// strictly before the given height.
func (c *Client) GetElectionBlockBefore(ctx context.Context, blockNumber int64) (int64, error) {
	return c.callBlockNumber(ctx, "getElectionBlockBefore", []interface{}{blockNumber})
}

// GetLastElectionBlock returns the height of the last election block at or
// before the given height.
func (c *Client) GetLastElectionBlock(ctx context.Context, blockNumber int64) (int64, error) {
	return c.callBlockNumber(ctx, "getLastElectionBlock", []interface{}{blockNumber})
}

// IsElectionBlockAt reports whether the block at the given height is an
// election block.
func (c *Client) IsElectionBlockAt(ctx context.Context, blockNumber int64) (bool, error) {
	return c.callBool(ctx, "isElectionBlockAt", []interface{}{blockNumber})
}

// GetMacroBlockAfter returns the height of the first macro block strictly
// after the given height.
func (c *Client) GetMacroBlockAfter(ctx context.Context, blockNumber int64) (int64, error) {
	return c.callBlockNumber(ctx, "getMacroBlockAfter", []interface{}{blockNumber})
}

// GetMacroBlockBefore returns the height of the last macro block strictly
// before the given height.
func (c *Client) GetMacroBlockBefore(ctx context.Context, blockNumber int64) (int64, error) {
	return c.callBlockNumber(ctx, "getMacroBlockBefore", []interface{}{blockNumber})
}

// GetLastMacroBlock returns the height of the last macro block at or before
// the given height.
func (c *Client) GetLastMacroBlock(ctx context.Context, blockNumber int64) (int64, error) {
	return c.callBlockNumber(ctx, "getLastMacroBlock", []interface{}{blockNumber})
}

// IsMacroBlockAt reports whether the block at the given height is a macro
// block.
func (c *Client) IsMacroBlockAt(ctx context.Context, blockNumber int64) (bool, error) {
	return c.callBool(ctx, "isMacroBlockAt", []interface{}{blockNumber})
}

// IsMicroBlockAt reports whether the block at the given height is a micro
// block.
func (c *Client) IsMicroBlockAt(ctx context.Context, blockNumber int64) (bool, error) {
	return c.callBool(ctx, "isMicroBlockAt", []interface{}{blockNumber})
}

// GetFirstBlockOf returns the height of the first block of the given epoch.
func (c *Client) GetFirstBlockOf(ctx context.Context, epoch int64) (int64, error) {
	return c.callBlockNumber(ctx, "getFirstBlockOf", []interface{}{epoch})
}

// GetFirstBatchOfEpoch returns the number of the first batch of the epoch
// the given block height falls in.
func (c *Client) GetFirstBatchOfEpoch(ctx context.Context, blockNumber int64) (int64, error) {
	return c.callBlockNumber(ctx, "getFirstBatchOfEpoch", []interface{}{blockNumber})
}

// GetBlockAfterReportingWindow returns the first block at which an
// equivocation at the given height can no longer be reported.
func (c *Client) GetBlockAfterReportingWindow(ctx context.Context, blockNumber int64) (int64, error) {
	return c.callBlockNumber(ctx, "getBlockAfterReportingWindow", []interface{}{blockNumber})
}

// GetBlockAfterJail returns the first block at which a validator jailed at
// the given height is released.
func (c *Client) GetBlockAfterJail(ctx context.Context, blockNumber int64) (int64, error) {
	return c.callBlockNumber(ctx, "getBlockAfterJail", []interface{}{blockNumber})
}

// GetSupplyAt returns the total coin supply at the given time, derived from
// the genesis supply and the given genesis timestamp (both in milliseconds).
func (c *Client) GetSupplyAt(ctx context.Context, genesisSupply types.Coin, genesisTime, currentTime uint64) (types.Coin, error) {
	var result types.Coin
	if err := c.caller.Call(ctx, "getSupplyAt", []interface{}{genesisSupply, genesisTime, currentTime}, &result); err != nil {
		return 0, fmt.Errorf("getSupplyAt: %w", err)
	}
	return result, nil
}
