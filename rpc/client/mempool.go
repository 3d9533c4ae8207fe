package client

import (
	"context"
	"fmt"

	"github.com/blouflashdb/nimiq-rpc/types"
)

// PushTransaction submits a raw transaction to the mempool and returns its
// hash.
func (c *Client) PushTransaction(ctx context.Context, rawTx string) (string, error) {
	var result string
	if err := c.caller.Call(ctx, "pushTransaction", []interface{}{rawTx}, &result); err != nil {
		return "", fmt.Errorf("pushTransaction: %w", err)
	}
	return result, nil
}

// PushHighPriorityTransaction submits a raw transaction to the high priority
// lane of the mempool and returns its hash.
func (c *Client) PushHighPriorityTransaction(ctx context.Context, rawTx string) (string, error) {
	var result string
	if err := c.caller.Call(ctx, "pushHighPriorityTransaction", []interface{}{rawTx}, &result); err != nil {
		return "", fmt.Errorf("pushHighPriorityTransaction: %w", err)
	}
	return result, nil
}

// MempoolContent returns the hashes of all transactions currently in the
// mempool. With includeTransactions the node returns full transactions
// instead; callers wanting those should decode the raw messages themselves.
func (c *Client) MempoolContent(ctx context.Context, includeTransactions bool) ([]string, error) {
	var result []string
	if err := c.caller.Call(ctx, "mempoolContent", []interface{}{includeTransactions}, &result); err != nil {
		return nil, fmt.Errorf("mempoolContent: %w", err)
	}
	return result, nil
}

// Mempool returns aggregate mempool statistics.
func (c *Client) Mempool(ctx context.Context) (*types.MempoolInfo, error) {
	result := new(types.MempoolInfo)
	if err := c.caller.Call(ctx, "mempool", nil, result); err != nil {
		return nil, fmt.Errorf("mempool: %w", err)
	}
	return result, nil
}

// GetMinFeePerByte returns the node's minimum accepted fee per byte.
func (c *Client) GetMinFeePerByte(ctx context.Context) (uint64, error) {
	var result uint64
	if err := c.caller.Call(ctx, "getMinFeePerByte", nil, &result); err != nil {
		return 0, fmt.Errorf("getMinFeePerByte: %w", err)
	}
	return result, nil
}

// GetTransactionFromMempool looks a pending transaction up by hash.
func (c *Client) GetTransactionFromMempool(ctx context.Context, hash string) (*types.Transaction, error) {
	result := new(types.Transaction)
	if err := c.caller.Call(ctx, "getTransactionFromMempool", []interface{}{hash}, result); err != nil {
		return nil, fmt.Errorf("getTransactionFromMempool: %w", err)
	}
	return result, nil
}
