package client

import (
	"context"
	"fmt"

	"github.com/blouflashdb/nimiq-rpc/types"
)

// GetBlockNumber returns the height of the current chain head.
func (c *Client) GetBlockNumber(ctx context.Context) (int64, error) {
	var result int64
	if err := c.caller.Call(ctx, "getBlockNumber", nil, &result); err != nil {
		return 0, fmt.Errorf("getBlockNumber: %w", err)
	}
	return result, nil
}

// GetBatchNumber returns the batch number the current head belongs to.
func (c *Client) GetBatchNumber(ctx context.Context) (uint32, error) {
	var result uint32
	if err := c.caller.Call(ctx, "getBatchNumber", nil, &result); err != nil {
		return 0, fmt.Errorf("getBatchNumber: %w", err)
	}
	return result, nil
}

// GetEpochNumber returns the epoch number the current head belongs to.
func (c *Client) GetEpochNumber(ctx context.Context) (uint32, error) {
	var result uint32
	if err := c.caller.Call(ctx, "getEpochNumber", nil, &result); err != nil {
		return 0, fmt.Errorf("getEpochNumber: %w", err)
	}
	return result, nil
}

// GetBlockByHash returns the block with the given hash, optionally including
// the full transaction bodies.
func (c *Client) GetBlockByHash(ctx context.Context, hash string, includeBody bool) (*types.Block, error) {
	result := new(types.Block)
	if err := c.caller.Call(ctx, "getBlockByHash", []interface{}{hash, includeBody}, result); err != nil {
		return nil, fmt.Errorf("getBlockByHash: %w", err)
	}
	return result, nil
}

// GetBlockByNumber returns the block at the given height.
func (c *Client) GetBlockByNumber(ctx context.Context, number int64, includeBody bool) (*types.Block, error) {
	result := new(types.Block)
	if err := c.caller.Call(ctx, "getBlockByNumber", []interface{}{number, includeBody}, result); err != nil {
		return nil, fmt.Errorf("getBlockByNumber: %w", err)
	}
	return result, nil
}

// GetLatestBlock returns the current chain head.
func (c *Client) GetLatestBlock(ctx context.Context, includeBody bool) (*types.Block, error) {
	result := new(types.Block)
	if err := c.caller.Call(ctx, "getLatestBlock", []interface{}{includeBody}, result); err != nil {
		return nil, fmt.Errorf("getLatestBlock: %w", err)
	}
	return result, nil
}

// GetSlotAt returns the validator slot owning the given block height. The
// offset selects a view number past the first, zero for the canonical slot.
func (c *Client) GetSlotAt(ctx context.Context, blockNumber int64, offset *int64) (*types.Slot, error) {
	params := []interface{}{blockNumber}
	if offset != nil {
		params = append(params, *offset)
	}
	result := new(types.Slot)
	if err := c.caller.Call(ctx, "getSlotAt", params, result); err != nil {
		return nil, fmt.Errorf("getSlotAt: %w", err)
	}
	return result, nil
}

// GetTransactionByHash looks a transaction up by its hash.
func (c *Client) GetTransactionByHash(ctx context.Context, hash string) (*types.Transaction, error) {
	result := new(types.Transaction)
	if err := c.caller.Call(ctx, "getTransactionByHash", []interface{}{hash}, result); err != nil {
		return nil, fmt.Errorf("getTransactionByHash: %w", err)
	}
	return result, nil
}

// GetTransactionsByBlockNumber returns all transactions of the block at the
// given height.
func (c *Client) GetTransactionsByBlockNumber(ctx context.Context, blockNumber int64) ([]types.ExecutedTransaction, error) {
	var result []types.ExecutedTransaction
	if err := c.caller.Call(ctx, "getTransactionsByBlockNumber", []interface{}{blockNumber}, &result); err != nil {
		return nil, fmt.Errorf("getTransactionsByBlockNumber: %w", err)
	}
	return result, nil
}

// GetInherentsByBlockNumber returns all inherents of the block at the given
// height.
func (c *Client) GetInherentsByBlockNumber(ctx context.Context, blockNumber int64) ([]types.Inherent, error) {
	var result []types.Inherent
	if err := c.caller.Call(ctx, "getInherentsByBlockNumber", []interface{}{blockNumber}, &result); err != nil {
		return nil, fmt.Errorf("getInherentsByBlockNumber: %w", err)
	}
	return result, nil
}

// GetTransactionsByBatchNumber returns all transactions of the given batch.
func (c *Client) GetTransactionsByBatchNumber(ctx context.Context, batchNumber uint32) ([]types.ExecutedTransaction, error) {
	var result []types.ExecutedTransaction
	if err := c.caller.Call(ctx, "getTransactionsByBatchNumber", []interface{}{batchNumber}, &result); err != nil {
		return nil, fmt.Errorf("getTransactionsByBatchNumber: %w", err)
	}
	return result, nil
}

// GetInherentsByBatchNumber returns all inherents of the given batch.
func (c *Client) GetInherentsByBatchNumber(ctx context.Context, batchNumber uint32) ([]types.Inherent, error) {
	var result []types.Inherent
	if err := c.caller.Call(ctx, "getInherentsByBatchNumber", []interface{}{batchNumber}, &result); err != nil {
		return nil, fmt.Errorf("getInherentsByBatchNumber: %w", err)
	}
	return result, nil
}

// GetTransactionHashesByAddress returns the hashes of the most recent
// transactions involving the given address, newest first, capped at max.
func (c *Client) GetTransactionHashesByAddress(ctx context.Context, address string, max uint16) ([]string, error) {
	var result []string
	if err := c.caller.Call(ctx, "getTransactionHashesByAddress", []interface{}{address, max}, &result); err != nil {
		return nil, fmt.Errorf("getTransactionHashesByAddress: %w", err)
	}
	return result, nil
}

// GetTransactionsByAddress returns the most recent transactions involving
// the given address, newest first, capped at max.
func (c *Client) GetTransactionsByAddress(ctx context.Context, address string, max uint16) ([]types.ExecutedTransaction, error) {
	var result []types.ExecutedTransaction
	if err := c.caller.Call(ctx, "getTransactionsByAddress", []interface{}{address, max}, &result); err != nil {
		return nil, fmt.Errorf("getTransactionsByAddress: %w", err)
	}
	return result, nil
}

// GetAccountByAddress returns the account at the given address.
func (c *Client) GetAccountByAddress(ctx context.Context, address string) (*types.Account, error) {
	result := new(types.Account)
	if err := c.caller.Call(ctx, "getAccountByAddress", []interface{}{address}, result); err != nil {
		return nil, fmt.Errorf("getAccountByAddress: %w", err)
	}
	return result, nil
}

// GetAccounts returns all accounts in the node's accounts tree. This is an
// expensive call meant for history nodes.
func (c *Client) GetAccounts(ctx context.Context) ([]types.Account, error) {
	var result []types.Account
	if err := c.caller.Call(ctx, "getAccounts", nil, &result); err != nil {
		return nil, fmt.Errorf("getAccounts: %w", err)
	}
	return result, nil
}

// GetActiveValidators returns the set of validators elected for the current
// epoch.
func (c *Client) GetActiveValidators(ctx context.Context) ([]types.Validator, error) {
	var result []types.Validator
	if err := c.caller.Call(ctx, "getActiveValidators", nil, &result); err != nil {
		return nil, fmt.Errorf("getActiveValidators: %w", err)
	}
	return result, nil
}

// GetCurrentPenalizedSlots returns the slots penalized in the current batch.
func (c *Client) GetCurrentPenalizedSlots(ctx context.Context) (*types.PenalizedSlots, error) {
	result := new(types.PenalizedSlots)
	if err := c.caller.Call(ctx, "getCurrentPenalizedSlots", nil, result); err != nil {
		return nil, fmt.Errorf("getCurrentPenalizedSlots: %w", err)
	}
	return result, nil
}

// GetPreviousPenalizedSlots returns the slots penalized in the previous
// batch.
func (c *Client) GetPreviousPenalizedSlots(ctx context.Context) (*types.PenalizedSlots, error) {
	result := new(types.PenalizedSlots)
	if err := c.caller.Call(ctx, "getPreviousPenalizedSlots", nil, result); err != nil {
		return nil, fmt.Errorf("getPreviousPenalizedSlots: %w", err)
	}
	return result, nil
}

// GetValidatorByAddress returns the validator registered at the given
// address.
func (c *Client) GetValidatorByAddress(ctx context.Context, address string) (*types.Validator, error) {
	result := new(types.Validator)
	if err := c.caller.Call(ctx, "getValidatorByAddress", []interface{}{address}, result); err != nil {
		return nil, fmt.Errorf("getValidatorByAddress: %w", err)
	}
	return result, nil
}

// GetValidators returns all registered validators.
func (c *Client) GetValidators(ctx context.Context) ([]types.Validator, error) {
	var result []types.Validator
	if err := c.caller.Call(ctx, "getValidators", nil, &result); err != nil {
		return nil, fmt.Errorf("getValidators: %w", err)
	}
	return result, nil
}

// GetStakerByAddress returns the staker at the given address.
func (c *Client) GetStakerByAddress(ctx context.Context, address string) (*types.Staker, error) {
	result := new(types.Staker)
	if err := c.caller.Call(ctx, "getStakerByAddress", []interface{}{address}, result); err != nil {
		return nil, fmt.Errorf("getStakerByAddress: %w", err)
	}
	return result, nil
}

// GetStakersByValidatorAddress returns all stakers delegating to the given
// validator.
func (c *Client) GetStakersByValidatorAddress(ctx context.Context, address string) ([]types.Staker, error) {
	var result []types.Staker
	if err := c.caller.Call(ctx, "getStakersByValidatorAddress", []interface{}{address}, &result); err != nil {
		return nil, fmt.Errorf("getStakersByValidatorAddress: %w", err)
	}
	return result, nil
}
