package client

import (
	"context"
	"encoding/json"
	"fmt"

	rpcclient "github.com/blouflashdb/nimiq-rpc/rpc/jsonrpc/client"
	rpctypes "github.com/blouflashdb/nimiq-rpc/rpc/jsonrpc/types"
	"github.com/blouflashdb/nimiq-rpc/types"
)

// Subscribe opens a raw subscription against the node's WebSocket endpoint.
// The typed Subscribe* wrappers below cover the common streams; this is the
// escape hatch for everything else.
func (c *Client) Subscribe(ctx context.Context, req rpcclient.Request, cb rpcclient.Callbacks, opts ...rpcclient.SubscriptionOption) (*rpcclient.Subscription, error) {
	opts = append([]rpcclient.SubscriptionOption{rpcclient.WithLogger(c.logger)}, opts...)
	sub, err := rpcclient.Subscribe(ctx, c.remote, req, cb, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.Method, err)
	}
	return sub, nil
}

// SubscribeForHeadBlockHash streams the hash of every new chain head.
func (c *Client) SubscribeForHeadBlockHash(ctx context.Context, handler func(hash string), opts ...rpcclient.SubscriptionOption) (*rpcclient.Subscription, error) {
	return c.Subscribe(ctx,
		rpcclient.Request{Method: "subscribeForHeadBlockHash"},
		rpcclient.Callbacks{OnMessage: func(msg rpctypes.RPCData) {
			var hash string
			if err := json.Unmarshal(msg.Data, &hash); err != nil {
				c.logger.Error("failed to decode head block hash", "err", err)
				return
			}
			handler(hash)
		}},
		opts...)
}

// SubscribeForHeadBlock streams every new chain head block. A non-nil filter
// drops blocks before they reach the handler; types.MicroBlocks,
// types.MacroBlocks and types.ElectionBlocks cover the common cases.
func (c *Client) SubscribeForHeadBlock(ctx context.Context, includeBody bool, handler func(*types.Block), filter types.BlockPredicate, opts ...rpcclient.SubscriptionOption) (*rpcclient.Subscription, error) {
	if filter != nil {
		opts = append(opts, rpcclient.WithFilter(func(data json.RawMessage) bool {
			var block types.Block
			if err := json.Unmarshal(data, &block); err != nil {
				return false
			}
			return filter(&block)
		}))
	}
	return c.Subscribe(ctx,
		rpcclient.Request{Method: "subscribeForHeadBlock", Params: []interface{}{includeBody}},
		rpcclient.Callbacks{OnMessage: func(msg rpctypes.RPCData) {
			block := new(types.Block)
			if err := json.Unmarshal(msg.Data, block); err != nil {
				c.logger.Error("failed to decode head block", "err", err)
				return
			}
			handler(block)
		}},
		opts...)
}

// SubscribeForValidatorElectionByAddress streams the given validator's state
// after every election.
func (c *Client) SubscribeForValidatorElectionByAddress(ctx context.Context, address string, handler func(*types.Validator), opts ...rpcclient.SubscriptionOption) (*rpcclient.Subscription, error) {
	return c.Subscribe(ctx,
		rpcclient.Request{Method: "subscribeForValidatorElectionByAddress", Params: []interface{}{address}},
		rpcclient.Callbacks{OnMessage: func(msg rpctypes.RPCData) {
			validator := new(types.Validator)
			if err := json.Unmarshal(msg.Data, validator); err != nil {
				c.logger.Error("failed to decode validator election", "err", err)
				return
			}
			handler(validator)
		}},
		opts...)
}

// SubscribeForLogsByAddressesAndTypes streams per-block transaction logs
// touching any of the given addresses. Empty slices match everything.
func (c *Client) SubscribeForLogsByAddressesAndTypes(ctx context.Context, addresses []string, logTypes []types.LogType, handler func(*types.BlockLog), opts ...rpcclient.SubscriptionOption) (*rpcclient.Subscription, error) {
	if addresses == nil {
		addresses = []string{}
	}
	if logTypes == nil {
		logTypes = []types.LogType{}
	}
	return c.Subscribe(ctx,
		rpcclient.Request{Method: "subscribeForLogsByAddressesAndTypes", Params: []interface{}{addresses, logTypes}},
		rpcclient.Callbacks{OnMessage: func(msg rpctypes.RPCData) {
			blockLog := new(types.BlockLog)
			if err := json.Unmarshal(msg.Data, blockLog); err != nil {
				c.logger.Error("failed to decode block log", "err", err)
				return
			}
			handler(blockLog)
		}},
		opts...)
}
