package client

import (
	"context"
	"fmt"
)

// GetAddress returns the address of the validator running on the node.
func (c *Client) GetAddress(ctx context.Context) (string, error) {
	var result string
	if err := c.caller.Call(ctx, "getAddress", nil, &result); err != nil {
		return "", fmt.Errorf("getAddress: %w", err)
	}
	return result, nil
}

// GetSigningKey returns the local validator's Schnorr signing key.
func (c *Client) GetSigningKey(ctx context.Context) (string, error) {
	var result string
	if err := c.caller.Call(ctx, "getSigningKey", nil, &result); err != nil {
		return "", fmt.Errorf("getSigningKey: %w", err)
	}
	return result, nil
}

// GetVotingKey returns the local validator's BLS voting key.
func (c *Client) GetVotingKey(ctx context.Context) (string, error) {
	var result string
	if err := c.caller.Call(ctx, "getVotingKey", nil, &result); err != nil {
		return "", fmt.Errorf("getVotingKey: %w", err)
	}
	return result, nil
}

// SetAutomaticReactivation toggles whether the node automatically sends a
// reactivate transaction when its validator gets deactivated.
func (c *Client) SetAutomaticReactivation(ctx context.Context, automaticReactivation bool) error {
	if err := c.caller.Call(ctx, "setAutomaticReactivation", []interface{}{automaticReactivation}, nil); err != nil {
		return fmt.Errorf("setAutomaticReactivation: %w", err)
	}
	return nil
}
