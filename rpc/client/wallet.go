package client

import (
	"context"
	"fmt"

	"github.com/blouflashdb/nimiq-rpc/types"
)

// ImportRawKey imports a raw hex private key into the node's wallet and
// returns the derived address. passphrase may be nil for an unencrypted key.
func (c *Client) ImportRawKey(ctx context.Context, keyData string, passphrase *string) (string, error) {
	var result string
	if err := c.caller.Call(ctx, "importRawKey", []interface{}{keyData, passphrase}, &result); err != nil {
		return "", fmt.Errorf("importRawKey: %w", err)
	}
	return result, nil
}

// IsAccountImported reports whether the wallet holds a key for the address.
func (c *Client) IsAccountImported(ctx context.Context, address string) (bool, error) {
	var result bool
	if err := c.caller.Call(ctx, "isAccountImported", []interface{}{address}, &result); err != nil {
		return false, fmt.Errorf("isAccountImported: %w", err)
	}
	return result, nil
}

// ListAccounts returns the addresses of all wallet accounts.
func (c *Client) ListAccounts(ctx context.Context) ([]string, error) {
	var result []string
	if err := c.caller.Call(ctx, "listAccounts", nil, &result); err != nil {
		return nil, fmt.Errorf("listAccounts: %w", err)
	}
	return result, nil
}

// LockAccount locks the given wallet account.
func (c *Client) LockAccount(ctx context.Context, address string) error {
	if err := c.caller.Call(ctx, "lockAccount", []interface{}{address}, nil); err != nil {
		return fmt.Errorf("lockAccount: %w", err)
	}
	return nil
}

// CreateAccount creates a fresh wallet account, optionally protected by a
// passphrase.
func (c *Client) CreateAccount(ctx context.Context, passphrase *string) (*types.WalletAccount, error) {
	result := new(types.WalletAccount)
	if err := c.caller.Call(ctx, "createAccount", []interface{}{passphrase}, result); err != nil {
		return nil, fmt.Errorf("createAccount: %w", err)
	}
	return result, nil
}

// UnlockAccount unlocks a wallet account for signing. A nil duration leaves
// it unlocked until locked again; otherwise the node relocks after duration
// milliseconds.
func (c *Client) UnlockAccount(ctx context.Context, address string, passphrase *string, duration *uint64) error {
	if err := c.caller.Call(ctx, "unlockAccount", []interface{}{address, passphrase, duration}, nil); err != nil {
		return fmt.Errorf("unlockAccount: %w", err)
	}
	return nil
}

// IsAccountUnlocked reports whether the given wallet account is unlocked.
func (c *Client) IsAccountUnlocked(ctx context.Context, address string) (bool, error) {
	var result bool
	if err := c.caller.Call(ctx, "isAccountUnlocked", []interface{}{address}, &result); err != nil {
		return false, fmt.Errorf("isAccountUnlocked: %w", err)
	}
	return result, nil
}

// Sign signs a message with the given account's key. isHex declares whether
// message is hex-encoded bytes or plain text.
func (c *Client) Sign(ctx context.Context, message, address string, passphrase *string, isHex bool) (*types.Signature, error) {
	result := new(types.Signature)
	if err := c.caller.Call(ctx, "sign", []interface{}{message, address, passphrase, isHex}, result); err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}
	return result, nil
}

// VerifySignature checks a signature made by Sign against the given public
// key.
func (c *Client) VerifySignature(ctx context.Context, message, publicKey, signature string, isHex bool) (bool, error) {
	var result bool
	if err := c.caller.Call(ctx, "verifySignature", []interface{}{message, publicKey, signature, isHex}, &result); err != nil {
		return false, fmt.Errorf("verifySignature: %w", err)
	}
	return result, nil
}

// RemoveAccount removes the given account's key from the wallet.
func (c *Client) RemoveAccount(ctx context.Context, address string) (bool, error) {
	var result bool
	if err := c.caller.Call(ctx, "removeAccount", []interface{}{address}, &result); err != nil {
		return false, fmt.Errorf("removeAccount: %w", err)
	}
	return result, nil
}
