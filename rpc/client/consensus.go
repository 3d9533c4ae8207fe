package client

import (
	"context"
	"fmt"

	"github.com/blouflashdb/nimiq-rpc/types"
)

// IsConsensusEstablished reports whether the node has established consensus
// with the network.
func (c *Client) IsConsensusEstablished(ctx context.Context) (bool, error) {
	var result bool
	if err := c.caller.Call(ctx, "isConsensusEstablished", nil, &result); err != nil {
		return false, fmt.Errorf("isConsensusEstablished: %w", err)
	}
	return result, nil
}

// GetRawTransactionInfo decodes a raw transaction without submitting it.
func (c *Client) GetRawTransactionInfo(ctx context.Context, rawTx string) (*types.Transaction, error) {
	result := new(types.Transaction)
	if err := c.caller.Call(ctx, "getRawTransactionInfo", []interface{}{rawTx}, result); err != nil {
		return nil, fmt.Errorf("getRawTransactionInfo: %w", err)
	}
	return result, nil
}

// SendRawTransaction submits a raw transaction and returns its hash.
func (c *Client) SendRawTransaction(ctx context.Context, rawTx string) (string, error) {
	return c.callHex(ctx, "sendRawTransaction", []interface{}{rawTx})
}

// callHex runs a consensus call whose result is a hex string: either a
// serialized transaction (create*) or a transaction hash (send*).
func (c *Client) callHex(ctx context.Context, method string, params []interface{}) (string, error) {
	var result string
	if err := c.caller.Call(ctx, method, params, &result); err != nil {
		return "", fmt.Errorf("%s: %w", method, err)
	}
	return result, nil
}

// CreateBasicTransaction builds a plain value transfer and returns the
// serialized transaction. The wallet account must be unlocked on the node.
func (c *Client) CreateBasicTransaction(ctx context.Context, wallet, recipient string, value, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "createBasicTransaction", []interface{}{wallet, recipient, value, fee, validityStartHeight})
}

// SendBasicTransaction builds, signs and submits a plain value transfer.
func (c *Client) SendBasicTransaction(ctx context.Context, wallet, recipient string, value, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "sendBasicTransaction", []interface{}{wallet, recipient, value, fee, validityStartHeight})
}

// CreateBasicTransactionWithData builds a value transfer carrying an
// arbitrary hex-encoded data payload.
func (c *Client) CreateBasicTransactionWithData(ctx context.Context, wallet, recipient, data string, value, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "createBasicTransactionWithData", []interface{}{wallet, recipient, data, value, fee, validityStartHeight})
}

// SendBasicTransactionWithData builds, signs and submits a value transfer
// carrying a data payload.
func (c *Client) SendBasicTransactionWithData(ctx context.Context, wallet, recipient, data string, value, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "sendBasicTransactionWithData", []interface{}{wallet, recipient, data, value, fee, validityStartHeight})
}

// CreateNewVestingTransaction builds a vesting contract creation.
func (c *Client) CreateNewVestingTransaction(ctx context.Context, wallet, owner string, startTime, timeStep uint64, numSteps uint32, value, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "createNewVestingTransaction", []interface{}{wallet, owner, startTime, timeStep, numSteps, value, fee, validityStartHeight})
}

// SendNewVestingTransaction builds, signs and submits a vesting contract
// creation.
func (c *Client) SendNewVestingTransaction(ctx context.Context, wallet, owner string, startTime, timeStep uint64, numSteps uint32, value, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "sendNewVestingTransaction", []interface{}{wallet, owner, startTime, timeStep, numSteps, value, fee, validityStartHeight})
}

// CreateRedeemVestingTransaction builds a transaction redeeming funds from a
// vesting contract.
func (c *Client) CreateRedeemVestingTransaction(ctx context.Context, wallet, contractAddress, recipient string, value, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "createRedeemVestingTransaction", []interface{}{wallet, contractAddress, recipient, value, fee, validityStartHeight})
}

// SendRedeemVestingTransaction builds, signs and submits a vesting redeem.
func (c *Client) SendRedeemVestingTransaction(ctx context.Context, wallet, contractAddress, recipient string, value, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "sendRedeemVestingTransaction", []interface{}{wallet, contractAddress, recipient, value, fee, validityStartHeight})
}

// CreateNewHTLCTransaction builds an HTLC creation.
func (c *Client) CreateNewHTLCTransaction(ctx context.Context, wallet, htlcSender, htlcRecipient, hashRoot string, hashCount uint8, timeout uint64, value, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "createNewHtlcTransaction", []interface{}{wallet, htlcSender, htlcRecipient, hashRoot, hashCount, timeout, value, fee, validityStartHeight})
}

// SendNewHTLCTransaction builds, signs and submits an HTLC creation.
func (c *Client) SendNewHTLCTransaction(ctx context.Context, wallet, htlcSender, htlcRecipient, hashRoot string, hashCount uint8, timeout uint64, value, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "sendNewHtlcTransaction", []interface{}{wallet, htlcSender, htlcRecipient, hashRoot, hashCount, timeout, value, fee, validityStartHeight})
}

// CreateRedeemRegularHTLCTransaction builds a regular (pre-image) HTLC
// redeem.
func (c *Client) CreateRedeemRegularHTLCTransaction(ctx context.Context, wallet, contractAddress, recipient, preImage, hashRoot string, hashCount uint8, value, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "createRedeemRegularHtlcTransaction", []interface{}{wallet, contractAddress, recipient, preImage, hashRoot, hashCount, value, fee, validityStartHeight})
}

// SendRedeemRegularHTLCTransaction builds, signs and submits a regular HTLC
// redeem.
func (c *Client) SendRedeemRegularHTLCTransaction(ctx context.Context, wallet, contractAddress, recipient, preImage, hashRoot string, hashCount uint8, value, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "sendRedeemRegularHtlcTransaction", []interface{}{wallet, contractAddress, recipient, preImage, hashRoot, hashCount, value, fee, validityStartHeight})
}

// CreateNewStakerTransaction builds a staker registration. delegation may be
// nil for an undelegated staker.
func (c *Client) CreateNewStakerTransaction(ctx context.Context, senderWallet, stakerWallet string, delegation *string, value, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "createNewStakerTransaction", []interface{}{senderWallet, stakerWallet, delegation, value, fee, validityStartHeight})
}

// SendNewStakerTransaction builds, signs and submits a staker registration.
func (c *Client) SendNewStakerTransaction(ctx context.Context, senderWallet, stakerWallet string, delegation *string, value, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "sendNewStakerTransaction", []interface{}{senderWallet, stakerWallet, delegation, value, fee, validityStartHeight})
}

// CreateStakeTransaction builds a transaction adding stake to an existing
// staker.
func (c *Client) CreateStakeTransaction(ctx context.Context, senderWallet, stakerWallet string, value, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "createStakeTransaction", []interface{}{senderWallet, stakerWallet, value, fee, validityStartHeight})
}

// SendStakeTransaction builds, signs and submits a stake increase.
func (c *Client) SendStakeTransaction(ctx context.Context, senderWallet, stakerWallet string, value, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "sendStakeTransaction", []interface{}{senderWallet, stakerWallet, value, fee, validityStartHeight})
}

// CreateUpdateStakerTransaction builds a staker delegation update.
func (c *Client) CreateUpdateStakerTransaction(ctx context.Context, senderWallet, stakerWallet string, newDelegation *string, reactivateAllStake bool, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "createUpdateStakerTransaction", []interface{}{senderWallet, stakerWallet, newDelegation, reactivateAllStake, fee, validityStartHeight})
}

// SendUpdateStakerTransaction builds, signs and submits a staker delegation
// update.
func (c *Client) SendUpdateStakerTransaction(ctx context.Context, senderWallet, stakerWallet string, newDelegation *string, reactivateAllStake bool, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "sendUpdateStakerTransaction", []interface{}{senderWallet, stakerWallet, newDelegation, reactivateAllStake, fee, validityStartHeight})
}

// CreateSetActiveStakeTransaction builds a transaction changing a staker's
// active stake balance.
func (c *Client) CreateSetActiveStakeTransaction(ctx context.Context, senderWallet, stakerWallet string, newActiveBalance, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "createSetActiveStakeTransaction", []interface{}{senderWallet, stakerWallet, newActiveBalance, fee, validityStartHeight})
}

// SendSetActiveStakeTransaction builds, signs and submits an active stake
// change.
func (c *Client) SendSetActiveStakeTransaction(ctx context.Context, senderWallet, stakerWallet string, newActiveBalance, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "sendSetActiveStakeTransaction", []interface{}{senderWallet, stakerWallet, newActiveBalance, fee, validityStartHeight})
}

// CreateRetireStakeTransaction builds a transaction retiring part of a
// staker's stake.
func (c *Client) CreateRetireStakeTransaction(ctx context.Context, senderWallet, stakerWallet string, retireStake, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "createRetireStakeTransaction", []interface{}{senderWallet, stakerWallet, retireStake, fee, validityStartHeight})
}

// SendRetireStakeTransaction builds, signs and submits a stake retirement.
func (c *Client) SendRetireStakeTransaction(ctx context.Context, senderWallet, stakerWallet string, retireStake, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "sendRetireStakeTransaction", []interface{}{senderWallet, stakerWallet, retireStake, fee, validityStartHeight})
}

// CreateRemoveStakeTransaction builds a transaction withdrawing retired
// stake to a regular account.
func (c *Client) CreateRemoveStakeTransaction(ctx context.Context, stakerWallet, recipient string, value, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "createRemoveStakeTransaction", []interface{}{stakerWallet, recipient, value, fee, validityStartHeight})
}

// SendRemoveStakeTransaction builds, signs and submits a stake withdrawal.
func (c *Client) SendRemoveStakeTransaction(ctx context.Context, stakerWallet, recipient string, value, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "sendRemoveStakeTransaction", []interface{}{stakerWallet, recipient, value, fee, validityStartHeight})
}

// CreateNewValidatorTransaction builds a validator registration. signalData
// may be nil.
func (c *Client) CreateNewValidatorTransaction(ctx context.Context, senderWallet, validator, signingSecretKey, votingSecretKey, rewardAddress string, signalData *string, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "createNewValidatorTransaction", []interface{}{senderWallet, validator, signingSecretKey, votingSecretKey, rewardAddress, signalData, fee, validityStartHeight})
}

// SendNewValidatorTransaction builds, signs and submits a validator
// registration.
func (c *Client) SendNewValidatorTransaction(ctx context.Context, senderWallet, validator, signingSecretKey, votingSecretKey, rewardAddress string, signalData *string, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "sendNewValidatorTransaction", []interface{}{senderWallet, validator, signingSecretKey, votingSecretKey, rewardAddress, signalData, fee, validityStartHeight})
}

// CreateUpdateValidatorTransaction builds a validator update. Every new*
// argument may be nil to leave the corresponding field untouched.
func (c *Client) CreateUpdateValidatorTransaction(ctx context.Context, senderWallet, validator string, newSigningSecretKey, newVotingSecretKey, newRewardAddress, newSignalData *string, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "createUpdateValidatorTransaction", []interface{}{senderWallet, validator, newSigningSecretKey, newVotingSecretKey, newRewardAddress, newSignalData, fee, validityStartHeight})
}

// SendUpdateValidatorTransaction builds, signs and submits a validator
// update.
func (c *Client) SendUpdateValidatorTransaction(ctx context.Context, senderWallet, validator string, newSigningSecretKey, newVotingSecretKey, newRewardAddress, newSignalData *string, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "sendUpdateValidatorTransaction", []interface{}{senderWallet, validator, newSigningSecretKey, newVotingSecretKey, newRewardAddress, newSignalData, fee, validityStartHeight})
}

// CreateDeactivateValidatorTransaction builds a validator deactivation.
func (c *Client) CreateDeactivateValidatorTransaction(ctx context.Context, senderWallet, validator, signingSecretKey string, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "createDeactivateValidatorTransaction", []interface{}{senderWallet, validator, signingSecretKey, fee, validityStartHeight})
}

// SendDeactivateValidatorTransaction builds, signs and submits a validator
// deactivation.
func (c *Client) SendDeactivateValidatorTransaction(ctx context.Context, senderWallet, validator, signingSecretKey string, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "sendDeactivateValidatorTransaction", []interface{}{senderWallet, validator, signingSecretKey, fee, validityStartHeight})
}

// CreateReactivateValidatorTransaction builds a validator reactivation.
func (c *Client) CreateReactivateValidatorTransaction(ctx context.Context, senderWallet, validator, signingSecretKey string, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "createReactivateValidatorTransaction", []interface{}{senderWallet, validator, signingSecretKey, fee, validityStartHeight})
}

// SendReactivateValidatorTransaction builds, signs and submits a validator
// reactivation.
func (c *Client) SendReactivateValidatorTransaction(ctx context.Context, senderWallet, validator, signingSecretKey string, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "sendReactivateValidatorTransaction", []interface{}{senderWallet, validator, signingSecretKey, fee, validityStartHeight})
}

// CreateRetireValidatorTransaction builds a validator retirement.
func (c *Client) CreateRetireValidatorTransaction(ctx context.Context, senderWallet, validator string, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "createRetireValidatorTransaction", []interface{}{senderWallet, validator, fee, validityStartHeight})
}

// SendRetireValidatorTransaction builds, signs and submits a validator
// retirement.
func (c *Client) SendRetireValidatorTransaction(ctx context.Context, senderWallet, validator string, fee types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "sendRetireValidatorTransaction", []interface{}{senderWallet, validator, fee, validityStartHeight})
}

// CreateDeleteValidatorTransaction builds a transaction deleting a retired
// validator and paying its deposit out to recipient.
func (c *Client) CreateDeleteValidatorTransaction(ctx context.Context, validator, recipient string, fee, value types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "createDeleteValidatorTransaction", []interface{}{validator, recipient, fee, value, validityStartHeight})
}

// SendDeleteValidatorTransaction builds, signs and submits a validator
// deletion.
func (c *Client) SendDeleteValidatorTransaction(ctx context.Context, validator, recipient string, fee, value types.Coin, validityStartHeight string) (string, error) {
	return c.callHex(ctx, "sendDeleteValidatorTransaction", []interface{}{validator, recipient, fee, value, validityStartHeight})
}
