package types

// MempoolInfo summarizes the node's mempool, bucketed by fee per byte.
type MempoolInfo struct {
	Total   uint32   `json:"total"`
	Buckets []uint64 `json:"buckets"`

	// per-bucket transaction counts, keyed by the bucket's fee floor
	TransactionsPerBucket map[string]uint32 `json:"transactionsPerBucket,omitempty"`
}

// PolicyConstants are the chain's protocol parameters. They never change at
// runtime, so callers typically fetch them once.
type PolicyConstants struct {
	StakingContractAddress string `json:"stakingContractAddress"`
	CoinbaseAddress        string `json:"coinbaseAddress"`
	TransactionValidityWindow uint32 `json:"transactionValidityWindow"`
	MaxSizeMicroBody       uint64 `json:"maxSizeMicroBody"`
	Version                uint16 `json:"version"`
	SlotsCount             uint16 `json:"slots"`
	BlocksPerBatch         uint32 `json:"blocksPerBatch"`
	BatchesPerEpoch        uint16 `json:"batchesPerEpoch"`
	BlocksPerEpoch         uint32 `json:"blocksPerEpoch"`
	ValidatorDeposit       Coin   `json:"validatorDeposit"`
	MinimumStake           Coin   `json:"minimumStake"`
	TotalSupply            Coin   `json:"totalSupply"`
	JailEpochs             uint32 `json:"jailEpochs"`
	GenesisBlockNumber     int64  `json:"genesisBlockNumber"`
	BlockSeparationTime    uint64 `json:"blockSeparationTime"`
}

// ZKPState describes the progress of the node's zero-knowledge proof
// component.
type ZKPState struct {
	LatestBlock        *Block `json:"latestBlock,omitempty"`
	LatestProof        string `json:"latestProof,omitempty"`
	LatestProofHash    string `json:"latestProofHash,omitempty"`
}

// LogType classifies transaction log entries.
type LogType string

const (
	LogTypePayFee              LogType = "pay-fee"
	LogTypeTransfer            LogType = "transfer"
	LogTypeHTLCCreate          LogType = "htlc-create"
	LogTypeVestingCreate       LogType = "vesting-create"
	LogTypeCreateValidator     LogType = "create-validator"
	LogTypeUpdateValidator     LogType = "update-validator"
	LogTypeDeactivateValidator LogType = "deactivate-validator"
	LogTypeReactivateValidator LogType = "reactivate-validator"
	LogTypeRetireValidator     LogType = "retire-validator"
	LogTypeDeleteValidator     LogType = "delete-validator"
	LogTypeCreateStaker        LogType = "create-staker"
	LogTypeStake               LogType = "stake"
	LogTypeUpdateStaker        LogType = "update-staker"
	LogTypeRemoveStake         LogType = "remove-stake"
	LogTypePayoutReward        LogType = "payout-reward"
	LogTypePenalize            LogType = "penalize"
	LogTypeJail                LogType = "jail"
)

// Log is one entry of a transaction's execution log.
type Log struct {
	Type LogType `json:"type"`

	From   string `json:"from,omitempty"`
	To     string `json:"to,omitempty"`
	Amount Coin   `json:"amount,omitempty"`

	ValidatorAddress string `json:"validatorAddress,omitempty"`
	StakerAddress    string `json:"stakerAddress,omitempty"`
}

// TransactionLog groups the log entries emitted by one transaction.
type TransactionLog struct {
	Hash string `json:"hash"`
	Logs []Log  `json:"logs"`
	Failed bool `json:"failed"`
}

// BlockLog is the payload pushed by a log subscription: all transaction
// logs of one block, together with the inherent logs.
type BlockLog struct {
	Type         string           `json:"type"`
	BlockHash    string           `json:"hash"`
	BlockNumber  int64            `json:"blockNumber"`
	Timestamp    int64            `json:"timestamp,omitempty"`
	TxLogs       []TransactionLog `json:"transactions"`
	InherentLogs []Log            `json:"inherents"`
}
