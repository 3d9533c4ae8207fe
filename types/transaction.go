package types

// Coin is an amount of NIM denominated in Luna, the smallest unit.
type Coin uint64

// Transaction is a transaction as returned by the RPC interface.
type Transaction struct {
	Hash      string `json:"hash"`
	BlockNumber int64 `json:"blockNumber,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`

	// ConfirmationsIn is the number of blocks on top of the one the
	// transaction was included in; zero for pending transactions.
	Confirmations int64 `json:"confirmations,omitempty"`

	From          string `json:"from"`
	FromType      uint8  `json:"fromType"`
	To            string `json:"to"`
	ToType        uint8  `json:"toType"`
	Value         Coin   `json:"value"`
	Fee           Coin   `json:"fee"`
	SenderData    string `json:"senderData,omitempty"`
	RecipientData string `json:"recipientData,omitempty"`
	Flags         uint8  `json:"flags"`
	ValidityStartHeight int64 `json:"validityStartHeight"`
	Proof         string `json:"proof,omitempty"`
	NetworkID     uint8  `json:"networkId"`
}

// ExecutedTransaction is a transaction together with its execution result.
type ExecutedTransaction struct {
	Transaction
	ExecutionResult bool `json:"executionResult"`
}

// Inherent is a protocol-level operation included in a block without a
// transaction, such as a staking reward or a penalty.
type Inherent struct {
	Type        string `json:"type"`
	BlockNumber int64  `json:"blockNumber"`
	BlockTime   int64  `json:"blockTime"`
	Target      string `json:"target,omitempty"`
	Value       Coin   `json:"value,omitempty"`
	Hash        string `json:"hash,omitempty"`

	// penalty inherents only
	ValidatorAddress string `json:"validatorAddress,omitempty"`
	Offense          string `json:"offense,omitempty"`
	Slot             uint16 `json:"slot,omitempty"`
}
