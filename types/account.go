package types

// AccountType discriminates the account kinds tracked by the chain.
type AccountType string

const (
	AccountTypeBasic   AccountType = "basic"
	AccountTypeVesting AccountType = "vesting"
	AccountTypeHTLC    AccountType = "htlc"
	AccountTypeStaking AccountType = "staking"
)

// Account is an account as returned by the RPC interface. Contract-specific
// fields are only populated for the matching account type.
type Account struct {
	Address string      `json:"address"`
	Balance Coin        `json:"balance"`
	Type    AccountType `json:"type"`

	// vesting contracts only
	Owner       string `json:"owner,omitempty"`
	VestingStart int64 `json:"vestingStart,omitempty"`
	VestingStepBlocks int64 `json:"vestingStepBlocks,omitempty"`
	VestingStepAmount Coin  `json:"vestingStepAmount,omitempty"`
	VestingTotalAmount Coin `json:"vestingTotalAmount,omitempty"`

	// HTLC contracts only
	Sender          string `json:"sender,omitempty"`
	Recipient       string `json:"recipient,omitempty"`
	HashRoot        string `json:"hashRoot,omitempty"`
	HashCount       uint8  `json:"hashCount,omitempty"`
	Timeout         int64  `json:"timeout,omitempty"`
	TotalAmount     Coin   `json:"totalAmount,omitempty"`
}

// Validator is a registered validator as returned by the RPC interface.
type Validator struct {
	Address            string `json:"address"`
	SigningKey         string `json:"signingKey"`
	VotingKey          string `json:"votingKey"`
	RewardAddress      string `json:"rewardAddress"`
	SignalData         string `json:"signalData,omitempty"`
	Balance            Coin   `json:"balance"`
	NumStakers         uint64 `json:"numStakers"`
	InactivityFlag     *int64 `json:"inactivityFlag,omitempty"`
	Retired            bool   `json:"retired"`
	JailedFrom         *int64 `json:"jailedFrom,omitempty"`
}

// Staker is a stake delegation as returned by the RPC interface.
type Staker struct {
	Address        string `json:"address"`
	Balance        Coin   `json:"balance"`
	Delegation     string `json:"delegation,omitempty"`
	InactiveBalance Coin  `json:"inactiveBalance,omitempty"`
	InactiveFrom   *int64 `json:"inactiveFrom,omitempty"`
	RetiredBalance Coin   `json:"retiredBalance,omitempty"`
}

// WalletAccount is an account held by the node's wallet.
type WalletAccount struct {
	Address   string `json:"address"`
	PublicKey string `json:"publicKey"`
}

// Signature is the result of signing a message through the wallet.
type Signature struct {
	Signature string `json:"signature"`
	PublicKey string `json:"publicKey"`
}
