package types

import "encoding/json"

// BlockType discriminates the two block kinds produced by the chain: micro
// blocks carry user transactions, macro blocks close a batch and, at the end
// of an epoch, elect the next validator set.
type BlockType string

const (
	BlockTypeMicro BlockType = "micro"
	BlockTypeMacro BlockType = "macro"
)

// Block is a block as returned by the RPC interface. Fields that only apply
// to one block kind are left at their zero value for the other.
type Block struct {
	Hash      string    `json:"hash"`
	Size      uint32    `json:"size"`
	Batch     uint32    `json:"batch"`
	Epoch     uint32    `json:"epoch"`
	Number    int64     `json:"number"`
	Version   uint16    `json:"version"`
	Timestamp int64     `json:"timestamp"`
	Network   string    `json:"network"`
	Type      BlockType `json:"type"`

	ParentHash  string `json:"parentHash"`
	Seed        string `json:"seed"`
	ExtraData   string `json:"extraData"`
	StateHash   string `json:"stateHash"`
	BodyHash    string `json:"bodyHash"`
	HistoryHash string `json:"historyHash"`

	// micro blocks carry the producer's signature or a skip proof, macro
	// blocks a Tendermint-style commit
	Justification json.RawMessage `json:"justification,omitempty"`

	// micro blocks only
	Producer           *Slot                 `json:"producer,omitempty"`
	EquivocationProofs []json.RawMessage     `json:"equivocationProofs,omitempty"`
	Transactions       []ExecutedTransaction `json:"transactions,omitempty"`

	// macro blocks only
	IsElectionBlock    bool    `json:"isElectionBlock,omitempty"`
	ParentElectionHash string  `json:"parentElectionHash,omitempty"`
	Slots              []Slots `json:"slots,omitempty"`
	LostRewardSet      []int   `json:"lostRewardSet,omitempty"`
	DisabledSet        []int   `json:"disabledSet,omitempty"`
}

// IsMicro reports whether the block is a micro block.
func (b *Block) IsMicro() bool { return b.Type == BlockTypeMicro }

// IsMacro reports whether the block is a macro block.
func (b *Block) IsMacro() bool { return b.Type == BlockTypeMacro }

// IsElection reports whether the block is an election macro block.
func (b *Block) IsElection() bool { return b.Type == BlockTypeMacro && b.IsElectionBlock }

// BlockPredicate selects which blocks a block subscription delivers.
type BlockPredicate func(*Block) bool

// Predefined predicates for the common block subscriptions.
var (
	MicroBlocks    BlockPredicate = (*Block).IsMicro
	MacroBlocks    BlockPredicate = (*Block).IsMacro
	ElectionBlocks BlockPredicate = (*Block).IsElection
)

// Slot describes the validator slot that produced a micro block.
type Slot struct {
	FirstSlotNumber uint16 `json:"firstSlotNumber,omitempty"`
	NumSlots        uint16 `json:"numSlots,omitempty"`
	SlotNumber      uint16 `json:"slotNumber,omitempty"`
	Validator       string `json:"validator"`
	PublicKey       string `json:"publicKey"`
}

// Slots describes a validator's slot band in an election block.
type Slots struct {
	FirstSlotNumber uint16 `json:"firstSlotNumber"`
	NumSlots        uint16 `json:"numSlots"`
	Validator       string `json:"validator"`
	PublicKey       string `json:"publicKey"`
}

// PenalizedSlots lists the slots that were penalized in a batch.
type PenalizedSlots struct {
	BlockNumber int64 `json:"blockNumber"`
	Disabled    []int `json:"disabled"`
}
