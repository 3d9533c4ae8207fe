package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockDiscriminators(t *testing.T) {
	micro := &Block{Type: BlockTypeMicro}
	macro := &Block{Type: BlockTypeMacro}
	election := &Block{Type: BlockTypeMacro, IsElectionBlock: true}

	assert.True(t, micro.IsMicro())
	assert.False(t, micro.IsMacro())
	assert.False(t, micro.IsElection())

	assert.True(t, macro.IsMacro())
	assert.False(t, macro.IsElection())

	assert.True(t, election.IsMacro())
	assert.True(t, election.IsElection())

	// the micro flag on a non-macro block must not count as election
	weird := &Block{Type: BlockTypeMicro, IsElectionBlock: true}
	assert.False(t, weird.IsElection())
}

func TestBlockPredicates(t *testing.T) {
	blocks := []*Block{
		{Type: BlockTypeMicro, Number: 1},
		{Type: BlockTypeMicro, Number: 2},
		{Type: BlockTypeMacro, Number: 60},
		{Type: BlockTypeMacro, Number: 43200, IsElectionBlock: true},
	}

	count := func(p BlockPredicate) int {
		n := 0
		for _, b := range blocks {
			if p(b) {
				n++
			}
		}
		return n
	}

	assert.Equal(t, 2, count(MicroBlocks))
	assert.Equal(t, 2, count(MacroBlocks))
	assert.Equal(t, 1, count(ElectionBlocks))
}

func TestBlockUnmarshal(t *testing.T) {
	raw := []byte(`{
		"hash": "a3f1",
		"number": 43200,
		"batch": 720,
		"epoch": 1,
		"type": "macro",
		"isElectionBlock": true,
		"justification": {"round": 0, "sig": "c0ffee"},
		"slots": [{"firstSlotNumber": 0, "numSlots": 512, "validator": "NQ34...", "publicKey": "b1"}]
	}`)

	var b Block
	require.NoError(t, json.Unmarshal(raw, &b))
	assert.Equal(t, int64(43200), b.Number)
	assert.True(t, b.IsElection())
	// macro blocks carry a justification too
	assert.JSONEq(t, `{"round": 0, "sig": "c0ffee"}`, string(b.Justification))
	require.Len(t, b.Slots, 1)
	assert.Equal(t, uint16(512), b.Slots[0].NumSlots)
}
