package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crosspeg/crosspeg/board"
	"github.com/crosspeg/crosspeg/movegen"
)

func TestEmptyBoardHashesToZero(t *testing.T) {
	assert.Equal(t, uint64(0), Hash(0))
}

func TestTableCoversOnlyValidCells(t *testing.T) {
	for pos := uint8(0); pos < 64; pos++ {
		if board.IsValidCell(pos) {
			assert.NotZero(t, posTable[pos], "cell %d", pos)
		} else {
			assert.Zero(t, posTable[pos], "cell %d", pos)
		}
	}
}

func TestHashDistinguishesStates(t *testing.T) {
	seen := map[uint64]uint64{}
	for _, pos := range board.ValidCells {
		state := uint64(1) << pos
		h := Hash(state)
		prev, ok := seen[h]
		assert.False(t, ok, "hash collision between %#x and %#x", prev, state)
		seen[h] = state
	}
	assert.NotEqual(t, Hash(board.StartState), Hash(board.GoalState))
}

func TestAddMoveMatchesFullRehash(t *testing.T) {
	state := uint64(board.StartState)
	key := Hash(state)
	for ply := 0; ; ply++ {
		moves := movegen.GenerateMoves(state)
		if len(moves) == 0 {
			break
		}
		m := moves[ply%len(moves)]
		next, err := board.ApplyMove(state, m.From, m.Jumped, m.To)
		assert.Nil(t, err)
		key = AddMove(key, m.From, m.Jumped, m.To)
		assert.Equal(t, Hash(next), key, "ply %d move %v", ply, m)
		state = next
	}
}

func TestAddMoveInvolution(t *testing.T) {
	key := Hash(board.StartState)
	updated := AddMove(key, 22, 23, 24)
	assert.NotEqual(t, key, updated)
	assert.Equal(t, key, AddMove(updated, 22, 23, 24))
}

func TestHashStableAcrossCalls(t *testing.T) {
	// The table is derived from a fixed seed, so the same state always
	// hashes the same way.
	assert.Equal(t, Hash(board.StartState), Hash(board.StartState))
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t, Fingerprint(board.StartState), Fingerprint(board.StartState))
	assert.NotEqual(t, Fingerprint(board.StartState), Fingerprint(board.GoalState))
}

func BenchmarkAddMove(b *testing.B) {
	key := Hash(board.StartState)
	for i := 0; i < b.N; i++ {
		key = AddMove(key, 22, 23, 24)
	}
	_ = key
}

func BenchmarkFullHash(b *testing.B) {
	key := uint64(0)
	for i := 0; i < b.N; i++ {
		key = Hash(board.StartState)
	}
	_ = key
}
