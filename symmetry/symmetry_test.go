package symmetry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crosspeg/crosspeg/board"
)

func TestCrossMapsOntoItself(t *testing.T) {
	assert.Equal(t, uint64(board.ValidMask), Rotate90(board.ValidMask))
	assert.Equal(t, uint64(board.ValidMask), FlipHorizontal(board.ValidMask))
	assert.Equal(t, uint64(board.ValidMask), FlipVertical(board.ValidMask))
}

func TestTransformOrders(t *testing.T) {
	state := uint64(1) << 2 // row 0, col 2
	assert.Equal(t, uint64(1)<<board.CellAt(2, 6), Rotate90(state))
	assert.Equal(t, uint64(1)<<board.CellAt(0, 4), FlipHorizontal(state))
	assert.Equal(t, uint64(1)<<board.CellAt(6, 2), FlipVertical(state))
}

func TestFourRotationsAreIdentity(t *testing.T) {
	for _, state := range []uint64{board.StartState, board.GoalState, 1 << 2, 1<<14 | 1<<25} {
		got := state
		for i := 0; i < 4; i++ {
			got = Rotate90(got)
		}
		assert.Equal(t, state, got, "state %#x", state)
	}
}

func TestFlipsAreInvolutions(t *testing.T) {
	state := uint64(1<<2 | 1<<17 | 1<<30)
	assert.Equal(t, state, FlipHorizontal(FlipHorizontal(state)))
	assert.Equal(t, state, FlipVertical(FlipVertical(state)))
}

func TestTransformsPreservePegCount(t *testing.T) {
	for _, state := range []uint64{board.StartState, 1 << 2, 1<<14 | 1<<25 | 1<<46} {
		assert.Equal(t, board.PegCount(state), board.PegCount(Rotate90(state)))
		assert.Equal(t, board.PegCount(state), board.PegCount(FlipHorizontal(state)))
		assert.Equal(t, board.PegCount(state), board.PegCount(FlipVertical(state)))
	}
}

func TestVariantsStartWithState(t *testing.T) {
	v := Variants(board.StartState)
	assert.Equal(t, uint64(board.StartState), v[0])
}

func TestCanonicalInvariantUnderSymmetry(t *testing.T) {
	state := uint64(1<<2 | 1<<17 | 1<<33)
	canon := Canonical(state)
	for _, variant := range Variants(state) {
		assert.Equal(t, canon, Canonical(variant))
	}
}

func TestCanonicalSinglePeg(t *testing.T) {
	// All eight images of a lone peg at cell 44 include cell 2, the
	// smallest bit in the orbit.
	assert.Equal(t, uint64(1)<<2, Canonical(1<<44))
}

func TestDistinctVariants(t *testing.T) {
	// The standard start is fully symmetric, a lone off-axis corner peg
	// is fully asymmetric, and a lone center peg is fixed by
	// everything.
	assert.Equal(t, 1, DistinctVariants(board.StartState))
	assert.Equal(t, 1, DistinctVariants(board.GoalState))
	assert.Equal(t, 8, DistinctVariants(1<<2))
}
