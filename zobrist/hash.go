// Package zobrist implements incremental hashing of board states.
// https://en.wikipedia.org/wiki/Zobrist_hashing
//
// A search driver keeps the key alongside the state and updates it with
// AddMove in three XORs per jump instead of rehashing the whole word.
package zobrist

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
	"lukechampine.com/frand"

	"github.com/crosspeg/crosspeg/board"
)

const bignum = 1<<63 - 2

// posTable holds one random key per cell index. Only valid cells get a
// nonzero key. The generator is seeded with a fixed key so hashes are
// stable across processes and can be persisted by callers.
var posTable [64]uint64

func init() {
	var seed [32]byte
	seed[0] = 42
	rng := frand.NewCustom(seed[:], 1024, 12)
	for _, pos := range board.ValidCells {
		posTable[pos] = rng.Uint64n(bignum) + 1
	}
}

// Hash computes the full zobrist key for a state: the XOR of the key of
// every occupied cell. The empty board hashes to zero.
func Hash(state uint64) uint64 {
	key := uint64(0)
	for _, pos := range board.ValidCells {
		if state>>pos&1 == 1 {
			key ^= posTable[pos]
		}
	}
	return key
}

// AddMove incrementally updates key for a jump: the origin and jumped
// pegs leave, the destination peg arrives, each a single XOR. Applying
// the same triple again undoes the update, mirroring
// board.ApplyMove.
func AddMove(key uint64, from, jumped, to uint8) uint64 {
	return key ^ posTable[from] ^ posTable[jumped] ^ posTable[to]
}

// Fingerprint hashes the raw state word directly. Unlike Hash it cannot
// be updated incrementally; it is for callers keying caches or shards
// by position without carrying a zobrist key around.
func Fingerprint(state uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], state)
	return xxhash.Sum64(b[:])
}
