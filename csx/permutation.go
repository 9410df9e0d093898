package csx

import (
	"encoding/binary"
	"math/bits"
)

// quartet names a 4-lane ARX group and its rotation schedule. CSX issues
// 40 rounds as 20 double-rounds, each double-round running the four
// "column" quartets followed by the four "diagonal" quartets.
type quartet struct {
	a, b, c, d int
	r0, r1, r2, r3 uint
}

var columnQuartets = [4]quartet{
	{0, 4, 8, 12, 38, 19, 10, 55},
	{1, 5, 9, 13, 33, 4, 51, 13},
	{2, 6, 10, 14, 16, 34, 56, 51},
	{3, 7, 11, 15, 4, 53, 42, 41},
}

var diagonalQuartets = [4]quartet{
	{0, 5, 10, 15, 34, 41, 59, 17},
	{1, 6, 11, 12, 23, 31, 37, 20},
	{2, 7, 8, 13, 31, 44, 47, 46},
	{3, 4, 9, 14, 12, 47, 44, 30},
}

// arxStep runs the eight-operation ARX quartet body on the four lanes
// named by q, scalar form.
func arxStep(x *[permuteLanes]uint64, q *quartet) {
	a, b, c, d := q.a, q.b, q.c, q.d
	x[a] += x[b]
	x[d] = bits.RotateLeft64(x[d]^x[a], int(q.r0))
	x[c] += x[d]
	x[b] = bits.RotateLeft64(x[b]^x[c], int(q.r1))
	x[a] += x[b]
	x[d] = bits.RotateLeft64(x[d]^x[a], int(q.r2))
	x[c] += x[d]
	x[b] = bits.RotateLeft64(x[b]^x[c], int(q.r3))
}

// permuteScalar runs the full 40-round (20-double-round) CSX permutation
// on a single 16-lane block, feeds the initial lanes forward (including
// the supplied counter halves in lanes 12 and 13), and writes the
// 128-byte little-endian output block.
func permuteScalar(initial *[permuteLanes]uint64, out []byte) {
	x := *initial

	for round := 0; round < roundCount/2; round++ {
		for i := range columnQuartets {
			arxStep(&x, &columnQuartets[i])
		}
		for i := range diagonalQuartets {
			arxStep(&x, &diagonalQuartets[i])
		}
	}

	for i := 0; i < permuteLanes; i++ {
		binary.LittleEndian.PutUint64(out[i*8:], x[i]+initial[i])
	}
}
