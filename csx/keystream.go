package csx

import "encoding/binary"

// counter is the CSX nonce treated as a 128-bit little-endian integer
// split into two 64-bit halves, incremented once per 128-byte block.
type counter struct {
	n0, n1 uint64
}

// increment adds one to n0, carrying into n1 on wraparound.
func (c *counter) increment() {
	c.n0++
	if c.n0 == 0 {
		c.n1++
	}
}

// baseLanes builds the fixed (non-counter) half of the permutation input
// from the CSX state array, per the lane map in the data model: lanes
// 0..11 come straight from state, lanes 14..15 come from the last two
// state slots (the permutation reserves 12..13 for the counter halves).
func baseLanes(st *[stateLanes]uint64) [permuteLanes]uint64 {
	var x [permuteLanes]uint64
	copy(x[0:12], st[0:12])
	x[14] = st[12]
	x[15] = st[13]
	return x
}

// generateScalar fills length bytes of key-stream one 128-byte block at
// a time, advancing the counter once per block. length need not be a
// multiple of BlockSize; the final partial block is truncated.
func generateScalar(st *[stateLanes]uint64, c *counter, out []byte, length int) {
	base := baseLanes(st)
	var block [BlockSize]byte
	off := 0

	for length-off >= BlockSize {
		x := base
		x[12] = c.n0
		x[13] = c.n1
		permuteScalar(&x, out[off:off+BlockSize])
		c.increment()
		off += BlockSize
	}

	if off < length {
		x := base
		x[12] = c.n0
		x[13] = c.n1
		permuteScalar(&x, block[:])
		c.increment()
		copy(out[off:length], block[:length-off])
	}
}

// generateWide runs width independent permutations over width consecutive
// counter values, one lane of the quartet schedule at a time across all
// width instances — the access pattern a real SIMD implementation would
// vectorize, expressed here as plain Go loops (no portable intrinsics
// were available to ground a true vector path on). Output is width
// back-to-back 128-byte blocks: block k occupies out[k*BlockSize:].
//
// Per the design note on the source's store-interleave code: lane i of
// output block k lives at offset k*BlockSize + 8*i, i.e. each block is
// written contiguously and in natural lane order — the same layout
// generateScalar produces, so scalar, 4-way, and 8-way paths are
// byte-identical by construction.
func generateWide(st *[stateLanes]uint64, c *counter, out []byte, width int) {
	base := baseLanes(st)

	xs := make([][permuteLanes]uint64, width)
	initial := make([][permuteLanes]uint64, width)
	for k := 0; k < width; k++ {
		xs[k] = base
		xs[k][12] = c.n0
		xs[k][13] = c.n1
		initial[k] = xs[k]
		c.increment()
	}

	for round := 0; round < roundCount/2; round++ {
		for qi := range columnQuartets {
			q := &columnQuartets[qi]
			for k := 0; k < width; k++ {
				arxStep(&xs[k], q)
			}
		}
		for qi := range diagonalQuartets {
			q := &diagonalQuartets[qi]
			for k := 0; k < width; k++ {
				arxStep(&xs[k], q)
			}
		}
	}

	for k := 0; k < width; k++ {
		block := out[k*BlockSize : (k+1)*BlockSize]
		for i := 0; i < permuteLanes; i++ {
			binary.LittleEndian.PutUint64(block[i*8:], xs[k][i]+initial[k][i])
		}
	}
}

const (
	wide4Block = 4 * BlockSize
	wide8Block = 8 * BlockSize
)

// generate fills length bytes of key-stream, preferring the widest
// aligned path for each leading segment: 8-way for as many full
// 8*BlockSize chunks as fit, then 4-way, then whole scalar blocks, then
// a truncated scalar tail. All three widths are specified to produce
// byte-identical output for the same (state, counter, length), so this
// dispatch is purely a performance choice.
func generate(st *[stateLanes]uint64, c *counter, out []byte, length int) {
	off := 0

	if aligned := length - length%wide8Block; aligned > 0 {
		for off < aligned {
			generateWide(st, c, out[off:off+wide8Block], 8)
			off += wide8Block
		}
	}

	if rem := length - off; rem >= wide4Block {
		aligned := off + (rem - rem%wide4Block)
		for off < aligned {
			generateWide(st, c, out[off:off+wide4Block], 4)
			off += wide4Block
		}
	}

	generateScalar(st, c, out[off:length], length-off)
}
