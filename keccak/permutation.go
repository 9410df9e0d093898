package keccak

import "math/bits"

// NumRounds is the standard number of rounds in the Keccak-f[1600]
// permutation, as specified by FIPS-202.
const NumRounds = 24

// NumRoundsReduced is the round count used by the reduced-round KMAC
// variant (KMAC-R12); it takes the final 12 rounds of the standard
// schedule, the same convention KangarooTwelve uses for its
// Keccak-p[1600,12] permutation.
const NumRoundsReduced = 12

// roundConstants holds the 24 FIPS-202 round constants for the iota step.
var roundConstants = [NumRounds]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// rhoOffsets holds the 25 rotation offsets of the rho step, indexed by
// lane position x+5y.
var rhoOffsets = [25]uint{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// piLane holds the destination lane index of the pi step: the lane at
// x+5y moves to piLane[x+5y] = y+5*((2x+3y) mod 5).
var piLane = [25]int{
	0, 10, 20, 5, 15,
	16, 1, 11, 21, 6,
	7, 17, 2, 12, 22,
	23, 8, 18, 3, 13,
	14, 24, 9, 19, 4,
}

// permute applies rounds rounds of the Keccak-f[1600] permutation to a,
// taking the final rounds entries of the standard round-constant
// schedule. rounds must be NumRounds or NumRoundsReduced.
func permute(a *[25]uint64, rounds int) {
	start := NumRounds - rounds
	var b [25]uint64
	var c [5]uint64
	var d [5]uint64

	for round := start; round < NumRounds; round++ {
		// theta
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		}
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				a[x+5*y] ^= d[x]
			}
		}

		// rho + pi
		for i := 0; i < 25; i++ {
			b[piLane[i]] = bits.RotateLeft64(a[i], int(rhoOffsets[i]))
		}

		// chi
		for y := 0; y < 5; y++ {
			row := y * 5
			for x := 0; x < 5; x++ {
				a[row+x] = b[row+x] ^ ((^b[row+(x+1)%5]) & b[row+(x+2)%5])
			}
		}

		// iota
		a[0] ^= roundConstants[round]
	}
}
