package csx

import "crypto/subtle"

// constantTimeEqual reports whether a and b are equal, in time that
// depends only on len(a) (the two are always the same fixed length in
// this package's use, MACSize), never on where they first differ.
func constantTimeEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// zero overwrites every byte of buf with zero.
func zero(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}

func zeroLanes(lanes []uint64) {
	for i := range lanes {
		lanes[i] = 0
	}
}
