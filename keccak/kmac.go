package keccak

// kmacName is the SP 800-185 function-name string "KMAC" used in the
// cSHAKE-style header every KMAC session begins with.
var kmacName = []byte{0x4b, 0x4d, 0x41, 0x43}

// KMAC is a keyed message authentication code built on cSHAKE: the
// standard 24-round construction, or the reduced 12-round KMAC-R12
// variant CSX uses for its MAC, selected at construction time via
// NewKMAC and NewKMACReduced.
type KMAC struct {
	s *state
}

func newKMAC(rate, rounds int, key, custom []byte) *KMAC {
	s := newState(rate, DomainKMAC, rounds)

	header := make([]byte, headerCapacity(rate, len(kmacName), len(custom)))
	off := leftEncode(header, uint64(rate))
	off = encodeString(header, off, kmacName)
	off = encodeString(header, off, custom)
	padTo(header, off, rate)
	for i := 0; i < roundUp(off, rate); i += rate {
		s.fastAbsorb(header[i : i+rate])
	}

	keyHeader := make([]byte, headerCapacity(rate, len(key), 0))
	off = leftEncode(keyHeader, uint64(rate))
	off = encodeString(keyHeader, off, key)
	padTo(keyHeader, off, rate)
	for i := 0; i < roundUp(off, rate); i += rate {
		s.fastAbsorb(keyHeader[i : i+rate])
	}

	return &KMAC{s: s}
}

// NewKMAC returns a standard, 24-round KMAC-512 session (sponge rate
// Rate512) keyed with key and customized with custom.
func NewKMAC(key, custom []byte) *KMAC {
	return newKMAC(Rate512, NumRounds, key, custom)
}

// NewKMACReduced returns a KMAC-R12 session: identical framing to
// NewKMAC, but with a 12-round inner permutation.
func NewKMACReduced(key, custom []byte) *KMAC {
	return newKMAC(Rate512, NumRoundsReduced, key, custom)
}

// padTo zero-fills header[off:roundUp(off,rate)] in place.
func padTo(header []byte, off, rate int) {
	end := roundUp(off, rate)
	for i := off; i < end; i++ {
		header[i] = 0
	}
}

func roundUp(n, rate int) int {
	if rem := n % rate; rem != 0 {
		return n + (rate - rem)
	}
	return n
}

// Write streams message bytes into the MAC. Writing after Finalize
// continues the same evolving session (see Finalize).
func (k *KMAC) Write(p []byte) (int, error) {
	k.s.update(p)
	return len(p), nil
}

// Zero destroys the MAC's entire internal state, including the
// permutation lanes Finalize otherwise leaves intact. Use this to
// dispose of a session for good, as opposed to chaining another
// Write/Finalize pair onto it.
func (k *KMAC) Zero() {
	k.s.reset()
}

// Finalize appends right_encode(8*outlen) to the streamed message
// (flushing a full block first if the tail does not fit, exactly as
// an ordinary Write would), pads and permutes, then squeezes outlen
// bytes into out. Only the absorb buffer is cleared afterwards: the
// permutation lanes are left exactly as the squeeze produced them, so
// a subsequent Write/Finalize pair continues the same evolving session
// rather than restarting from the keyed state. Callers that want an
// independent MAC must start a fresh session with NewKMAC.
func (k *KMAC) Finalize(out []byte, outlen int) {
	var trailer [10]byte
	n := rightEncode(trailer[:], uint64(outlen)*8)
	k.s.update(trailer[:n])
	k.s.padTail()

	rate := k.s.rate
	full := outlen / rate
	if full > 0 {
		k.s.squeezeBlocks(out[:full*rate], full)
	}
	if rem := outlen - full*rate; rem > 0 {
		var block [Rate128]byte
		k.s.squeezeBlocks(block[:rate], 1)
		copy(out[full*rate:], block[:rem])
	}

	k.s.clearBuffer()
}
