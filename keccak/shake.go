package keccak

// XOF is an extendable-output function built on the Keccak sponge: SHAKE
// or cSHAKE depending on how it is constructed. Callers Write the input
// message (possibly in several calls), then Read or SqueezeBlocks to
// obtain output; once reading has begun, further writes are invalid.
type XOF struct {
	s         *state
	squeezing bool
	block     [Rate128]byte
	blockPos  int
}

// NewShake returns a SHAKE extendable-output function at the given
// sponge rate.
func NewShake(rate int) *XOF {
	return &XOF{s: newState(rate, DomainSHAKE, NumRounds)}
}

// NewCShake returns a cSHAKE extendable-output function at the given
// sponge rate, customized with the given function name and custom
// strings. If both name and custom are empty, cSHAKE degenerates to
// plain SHAKE, per SP 800-185.
func NewCShake(rate int, name, custom []byte) *XOF {
	if len(name) == 0 && len(custom) == 0 {
		return NewShake(rate)
	}

	s := newState(rate, DomainCSHAKE, NumRounds)
	header := make([]byte, headerCapacity(rate, len(name), len(custom)))
	off := leftEncode(header, uint64(rate))
	off = encodeString(header, off, name)
	off = encodeString(header, off, custom)

	padded := off
	if rem := padded % rate; rem != 0 {
		padded += rate - rem
	}
	for i := off; i < padded; i++ {
		header[i] = 0
	}
	for i := 0; i < padded; i += rate {
		s.fastAbsorb(header[i : i+rate])
	}

	return &XOF{s: s}
}

// Write absorbs more input into the XOF. It must not be called after
// Read or SqueezeBlocks.
func (x *XOF) Write(p []byte) (int, error) {
	x.s.update(p)
	return len(p), nil
}

// padTail pads whatever remains of the incremental absorb buffer
// (always shorter than a full rate block, since update flushes full
// blocks as they fill) and clears the buffer position.
func (d *state) padTail() {
	d.absorb(d.buf[:d.pos])
	d.pos = 0
}

// beginSqueezing transitions the XOF from absorbing to squeezing, if
// it has not already done so.
func (x *XOF) beginSqueezing() {
	if !x.squeezing {
		x.s.padTail()
		x.squeezing = true
		x.blockPos = x.s.rate
	}
}

// Read squeezes len(p) bytes of output from the XOF.
func (x *XOF) Read(p []byte) (int, error) {
	x.beginSqueezing()
	n := 0
	for n < len(p) {
		if x.blockPos == x.s.rate {
			x.s.squeezeBlocks(x.block[:x.s.rate], 1)
			x.blockPos = 0
		}
		c := copy(p[n:], x.block[x.blockPos:x.s.rate])
		n += c
		x.blockPos += c
	}
	return n, nil
}

// SqueezeBlocks squeezes nblocks whole rate-sized blocks directly into
// out, which must be at least nblocks*Rate bytes. It is the low-level
// primitive CSX's key schedule uses to pull exactly one or two 72-byte
// blocks without going through the general Read buffering.
func (x *XOF) SqueezeBlocks(out []byte, nblocks int) {
	x.beginSqueezing()
	x.blockPos = x.s.rate
	x.s.squeezeBlocks(out, nblocks)
}

// Rate returns the XOF's sponge rate in bytes.
func (x *XOF) Rate() int { return x.s.rate }
