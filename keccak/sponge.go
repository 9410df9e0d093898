package keccak

import "encoding/binary"

// Rate constants for the four FIPS-202 security levels, measured in
// bytes of sponge state exposed per permutation call (the capacity is
// the remaining 200-rate bytes).
const (
	Rate128 = 168
	Rate256 = 136
	Rate384 = 104
	Rate512 = 72
)

// Domain separation bytes, OR'd into the state before the pad10*1
// padding bit is applied.
const (
	DomainSHA3   byte = 0x06
	DomainSHAKE  byte = 0x1f
	DomainCSHAKE byte = 0x04
	DomainKMAC   byte = 0x04
)

// state is a Keccak sponge: a 25-lane permutation state plus a
// rate-sized staging buffer used to accumulate partial absorbs. It is
// the shared substrate for SHA-3, SHAKE, cSHAKE, and KMAC.
type state struct {
	a      [25]uint64
	buf    [Rate128]byte // large enough for the widest rate (R128)
	pos    int
	rate   int
	domain byte
	rounds int
}

func newState(rate int, domain byte, rounds int) *state {
	return &state{rate: rate, domain: domain, rounds: rounds}
}

// reset zeroes the sponge state, buffer, and position, readying it for
// reuse.
func (d *state) reset() {
	d.a = [25]uint64{}
	d.clearBuffer()
}

// clearBuffer zeroes the staging buffer and position without touching
// the permutation lanes. KMAC's finalize uses this: after squeezing the
// tag it clears the absorb buffer but deliberately leaves the sponge
// lanes as the squeeze produced them, so a reused KMAC session continues
// from that evolved state rather than restarting from the keyed session.
func (d *state) clearBuffer() {
	for i := range d.buf {
		d.buf[i] = 0
	}
	d.pos = 0
}

// permute applies the sponge's configured round count.
func (d *state) permute() {
	permute(&d.a, d.rounds)
}

// xorBlock xors a rate-sized (or shorter) byte slice into the leading
// lanes of the permutation state, interpreting 8-byte groups as
// little-endian uint64 words.
func (d *state) xorBlock(block []byte) {
	n := len(block) / 8
	for i := 0; i < n; i++ {
		d.a[i] ^= binary.LittleEndian.Uint64(block[i*8:])
	}
	if rem := len(block) % 8; rem != 0 {
		var last [8]byte
		copy(last[:], block[n*8:])
		d.a[n] ^= binary.LittleEndian.Uint64(last[:])
	}
}

// fastAbsorb xors a full rate-sized block into the state and permutes,
// without any padding. Used for whole-block absorption where the
// caller has already established the block is exactly d.rate bytes.
func (d *state) fastAbsorb(block []byte) {
	d.xorBlock(block)
	d.permute()
}

// absorb consumes all of in, padding the final partial block with the
// sponge's domain byte and the pad10*1 terminator. It does not permute
// after padding: the caller's first squeezeBlocks call supplies the
// one required transition permute, so a padded block is never
// permuted twice.
func (d *state) absorb(in []byte) {
	for len(in) >= d.rate {
		d.fastAbsorb(in[:d.rate])
		in = in[d.rate:]
	}

	var block [Rate128]byte
	copy(block[:], in)
	block[len(in)] ^= d.domain
	block[d.rate-1] ^= 0x80
	d.xorBlock(block[:d.rate])
}

// update streams arbitrary-length input through the sponge's internal
// rate-sized buffer, flushing full blocks with fastAbsorb and holding
// any remainder for the next call or for finalize.
func (d *state) update(in []byte) {
	if d.pos > 0 {
		n := copy(d.buf[d.pos:d.rate], in)
		d.pos += n
		in = in[n:]
		if d.pos == d.rate {
			d.fastAbsorb(d.buf[:d.rate])
			d.pos = 0
		}
	}
	for len(in) >= d.rate {
		d.fastAbsorb(in[:d.rate])
		in = in[d.rate:]
	}
	if len(in) > 0 {
		d.pos = copy(d.buf[:], in)
	}
}

// squeezeBlocks permutes and copies nblocks worth of rate-sized output
// from the sponge's leading lanes into out, which must be at least
// nblocks*d.rate bytes.
func (d *state) squeezeBlocks(out []byte, nblocks int) {
	for i := 0; i < nblocks; i++ {
		d.permute()
		block := out[i*d.rate : (i+1)*d.rate]
		n := len(block) / 8
		for j := 0; j < n; j++ {
			binary.LittleEndian.PutUint64(block[j*8:], d.a[j])
		}
	}
}
