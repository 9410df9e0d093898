package csx

import (
	"encoding/binary"

	"github.com/vtdev/csx512/keccak"
)

// KeyParams carries the caller-owned secret material consumed by
// Initialize. It is read-only during initialization and not retained
// afterwards.
type KeyParams struct {
	Key   []byte // exactly KeySize bytes
	Nonce []byte // exactly NonceSize bytes
	Info  []byte // optional, up to InfoMaxSize bytes; only the first 14 are used
}

// MACVariant selects the inner permutation round count used by the
// authentication MAC: the standard 24-round KMAC-512, or the reduced
// 12-round "KMAC-R12" CSX also permits.
type MACVariant int

const (
	StandardMAC MACVariant = iota
	ReducedMAC
)

// State is a single CSX-512 session: the permutation's fixed lanes, the
// nonce counter, an owned KMAC-512 context, and the bookkeeping needed
// to frame one transform call's MAC input. It is not safe for concurrent
// use; operations on one State must be serialized by the caller.
type State struct {
	lanes     [stateLanes]uint64
	nonce     counter
	mac       *keccak.KMAC
	processed uint64
	aad       []byte
	encrypt   bool
}

// resolveInfo returns the 14-byte info string CSX mixes into the key
// schedule: the caller's info truncated or zero-padded to 14 bytes, or
// the fixed default name when none is supplied.
func resolveInfo(info []byte) []byte {
	if len(info) == 0 {
		return csxName
	}
	buf := make([]byte, nameSize)
	copy(buf, info)
	return buf
}

// Initialize derives the cipher and MAC keys from params via cSHAKE-512,
// loads the permutation's fixed lanes, and keys a fresh MAC session.
// encrypt selects the session's direction; variant selects the MAC's
// round count.
func Initialize(st *State, params *KeyParams, encrypt bool, variant MACVariant) {
	info := resolveInfo(params.Info)

	xof := keccak.NewCShake(keccak.Rate512, info, nil)
	xof.Write(params.Key)

	var block [keccak.Rate512]byte
	xof.SqueezeBlocks(block[:], 1)
	var cipherKey [KeySize]byte
	copy(cipherKey[:], block[:KeySize])

	xof.SqueezeBlocks(block[:], 1)
	var macKey [KeySize]byte
	copy(macKey[:], block[:KeySize])

	for i := 0; i < 8; i++ {
		st.lanes[i] = binary.LittleEndian.Uint64(cipherKey[i*8:])
	}
	for i := 0; i < 6; i++ {
		st.lanes[8+i] = binary.LittleEndian.Uint64(csxInfo[i*8:])
	}

	st.nonce = counter{
		n0: binary.LittleEndian.Uint64(params.Nonce[0:8]),
		n1: binary.LittleEndian.Uint64(params.Nonce[8:16]),
	}

	if variant == ReducedMAC {
		st.mac = keccak.NewKMACReduced(macKey[:], nil)
	} else {
		st.mac = keccak.NewKMAC(macKey[:], nil)
	}

	st.processed = 0
	st.aad = nil
	st.encrypt = encrypt

	zero(cipherKey[:])
	zero(macKey[:])
}

// SetAssociated binds data as associated data for the next Transform
// call only; it is borrowed read-only until that call completes, and
// the binding is cleared whether or not the call succeeds.
func (st *State) SetAssociated(data []byte) {
	st.aad = data
}

// macInput feeds AAD, the pre-call nonce, the ciphertext body, and the
// little-endian processed-byte counter into the MAC, in that order, and
// writes the MACSize-byte tag into tag.
func (st *State) macInput(n0, n1 uint64, ciphertext []byte, tag []byte) {
	if len(st.aad) != 0 {
		st.mac.Write(st.aad)
	}

	var nonceBuf [NonceSize]byte
	binary.LittleEndian.PutUint64(nonceBuf[0:8], n0)
	binary.LittleEndian.PutUint64(nonceBuf[8:16], n1)
	st.mac.Write(nonceBuf[:])

	st.mac.Write(ciphertext)

	var ctrBuf [8]byte
	binary.LittleEndian.PutUint64(ctrBuf[:], st.processed)
	st.mac.Write(ctrBuf[:])

	st.mac.Finalize(tag, MACSize)
}

// Transform runs one encrypt or decrypt call, per the session's
// direction, over length bytes of in.
//
// Encrypting: in is length bytes of plaintext, out must hold at least
// length+MACSize bytes; out[:length] receives the ciphertext and
// out[length:length+MACSize] receives the tag. Always returns true.
//
// Decrypting: in is length+MACSize bytes (ciphertext followed by its
// tag), out must hold at least length bytes. The tag is verified in
// constant time before anything is written to out; on mismatch, out is
// left untouched and Transform returns false.
func (st *State) Transform(out, in []byte, length int) bool {
	n0, n1 := st.nonce.n0, st.nonce.n1
	st.processed += uint64(length)

	var ok bool
	if st.encrypt {
		generate(&st.lanes, &st.nonce, out[:length], length)
		for i := 0; i < length; i++ {
			out[i] ^= in[i]
		}
		st.macInput(n0, n1, out[:length], out[length:length+MACSize])
		ok = true
	} else {
		var tag [MACSize]byte
		st.macInput(n0, n1, in[:length], tag[:])
		if constantTimeEqual(tag[:], in[length:length+MACSize]) {
			generate(&st.lanes, &st.nonce, out[:length], length)
			for i := 0; i < length; i++ {
				out[i] ^= in[i]
			}
			ok = true
		}
	}

	st.aad = nil
	return ok
}

// Dispose zeroizes all secret material held by the session: the
// permutation lanes, the nonce counter, and the MAC's internal state.
// The session must not be used afterwards.
func Dispose(st *State) {
	zeroLanes(st.lanes[:])
	st.nonce = counter{}
	if st.mac != nil {
		st.mac.Zero()
	}
	st.processed = 0
	st.aad = nil
	st.encrypt = false
}
