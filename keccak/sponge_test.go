package keccak

import (
	"bytes"
	"testing"
)

func TestFastAbsorbMatchesUpdateOnAlignedInput(t *testing.T) {
	block := make([]byte, Rate256)
	for i := range block {
		block[i] = byte(i * 7)
	}

	viaFast := newState(Rate256, DomainSHA3, NumRounds)
	viaFast.fastAbsorb(block)
	viaFast.padTail() // empty tail: appends the pad10*1 block

	viaUpdate := newState(Rate256, DomainSHA3, NumRounds)
	viaUpdate.update(block)
	viaUpdate.padTail()

	if viaFast.a != viaUpdate.a {
		t.Fatal("update()+padTail() diverges from an equivalent fastAbsorb+padTail sequence")
	}
}

func TestUpdateAccumulatesAcrossCalls(t *testing.T) {
	msg := make([]byte, 500)
	for i := range msg {
		msg[i] = byte(i)
	}

	whole := newState(Rate512, DomainSHAKE, NumRounds)
	whole.update(msg)
	whole.padTail()
	wantOut := make([]byte, Rate512)
	whole.squeezeBlocks(wantOut, 1)

	piecewise := newState(Rate512, DomainSHAKE, NumRounds)
	piecewise.update(msg[:3])
	piecewise.update(msg[3:200])
	piecewise.update(msg[200:])
	piecewise.padTail()
	gotOut := make([]byte, Rate512)
	piecewise.squeezeBlocks(gotOut, 1)

	if !bytes.Equal(wantOut, gotOut) {
		t.Fatal("splitting update() calls changed the squeezed output")
	}
}

func TestResetZeroesEverything(t *testing.T) {
	s := newState(Rate256, DomainSHA3, NumRounds)
	s.update([]byte("some input data"))
	s.padTail()
	s.reset()

	for _, lane := range s.a {
		if lane != 0 {
			t.Fatal("reset left a nonzero permutation lane")
		}
	}
	for _, b := range s.buf {
		if b != 0 {
			t.Fatal("reset left a nonzero buffer byte")
		}
	}
	if s.pos != 0 {
		t.Fatal("reset left a nonzero buffer position")
	}
}

func TestClearBufferPreservesLanes(t *testing.T) {
	s := newState(Rate256, DomainSHA3, NumRounds)
	s.update([]byte("some input data"))
	s.padTail()
	before := s.a

	s.clearBuffer()

	if s.a != before {
		t.Fatal("clearBuffer modified the permutation lanes")
	}
	if s.pos != 0 {
		t.Fatal("clearBuffer left a nonzero buffer position")
	}
}

func TestSqueezeBlocksMultiBlock(t *testing.T) {
	s := newState(Rate128, DomainSHAKE, NumRounds)
	s.update([]byte("squeeze test"))
	s.padTail()

	out := make([]byte, 3*Rate128)
	s.squeezeBlocks(out, 3)

	allZero := true
	for _, b := range out {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Fatal("squeezed output is all zero, which should not happen for real input")
	}
}
