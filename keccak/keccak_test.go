package keccak

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"testing"

	"golang.org/x/crypto/sha3"
)

// legacyKeccak256 is the x/crypto oracle this file checks against
// throughout: it implements the same pre-standardization domain (0x01)
// this package's Sum256/Hasher target.
func legacyKeccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

func TestSum256KnownVector(t *testing.T) {
	got := Sum256([]byte("hello"))
	want, _ := hex.DecodeString("1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8")
	if !bytes.Equal(got[:], want) {
		t.Fatalf("Sum256(\"hello\") = %x, want %x", got, want)
	}
}

// TestHasherMatchesChunking feeds the same input through Hasher in
// several different write-chunk sizes and checks every pattern agrees
// with a single-shot Sum256 call, including unaligned chunk sizes that
// straddle the sponge rate boundary.
func TestHasherMatchesChunking(t *testing.T) {
	data := make([]byte, Rate256*2+50)
	for i := range data {
		data[i] = byte(i * 7)
	}
	want := Sum256(data)

	chunkSizes := []int{1, 7, 37, Rate256, Rate256 + 1, len(data)}
	for _, chunk := range chunkSizes {
		t.Run(fmt.Sprintf("chunk=%d", chunk), func(t *testing.T) {
			var h Hasher
			for i := 0; i < len(data); i += chunk {
				end := min(i+chunk, len(data))
				h.Write(data[i:end])
			}
			if got := h.Sum256(); got != want {
				t.Fatalf("chunked write mismatch: got %x, want %x", got, want)
			}
		})
	}
}

func TestHasherSumDoesNotConsume(t *testing.T) {
	var h Hasher
	h.Write([]byte("first"))
	first := h.Sum256()
	h.Write([]byte(" second"))
	second := h.Sum256()

	if first == second {
		t.Fatal("Sum256 after further writes should reflect the longer input")
	}
	if want := Sum256([]byte("first")); first != want {
		t.Fatalf("first Sum256 = %x, want %x", first, want)
	}
	if want := Sum256([]byte("first second")); second != want {
		t.Fatalf("second Sum256 = %x, want %x", second, want)
	}
}

func FuzzSum256(f *testing.F) {
	f.Add([]byte(nil))
	f.Add([]byte("hello"))
	f.Add(make([]byte, Rate256))
	f.Add(make([]byte, Rate256+1))
	f.Add(make([]byte, Rate256*3+50))

	f.Fuzz(func(t *testing.T, data []byte) {
		want := legacyKeccak256(data)

		if got := Sum256(data); !bytes.Equal(got[:], want) {
			t.Fatalf("Sum256 mismatch for len=%d\ngot:  %x\nwant: %x", len(data), got, want)
		}

		var h Hasher
		h.Write(data)
		if got := h.Sum256(); !bytes.Equal(got[:], want) {
			t.Fatalf("Hasher mismatch for len=%d\ngot:  %x\nwant: %x", len(data), got, want)
		}

		h.Reset()
		for _, b := range data {
			h.Write([]byte{b})
		}
		if got := h.Sum256(); !bytes.Equal(got[:], want) {
			t.Fatalf("byte-by-byte Hasher mismatch for len=%d\ngot:  %x\nwant: %x", len(data), got, want)
		}
	})
}

var benchSizes = []int{32, 128, 256, 1024, 4096, 500 * 1024}

func benchName(size int) string {
	if size >= 1024 {
		return fmt.Sprintf("%dK", size/1024)
	}
	return fmt.Sprintf("%dB", size)
}

func BenchmarkSum256(b *testing.B) {
	for _, size := range benchSizes {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i)
		}
		b.Run(benchName(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			for b.Loop() {
				Sum256(data)
			}
		})
	}
}

// BenchmarkLegacyKeccak256 is the same sweep against the x/crypto
// reference implementation, for side-by-side comparison.
func BenchmarkLegacyKeccak256(b *testing.B) {
	for _, size := range benchSizes {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i)
		}
		b.Run(benchName(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			h := sha3.NewLegacyKeccak256()
			for b.Loop() {
				h.Reset()
				h.Write(data)
				h.Sum(nil)
			}
		})
	}
}

func BenchmarkHasher(b *testing.B) {
	for _, size := range benchSizes {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i)
		}
		b.Run(benchName(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			var h Hasher
			for b.Loop() {
				h.Reset()
				h.Write(data)
				h.Sum256()
			}
		})
	}
}
