package csx

// Sizes, all in bytes.
const (
	KeySize      = 64  // cipher key consumed by Initialize
	NonceSize    = 16  // nonce / counter IV
	MACSize      = 64  // appended authentication tag
	BlockSize    = 128 // permutation output block
	InfoMaxSize  = 48  // upper bound on a caller-supplied info tweak
	nameSize     = 14  // info bytes actually mixed into the key schedule
	stateLanes   = 14  // "state" lanes distinct from the two nonce lanes
	permuteLanes = 16  // lanes fed into the 1024-bit permutation
)

// roundCount is the number of CSX permutation rounds, issued as 20
// double-rounds of eight ARX steps each.
const roundCount = 40

// csxName is the default 14-byte info string used when the caller does
// not supply one, mixed into the cSHAKE-512 key schedule as the "name".
var csxName = []byte("CSX512-KMAC512")

// csxInfo is the fixed 48-byte constant loaded into state lanes 8..13,
// which feed permutation lanes 8..11, 14 and 15 (lanes 12 and 13 hold
// the counter), binding every CSX session to this specific construction.
var csxInfo = []byte("CSX512 KMAC authentication ver. 1c CEX++ library")
