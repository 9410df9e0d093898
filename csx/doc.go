// Package csx implements CSX-512, an experimental authenticated stream
// cipher (AEAD) combining a 40-round ChaCha-style permutation over a
// 1024-bit state with a Keccak-based key schedule (cSHAKE-512) and a
// Keccak-based MAC (KMAC-512), composed in an encrypt-then-MAC
// construction.
//
// A State is created with Initialize, optionally given per-call
// associated data with SetAssociated, and driven through Transform for
// both directions: encryption appends a 64-byte tag to the ciphertext,
// decryption verifies that tag in constant time before releasing any
// plaintext. Dispose zeroizes all secret material and must be called
// when a session is done.
//
// CSX is explicitly experimental and is not a vetted, standardized
// AEAD; it exists here as a from-specification reconstruction of the
// CEX++ library's CSX-512 cipher.
package csx
