// Package keccak implements the Keccak-f[1600] permutation and the sponge
// constructions built on top of it: SHA-3, SHAKE, cSHAKE, and KMAC.
//
// The permutation operates on a 25-lane, 64-bit, little-endian state and
// is exposed only through the higher-level constructions in this package;
// callers that need a keyed MAC or an extendable-output function should
// reach for Sum/Sum512, NewShake/NewCShake, or NewKMAC/NewKMACReduced
// rather than the permutation directly.
//
// Domain separation follows FIPS-202 and SP 800-185: SHA-3 uses domain
// byte 0x06, SHAKE uses 0x1F, and cSHAKE/KMAC use 0x04 (cSHAKE falls back
// to plain SHAKE, domain 0x1F, when both its name and custom strings are
// empty).
package keccak
