// Package hashfactory produces the hash.Hash instances used by the voting
// core's Fiat–Shamir transcript.
package hashfactory

import (
	"crypto/sha256"
	"hash"
)

// Algorithm identifies a supported hash function.
type Algorithm int

const (
	// SHA256 is the only algorithm the transcript's underlying hash
	// currently supports.
	SHA256 Algorithm = iota
)

// Factory produces a fresh hash.Hash instance of a fixed algorithm.
type Factory struct {
	algorithm Algorithm
}

// New returns a Factory for the given algorithm.
func New(a Algorithm) Factory {
	return Factory{algorithm: a}
}

// NewHash returns a new hash.Hash instance.
func (f Factory) NewHash() hash.Hash {
	switch f.algorithm {
	case SHA256:
		return sha256.New()
	default:
		panic("hashfactory: unknown algorithm")
	}
}
