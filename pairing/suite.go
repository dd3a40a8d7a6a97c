// Package pairing wraps a BLS12-381 pairing implementation with the scalar
// field, source groups, target group, hashing, and serialization primitives
// the voting core needs. A package-level pairing.Suite backs every element
// type, guarded behind an explicit one-shot Init rather than constructed at
// package load, so that crypto setup happens at one well-defined point
// before any other operation.
package pairing

import (
	"sync"

	"go.dedis.ch/kyber/v3/pairing"
	"go.dedis.ch/kyber/v3/pairing/bls12381/kilic"
)

var (
	once  sync.Once
	suite pairing.Suite
)

// Init performs the one-shot, process-wide setup of the BLS12-381 pairing
// suite. It is idempotent: calling it more than once, including
// concurrently, is safe and only the first call has any effect. Every other
// constructor in this package panics if called before Init.
func Init() {
	once.Do(func() {
		suite = kilic.NewBLS12381Suite()
	})
}

// Ready reports whether Init has already run. Exposed for callers (and
// tests) that want to assert crypto is initialized before proceeding rather
// than triggering the panic path.
func Ready() bool {
	return suite != nil
}

func mustSuite() pairing.Suite {
	if suite == nil {
		panic("pairing: Init() must be called before any other pairing operation")
	}
	return suite
}
