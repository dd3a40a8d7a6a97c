package pairing

import (
	"go.dedis.ch/kyber/v3"

	"github.com/dedis/tallyvote/tallyerr"
)

// G1 is a point in the first pairing source group. It carries the
// process-wide generator and every voter's public key.
type G1 struct {
	p kyber.Point
}

// G1Identity returns the identity element of G1.
func G1Identity() G1 {
	return G1{p: mustSuite().G1().Point().Null()}
}

// hashToG1 hashes an arbitrary domain-separation string to a point in G1.
// Used only to derive the process-wide generator deterministically.
func hashToG1(domain []byte) G1 {
	hp, ok := mustSuite().G1().Point().(kyber.HashablePoint)
	if !ok {
		panic("pairing: G1 point type does not support hash-to-curve")
	}
	return G1{p: hp.Hash(domain)}
}

// Generator returns the single process-wide G1 generator, derived
// deterministically by hashing the domain string "generator" to G1. It must
// be identical across all participants of an election, which holds
// automatically since the derivation has no random input.
func Generator() G1 {
	return hashToG1([]byte("generator"))
}

// Add returns g + other.
func (g G1) Add(other G1) G1 {
	return G1{p: mustSuite().G1().Point().Add(g.p, other.p)}
}

// Sub returns g - other.
func (g G1) Sub(other G1) G1 {
	return G1{p: mustSuite().G1().Point().Sub(g.p, other.p)}
}

// Mul returns g scaled by the scalar s, i.e. g^s written multiplicatively
// or s*g written additively.
func (g G1) Mul(s Fr) G1 {
	return G1{p: mustSuite().G1().Point().Mul(s.kyberScalar(), g.p)}
}

// Equal reports whether g and other are the same point.
func (g G1) Equal(other G1) bool {
	return g.p.Equal(other.p)
}

// MarshalBinary returns the canonical fixed-width encoding of g.
func (g G1) MarshalBinary() ([]byte, error) {
	return g.p.MarshalBinary()
}

// G1FromBytes deserializes a canonical G1 point encoding.
func G1FromBytes(b []byte) (G1, error) {
	p := mustSuite().G1().Point()
	if err := p.UnmarshalBinary(b); err != nil {
		return G1{}, tallyerr.ErrSerialization
	}
	return G1{p: p}, nil
}
