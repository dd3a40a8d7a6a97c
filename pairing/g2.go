package pairing

import (
	"go.dedis.ch/kyber/v3"

	"github.com/dedis/tallyvote/tallyerr"
)

// G2 is a point in the second pairing source group. It carries the
// per-election hash-to-curve point H used as the pairing's second argument.
type G2 struct {
	p kyber.Point
}

// HashToG2 hashes electionID (or any domain-separated byte string) to a
// point in G2. This uses kyber's suite-provided hash-to-point rather than
// hand-implementing the IETF _XMD:SHA-256_SSWU_RO_ standard: it is a fast,
// non-uniform hash acceptable for domain separation but not interchangeable
// with an RFC 9380-compliant hash-to-curve implementation. See DESIGN.md
// Open Question 3.
func HashToG2(electionID []byte) G2 {
	hp, ok := mustSuite().G2().Point().(kyber.HashablePoint)
	if !ok {
		panic("pairing: G2 point type does not support hash-to-curve")
	}
	return G2{p: hp.Hash(electionID)}
}

// Equal reports whether g and other are the same point.
func (g G2) Equal(other G2) bool {
	return g.p.Equal(other.p)
}

// MarshalBinary returns the canonical fixed-width encoding of g.
func (g G2) MarshalBinary() ([]byte, error) {
	return g.p.MarshalBinary()
}

// G2FromBytes deserializes a canonical G2 point encoding.
func G2FromBytes(b []byte) (G2, error) {
	p := mustSuite().G2().Point()
	if err := p.UnmarshalBinary(b); err != nil {
		return G2{}, tallyerr.ErrSerialization
	}
	return G2{p: p}, nil
}
