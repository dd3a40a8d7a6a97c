package pairing

import (
	"go.dedis.ch/kyber/v3"

	"github.com/dedis/tallyvote/tallyerr"
)

// GT is an element of the pairing target group. Ballots, proof
// commitments, and pairing bases all live here; GT is written
// multiplicatively throughout this module.
type GT struct {
	p kyber.Point
}

// GTIdentity returns 1_GT, the multiplicative identity.
func GTIdentity() GT {
	return GT{p: mustSuite().GT().Point().Null()}
}

// Pair computes the bilinear pairing e(g1, g2).
func Pair(g1 G1, g2 G2) GT {
	return GT{p: mustSuite().Pair(g1.p, g2.p)}
}

// Mul returns t * other (the GT group operation, written additively as
// Point.Add on the underlying kyber target-group point).
func (t GT) Mul(other GT) GT {
	return GT{p: mustSuite().GT().Point().Add(t.p, other.p)}
}

// Pow returns t^s.
func (t GT) Pow(s Fr) GT {
	return GT{p: mustSuite().GT().Point().Mul(s.kyberScalar(), t.p)}
}

// Equal reports whether t and other are the same element.
func (t GT) Equal(other GT) bool {
	return t.p.Equal(other.p)
}

// MarshalBinary returns the canonical fixed-width encoding of t.
func (t GT) MarshalBinary() ([]byte, error) {
	return t.p.MarshalBinary()
}

// GTFromBytes deserializes a canonical GT element encoding.
func GTFromBytes(b []byte) (GT, error) {
	p := mustSuite().GT().Point()
	if err := p.UnmarshalBinary(b); err != nil {
		return GT{}, tallyerr.ErrSerialization
	}
	return GT{p: p}, nil
}
