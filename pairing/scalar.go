package pairing

import (
	"io"

	"go.dedis.ch/kyber/v3"
	"go.dedis.ch/kyber/v3/util/random"

	"github.com/dedis/tallyvote/internal/csprng"
	"github.com/dedis/tallyvote/tallyerr"
)

// Fr is an element of the BLS12-381 scalar field.
type Fr struct {
	s kyber.Scalar
}

// RandomFr draws a uniform scalar. If rand is nil,
// this module's fork-safe CSPRNG (internal/csprng) is used as the entropy
// source; a caller-supplied reader is threaded through kyber's
// random.Stream helper so tests can substitute a deterministic source
// without touching this package's internals.
func RandomFr(rand io.Reader) Fr {
	scalar := mustSuite().G1().Scalar()
	if rand == nil {
		rand = csprng.Generator{}
	}
	return Fr{s: scalar.Pick(random.New(rand))}
}

// FrFromUint64 constructs the scalar equal to the given small non-negative
// integer.
func FrFromUint64(v uint64) Fr {
	return Fr{s: mustSuite().G1().Scalar().SetInt64(int64(v))}
}

// FrFromHash reduces an arbitrary-length hash digest into Fr, uniformly
// over the field (kyber's Scalar.SetBytes performs a mod-p reduction of the
// input).
func FrFromHash(digest []byte) Fr {
	return Fr{s: mustSuite().G1().Scalar().SetBytes(digest)}
}

// FrFromBytes deserializes a canonical scalar encoding.
func FrFromBytes(b []byte) (Fr, error) {
	s := mustSuite().G1().Scalar()
	if err := s.UnmarshalBinary(b); err != nil {
		return Fr{}, tallyerr.ErrSerialization
	}
	return Fr{s: s}, nil
}

// Add returns f + other.
func (f Fr) Add(other Fr) Fr {
	return Fr{s: mustSuite().G1().Scalar().Add(f.s, other.s)}
}

// Sub returns f - other.
func (f Fr) Sub(other Fr) Fr {
	return Fr{s: mustSuite().G1().Scalar().Sub(f.s, other.s)}
}

// Mul returns f * other.
func (f Fr) Mul(other Fr) Fr {
	return Fr{s: mustSuite().G1().Scalar().Mul(f.s, other.s)}
}

// Neg returns -f.
func (f Fr) Neg() Fr {
	return Fr{s: mustSuite().G1().Scalar().Neg(f.s)}
}

// Equal reports whether f and other represent the same field element.
func (f Fr) Equal(other Fr) bool {
	return f.s.Equal(other.s)
}

// MarshalBinary returns the canonical fixed-width encoding of f.
func (f Fr) MarshalBinary() ([]byte, error) {
	return f.s.MarshalBinary()
}

// kyberScalar exposes the underlying kyber.Scalar to the point operations of
// this package that must feed it directly to kyber (e.g. GT.Pow). Not part
// of the public data model, internal-only escape hatch.
func (f Fr) kyberScalar() kyber.Scalar {
	return f.s
}
