// Package transcript implements the Fiat–Shamir transform: an ordered list
// of group elements, scalars, and byte strings is hashed deterministically
// into a single challenge scalar in Fr.
//
// Item is a closed sum type: a caller builds a transcript from a fixed set
// of constructors, so an unsupported element shape fails at compile time
// rather than surfacing as a runtime InvalidInput error.
package transcript

import (
	"encoding/binary"

	"github.com/dedis/tallyvote/internal/hashfactory"
	"github.com/dedis/tallyvote/pairing"
	"github.com/dedis/tallyvote/tallyerr"
)

var digestFactory = hashfactory.New(hashfactory.SHA256)

type itemKind int

const (
	kindUnset itemKind = iota
	kindGT
	kindG1
	kindG2
	kindScalar
	kindBytes
)

// Item is one element of a Fiat–Shamir transcript.
type Item struct {
	kind  itemKind
	gt    pairing.GT
	g1    pairing.G1
	g2    pairing.G2
	fr    pairing.Fr
	bytes []byte
}

// GT wraps a target-group element for inclusion in a transcript.
func GT(v pairing.GT) Item { return Item{kind: kindGT, gt: v} }

// G1 wraps a G1 point for inclusion in a transcript.
func G1(v pairing.G1) Item { return Item{kind: kindG1, g1: v} }

// G2 wraps a G2 point for inclusion in a transcript.
func G2(v pairing.G2) Item { return Item{kind: kindG2, g2: v} }

// Scalar wraps an Fr element for inclusion in a transcript.
func Scalar(v pairing.Fr) Item { return Item{kind: kindScalar, fr: v} }

// Bytes wraps a raw byte string for inclusion in a transcript, absorbed
// verbatim.
func Bytes(b []byte) Item { return Item{kind: kindBytes, bytes: b} }

// String wraps a string, encoded as UTF-8 bytes, for inclusion in a
// transcript.
func String(s string) Item { return Item{kind: kindBytes, bytes: []byte(s)} }

func (it Item) canonicalBytes() ([]byte, error) {
	switch it.kind {
	case kindGT:
		return it.gt.MarshalBinary()
	case kindG1:
		return it.g1.MarshalBinary()
	case kindG2:
		return it.g2.MarshalBinary()
	case kindScalar:
		return it.fr.MarshalBinary()
	case kindBytes:
		return it.bytes, nil
	default:
		return nil, tallyerr.ErrInvalidInput
	}
}

// Challenge computes the Fiat–Shamir challenge for an ordered list of
// transcript items:
//
//	challenge = Fr_from_hash( SHA-256( len(item_0) || item_0 || len(item_1) || item_1 || ... ) )
//
// Each item's length is framed explicitly as a big-endian uint32 prefix
// before its canonical encoding, so that a variable-length Bytes item
// cannot shift the boundary between two adjacent items and produce a
// colliding transcript.
func Challenge(items ...Item) (pairing.Fr, error) {
	h := digestFactory.NewHash()

	var lenBuf [4]byte
	for _, it := range items {
		b, err := it.canonicalBytes()
		if err != nil {
			return pairing.Fr{}, err
		}

		binary.BigEndian.PutUint32(lenBuf[:], uint32(len(b)))
		h.Write(lenBuf[:])
		h.Write(b)
	}

	return pairing.FrFromHash(h.Sum(nil)), nil
}
