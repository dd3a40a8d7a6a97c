package ballot

import (
	"github.com/dedis/tallyvote/pairing"
	"github.com/dedis/tallyvote/transcript"
)

// proveSchnorr builds a knowledge proof that VotePart = base^vote. It does
// not constrain vote to {0,1}; see SchnorrMode's doc comment and DESIGN.md Open
// Question 2.
func proveSchnorr(base pairing.GT, vote int) (SchnorrProof, error) {
	voteFr := pairing.FrFromUint64(uint64(vote))
	votePart := base.Pow(voteFr)

	r := pairing.RandomFr(nil)
	a := base.Pow(r)

	c, err := transcript.Challenge(transcript.GT(base), transcript.GT(a), transcript.GT(votePart))
	if err != nil {
		return SchnorrProof{}, err
	}

	s := r.Sub(c.Mul(voteFr))

	return SchnorrProof{A: a, S: s, PairingBase: base, VotePart: votePart}, nil
}

// VerifySchnorr checks a Schnorr knowledge proof: it recomputes the
// challenge from (PairingBase, A, VotePart) and accepts iff
//
//	PairingBase^S · VotePart^c == A
func VerifySchnorr(p SchnorrProof) bool {
	c, err := transcript.Challenge(transcript.GT(p.PairingBase), transcript.GT(p.A), transcript.GT(p.VotePart))
	if err != nil {
		return false
	}

	lhs := p.PairingBase.Pow(p.S).Mul(p.VotePart.Pow(c))
	return lhs.Equal(p.A)
}
