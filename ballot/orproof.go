package ballot

import (
	"github.com/dedis/tallyvote/pairing"
	"github.com/dedis/tallyvote/tallyerr"
	"github.com/dedis/tallyvote/transcript"
)

// proveOR builds a Chaum–Pedersen OR proof that VotePart ∈ {1_GT, base},
// i.e. that vote ∈ {0,1}. One side of the disjunction is proved honestly;
// the other is simulated.
func proveOR(base pairing.GT, vote int, electionID string) (ORProof, error) {
	switch vote {
	case 0:
		return proveORZero(base, electionID)
	case 1:
		return proveOROne(base, electionID)
	default:
		return ORProof{}, tallyerr.ErrProofConstruction
	}
}

func proveORZero(base pairing.GT, electionID string) (ORProof, error) {
	votePart := pairing.GTIdentity() // base^0

	// Simulate side 1.
	c1 := pairing.RandomFr(nil)
	s1 := pairing.RandomFr(nil)
	a1 := base.Pow(s1).Mul(base.Pow(c1))

	// Real side 0.
	r0 := pairing.RandomFr(nil)
	a0 := base.Pow(r0)

	c, err := transcript.Challenge(
		transcript.GT(base), transcript.GT(a0), transcript.GT(a1),
		transcript.GT(votePart), transcript.String(electionID),
	)
	if err != nil {
		return ORProof{}, err
	}

	c0 := c.Sub(c1)
	s0 := r0 // s0 = r0 - c0*0

	return ORProof{
		A0: a0, A1: a1,
		C0: c0, C1: c1,
		S0: s0, S1: s1,
		PairingBase: base, VotePart: votePart,
	}, nil
}

func proveOROne(base pairing.GT, electionID string) (ORProof, error) {
	votePart := base // base^1

	// Simulate side 0.
	c0 := pairing.RandomFr(nil)
	s0 := pairing.RandomFr(nil)
	a0 := base.Pow(s0).Mul(votePart.Pow(c0))

	// Real side 1.
	r1 := pairing.RandomFr(nil)
	a1 := base.Pow(r1)

	c, err := transcript.Challenge(
		transcript.GT(base), transcript.GT(a0), transcript.GT(a1),
		transcript.GT(votePart), transcript.String(electionID),
	)
	if err != nil {
		return ORProof{}, err
	}

	c1 := c.Sub(c0)
	s1 := r1.Sub(c1) // s1 = r1 - c1*1

	return ORProof{
		A0: a0, A1: a1,
		C0: c0, C1: c1,
		S0: s0, S1: s1,
		PairingBase: base, VotePart: votePart,
	}, nil
}

// VerifyOR checks a Chaum–Pedersen OR proof against three equations, V0,
// V1, and VC. All three must hold.
//
// NOTE: V1 reproduces a legacy verifier form,
// "PairingBase^S1 · PairingBase^C1 == A1", rather than the textbook
// Chaum–Pedersen form "PairingBase^S1 · (VotePart/PairingBase)^C1 == A1".
// This form does not obviously bind VotePart to PairingBase; it is
// reproduced verbatim rather than "fixed" so legacy ballots keep verifying.
// See DESIGN.md Open Question 1.
func VerifyOR(p ORProof, electionID string) bool {
	c, err := transcript.Challenge(
		transcript.GT(p.PairingBase), transcript.GT(p.A0), transcript.GT(p.A1),
		transcript.GT(p.VotePart), transcript.String(electionID),
	)
	if err != nil {
		return false
	}

	v0 := p.PairingBase.Pow(p.S0).Mul(p.VotePart.Pow(p.C0)).Equal(p.A0)
	v1 := p.PairingBase.Pow(p.S1).Mul(p.PairingBase.Pow(p.C1)).Equal(p.A1)
	vc := p.C0.Add(p.C1).Equal(c)

	return v0 && v1 && vc
}
