package ballot

import (
	"encoding/hex"

	"github.com/dedis/tallyvote/pairing"
	"github.com/dedis/tallyvote/tallyerr"
)

// WireSchnorr and WireOR mirror the persisted proof envelope formats used
// on the wire. They exist only as a documented convenience for the external
// collaborator (CLI/demo driver, time-lock wrapper) that must serialize a
// ballot to hand it off; they are not consulted anywhere in casting or
// verification and can be deleted without touching the core.
type WireSchnorr struct {
	AHex           string `json:"a_hex"`
	SHex           string `json:"s_hex"`
	PairingBaseHex string `json:"pairing_base_hex"`
	VotePartHex    string `json:"vote_part_hex"`
}

type WireOR struct {
	A0Hex          string `json:"a0_hex"`
	A1Hex          string `json:"a1_hex"`
	C0Hex          string `json:"c0_hex"`
	C1Hex          string `json:"c1_hex"`
	S0Hex          string `json:"s0_hex"`
	S1Hex          string `json:"s1_hex"`
	PairingBaseHex string `json:"pairing_base_hex"`
	VotePartHex    string `json:"vote_part_hex"`
}

func hexOf(marshaler interface{ MarshalBinary() ([]byte, error) }) (string, error) {
	b, err := marshaler.MarshalBinary()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// SchnorrHex returns the hex wire encoding of p.
func (p SchnorrProof) SchnorrHex() (WireSchnorr, error) {
	a, err := hexOf(p.A)
	if err != nil {
		return WireSchnorr{}, err
	}
	s, err := hexOf(p.S)
	if err != nil {
		return WireSchnorr{}, err
	}
	base, err := hexOf(p.PairingBase)
	if err != nil {
		return WireSchnorr{}, err
	}
	vp, err := hexOf(p.VotePart)
	if err != nil {
		return WireSchnorr{}, err
	}
	return WireSchnorr{AHex: a, SHex: s, PairingBaseHex: base, VotePartHex: vp}, nil
}

// SchnorrFromHex reconstructs a SchnorrProof from its hex wire encoding.
func SchnorrFromHex(w WireSchnorr) (SchnorrProof, error) {
	a, err := decodeGT(w.AHex)
	if err != nil {
		return SchnorrProof{}, err
	}
	s, err := decodeFr(w.SHex)
	if err != nil {
		return SchnorrProof{}, err
	}
	base, err := decodeGT(w.PairingBaseHex)
	if err != nil {
		return SchnorrProof{}, err
	}
	vp, err := decodeGT(w.VotePartHex)
	if err != nil {
		return SchnorrProof{}, err
	}
	return SchnorrProof{A: a, S: s, PairingBase: base, VotePart: vp}, nil
}

// ORHex returns the hex wire encoding of p.
func (p ORProof) ORHex() (WireOR, error) {
	var out WireOR
	var err error

	if out.A0Hex, err = hexOf(p.A0); err != nil {
		return WireOR{}, err
	}
	if out.A1Hex, err = hexOf(p.A1); err != nil {
		return WireOR{}, err
	}
	if out.C0Hex, err = hexOf(p.C0); err != nil {
		return WireOR{}, err
	}
	if out.C1Hex, err = hexOf(p.C1); err != nil {
		return WireOR{}, err
	}
	if out.S0Hex, err = hexOf(p.S0); err != nil {
		return WireOR{}, err
	}
	if out.S1Hex, err = hexOf(p.S1); err != nil {
		return WireOR{}, err
	}
	if out.PairingBaseHex, err = hexOf(p.PairingBase); err != nil {
		return WireOR{}, err
	}
	if out.VotePartHex, err = hexOf(p.VotePart); err != nil {
		return WireOR{}, err
	}

	return out, nil
}

// ORFromHex reconstructs an ORProof from its hex wire encoding.
func ORFromHex(w WireOR) (ORProof, error) {
	a0, err := decodeGT(w.A0Hex)
	if err != nil {
		return ORProof{}, err
	}
	a1, err := decodeGT(w.A1Hex)
	if err != nil {
		return ORProof{}, err
	}
	c0, err := decodeFr(w.C0Hex)
	if err != nil {
		return ORProof{}, err
	}
	c1, err := decodeFr(w.C1Hex)
	if err != nil {
		return ORProof{}, err
	}
	s0, err := decodeFr(w.S0Hex)
	if err != nil {
		return ORProof{}, err
	}
	s1, err := decodeFr(w.S1Hex)
	if err != nil {
		return ORProof{}, err
	}
	base, err := decodeGT(w.PairingBaseHex)
	if err != nil {
		return ORProof{}, err
	}
	vp, err := decodeGT(w.VotePartHex)
	if err != nil {
		return ORProof{}, err
	}
	return ORProof{A0: a0, A1: a1, C0: c0, C1: c1, S0: s0, S1: s1, PairingBase: base, VotePart: vp}, nil
}

func decodeGT(s string) (pairing.GT, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return pairing.GT{}, tallyerr.ErrSerialization
	}
	return pairing.GTFromBytes(b)
}

func decodeFr(s string) (pairing.Fr, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return pairing.Fr{}, tallyerr.ErrSerialization
	}
	return pairing.FrFromBytes(b)
}
