// Package ballot implements ballot casting and proof verification for a
// self-tallying voting construction: a ballot is a GT element that blinds a
// voter's secret key against its cancelling key, and is accompanied by a
// Fiat–Shamir NIZK proof that the encoded vote is well-formed.
package ballot

import (
	"sync"

	"github.com/dedis/tallyvote/pairing"
)

// Mode selects which NIZK proof variant Cast produces.
type Mode int

const (
	// SchnorrMode proves knowledge of v such that vote_part = B^v, without
	// constraining v to {0,1}. An accepted limitation of this mode
	// (DESIGN.md Open Question 2), mitigated by using ORMode instead.
	SchnorrMode Mode = iota
	// ORMode proves v ∈ {0,1} via a Chaum–Pedersen OR proof, and enables
	// cast-log enforcement of one-ballot-per-voter-per-election.
	ORMode
)

// SchnorrProof proves knowledge of v such that VotePart = PairingBase^v,
// for the transcript's PairingBase.
type SchnorrProof struct {
	A           pairing.GT
	S           pairing.Fr
	PairingBase pairing.GT
	VotePart    pairing.GT
}

// ORProof is a Chaum–Pedersen OR proof that VotePart ∈ {1_GT, PairingBase},
// i.e. that the encoded vote is 0 or 1.
type ORProof struct {
	A0, A1      pairing.GT
	C0, C1      pairing.Fr
	S0, S1      pairing.Fr
	PairingBase pairing.GT
	VotePart    pairing.GT
}

// Envelope is a cast ballot together with its proof of well-formedness.
// Exactly one of Schnorr or OR is set, per the Mode the Engine that
// produced it was configured with.
type Envelope struct {
	ElectionID string
	Ballot     pairing.GT
	Mode       Mode
	Schnorr    *SchnorrProof
	OR         *ORProof
}

// Store holds ballot envelopes, and optionally a cast log enforcing
// one-ballot-per-voter-per-election.
type Store struct {
	mu       sync.RWMutex
	byID     map[string][]Envelope
	castLog  map[string]map[string]struct{}
	logCasts bool
}

// NewStore returns an empty ballot store. If enforceCastLog is true, Cast
// enforces the one-ballot-per-voter-per-election rule; only the OR-proof
// variant enables this (it depends on Chaum–Pedersen's binding property),
// so callers building a Schnorr-mode Engine should pass false.
func NewStore(enforceCastLog bool) *Store {
	return &Store{
		byID:     make(map[string][]Envelope),
		castLog:  make(map[string]map[string]struct{}),
		logCasts: enforceCastLog,
	}
}

// Get returns the envelopes cast for electionID, in insertion order.
func (s *Store) Get(electionID string) []Envelope {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Envelope, len(s.byID[electionID]))
	copy(out, s.byID[electionID])
	return out
}

func (s *Store) hasVoted(electionID, voterID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	voters, ok := s.castLog[electionID]
	if !ok {
		return false
	}
	_, voted := voters[voterID]
	return voted
}

// Add inserts an envelope on behalf of voterID. Engine.Cast uses this to
// record ballots it produces itself; it is also the entry point for
// envelopes obtained from elsewhere (e.g. replayed from persistence or
// received over a transport this package does not implement, but the store
// still needs a way to accept an envelope it did not itself construct).
func (s *Store) Add(voterID string, env Envelope) {
	s.append(voterID, env)
}

func (s *Store) append(voterID string, env Envelope) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[env.ElectionID] = append(s.byID[env.ElectionID], env)

	if s.logCasts {
		voters, ok := s.castLog[env.ElectionID]
		if !ok {
			voters = make(map[string]struct{})
			s.castLog[env.ElectionID] = voters
		}
		voters[voterID] = struct{}{}
	}
}
