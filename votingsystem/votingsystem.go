// Package votingsystem glues the pairing, roster, ballot, and tally
// packages into a single top-level VotingSystem that registers voters,
// casts votes, and produces/decrypts election tallies.
package votingsystem

import (
	"sync"
	"time"

	"github.com/dedis/tallyvote/ballot"
	"github.com/dedis/tallyvote/pairing"
	"github.com/dedis/tallyvote/roster"
	"github.com/dedis/tallyvote/tally"
)

// Config configures a VotingSystem.
type Config struct {
	// TlockDelays is an opaque pass-through to an external time-lock
	// collaborator: the core only records it, keyed by election id, and
	// never reads it itself.
	TlockDelays map[string]time.Duration

	// ProofMode selects which NIZK proof variant Cast uses.
	ProofMode ballot.Mode
}

// VotingSystem is the top-level entry point of the voting core. A single
// instance shares one roster (and therefore one set of cancelling keys)
// across every election it tallies.
type VotingSystem struct {
	roster *roster.Roster
	store  *ballot.Store
	engine *ballot.Engine
	mode   ballot.Mode

	mu          sync.RWMutex
	tlockDelays map[string]time.Duration
}

// New constructs a VotingSystem from cfg. It does not call pairing.Init;
// callers must do that once, process-wide, before using any VotingSystem
// (see InitCrypto).
func New(cfg Config) *VotingSystem {
	r := roster.New()
	store := ballot.NewStore(cfg.ProofMode == ballot.ORMode)

	delays := make(map[string]time.Duration, len(cfg.TlockDelays))
	for k, v := range cfg.TlockDelays {
		delays[k] = v
	}

	return &VotingSystem{
		roster:      r,
		store:       store,
		engine:      ballot.NewEngine(r, cfg.ProofMode, store),
		mode:        cfg.ProofMode,
		tlockDelays: delays,
	}
}

// RegisterVoter registers a new voter and returns its public key, hex
// encoded. Fails with tallyerr.ErrDuplicateVoter or
// tallyerr.ErrRegistrationClosed.
func (vs *VotingSystem) RegisterVoter(voterID string) (string, error) {
	return vs.roster.Register(voterID)
}

// CastVote casts vote (0 or 1) for voterID in electionID. Fails with
// tallyerr.ErrUnknownVoter, tallyerr.ErrInvalidVote, or (in OR-proof mode)
// tallyerr.ErrAlreadyVoted.
func (vs *VotingSystem) CastVote(voterID string, vote int, electionID string) error {
	_, err := vs.engine.Cast(voterID, vote, electionID)
	return err
}

// EncryptTally verifies and aggregates every ballot cast for electionID.
// It never fails: an election with no ballots yields R = 1_GT.
func (vs *VotingSystem) EncryptTally(electionID string) (tally.Result, error) {
	te := tally.NewEngine(vs.store)
	return te.EncryptTally(electionID), nil
}

// DecryptTally recovers the integer sum encoded in res, searching
// exponents 0..maxVotes. Returns tallyerr.ErrTallyFailed if the search is
// exhausted without a match.
func (vs *VotingSystem) DecryptTally(electionID string, res tally.Result, maxVotes int) (int, error) {
	te := tally.NewEngine(vs.store)
	return te.DecryptTally(res, maxVotes)
}

// TlockDelay returns the configured time-lock delay for electionID, if
// any. This is the only reader of Config.TlockDelays; the core itself
// never consults it, leaving the real delay/decryption behavior to the
// external time-lock collaborator.
func (vs *VotingSystem) TlockDelay(electionID string) (time.Duration, bool) {
	vs.mu.RLock()
	defer vs.mu.RUnlock()
	d, ok := vs.tlockDelays[electionID]
	return d, ok
}

// Roster exposes the underlying roster for read-only inspection (e.g. to
// report each voter's cancelling key to a caller performing offline
// verification that the secret-key-weighted cancelling keys sum to identity).
func (vs *VotingSystem) Roster() *roster.Roster {
	return vs.roster
}

// InitCrypto performs the process-wide, one-shot pairing library setup
// required before constructing or using any VotingSystem.
func InitCrypto() {
	pairing.Init()
}
