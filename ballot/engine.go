package ballot

import (
	"github.com/dedis/tallyvote/internal/dlog"
	"github.com/dedis/tallyvote/pairing"
	"github.com/dedis/tallyvote/roster"
	"github.com/dedis/tallyvote/tallyerr"
)

// Engine casts ballots on behalf of a fixed roster, in a fixed proof mode,
// against a shared Store.
type Engine struct {
	roster *roster.Roster
	mode   Mode
	store  *Store
}

// NewEngine returns an Engine that casts ballots for the voters in r, using
// the given proof mode, appending to store.
func NewEngine(r *roster.Roster, mode Mode, store *Store) *Engine {
	return &Engine{roster: r, mode: mode, store: store}
}

// Cast casts vote (0 or 1) on behalf of voterID for electionID, and appends
// the resulting envelope to the engine's store. The first call for any
// election permanently closes the underlying roster to further
// registration: no ballot may be cast while registration is still open,
// since every cancelling key depends on the final roster, and closing
// lazily on first cast rather than requiring an explicit separate call
// keeps this invariant impossible to forget.
func (e *Engine) Cast(voterID string, vote int, electionID string) (Envelope, error) {
	if vote != 0 && vote != 1 {
		return Envelope{}, tallyerr.ErrInvalidVote
	}

	rec, err := e.roster.Get(voterID)
	if err != nil {
		return Envelope{}, err
	}

	if e.mode == ORMode && e.store.hasVoted(electionID, voterID) {
		return Envelope{}, tallyerr.ErrAlreadyVoted
	}

	e.roster.Close()

	y, err := e.roster.CancellingKey(voterID)
	if err != nil {
		return Envelope{}, err
	}

	h := pairing.HashToG2([]byte(electionID))
	p1 := pairing.Pair(y, h)
	base := pairing.Pair(pairing.Generator(), h)

	voteFr := pairing.FrFromUint64(uint64(vote))
	b := p1.Pow(rec.SK).Mul(base.Pow(voteFr))

	var env Envelope
	switch e.mode {
	case SchnorrMode:
		proof, err := proveSchnorr(base, vote)
		if err != nil {
			return Envelope{}, err
		}
		env = Envelope{ElectionID: electionID, Ballot: b, Mode: SchnorrMode, Schnorr: &proof}
	case ORMode:
		proof, err := proveOR(base, vote, electionID)
		if err != nil {
			return Envelope{}, err
		}
		env = Envelope{ElectionID: electionID, Ballot: b, Mode: ORMode, OR: &proof}
	default:
		return Envelope{}, tallyerr.ErrProofConstruction
	}

	e.store.Add(voterID, env)

	dlog.Logger.Debug().Str("voter", voterID).Str("election", electionID).
		Msg("cast ballot")

	return env, nil
}
