// Package tally implements the verify/aggregate/recover pipeline: filter
// ballots by election id, verify each proof, fold the valid ones into a
// product in GT, and recover the integer sum by small-range discrete log.
package tally

import (
	"github.com/dedis/tallyvote/ballot"
	"github.com/dedis/tallyvote/internal/dlog"
	"github.com/dedis/tallyvote/pairing"
	"github.com/dedis/tallyvote/tallyerr"
)

// Result is the aggregated, still-encrypted tally for one election: the
// product of all valid ballots, and the vote base it must be compared
// against during recovery.
type Result struct {
	R    pairing.GT
	Base pairing.GT
}

// Engine verifies and aggregates ballots drawn from a shared store.
type Engine struct {
	store *ballot.Store
}

// NewEngine returns a tally Engine reading from store.
func NewEngine(store *ballot.Store) *Engine {
	return &Engine{store: store}
}

// EncryptTally verifies every envelope cast for electionID, discards (with
// a log entry) any whose proof does not verify, and folds the rest into a
// single GT product. It never fails: an election with no ballots yields
// R = 1_GT. Modeled as a fold over an immutable sequence rather than an
// in-place R ← R · ballot mutation.
//
// The cancelling-key construction only telescopes to B^{Σv} when every
// roster member's ballot is present in the product: each term carries a
// e(Y_j,H)^{sk_j} blinding factor, and Σ_j sk_j·Y_j = 0 only holds over the
// complete set. Dropping even one valid-but-unverifiable ballot (see
// DESIGN.md's "Flagged limitation" note) leaves a residual blinding
// factor in R that DecryptTally cannot resolve; the caller sees
// ErrTallyFailed rather than a tally of the surviving subset.
func (e *Engine) EncryptTally(electionID string) Result {
	base := pairing.Pair(pairing.Generator(), pairing.HashToG2([]byte(electionID)))

	r := pairing.GTIdentity()
	for _, env := range e.store.Get(electionID) {
		if !env.Verify() {
			dlog.Logger.Warn().Str("election", electionID).
				Msg("skipping ballot with invalid proof")
			continue
		}
		r = r.Mul(env.Ballot)
	}

	return Result{R: r, Base: base}
}

// DecryptTally recovers the integer sum Σv_j from res by brute-force
// discrete log: it returns the smallest i in [0, maxVotes] such that
// res.Base^i == res.R. If no such i exists, it returns ErrTallyFailed; this
// is reported to the caller and is not retried automatically.
func (e *Engine) DecryptTally(res Result, maxVotes int) (int, error) {
	acc := pairing.GTIdentity()
	if acc.Equal(res.R) {
		return 0, nil
	}

	for i := 1; i <= maxVotes; i++ {
		acc = acc.Mul(res.Base)
		if acc.Equal(res.R) {
			return i, nil
		}
	}

	return 0, tallyerr.ErrTallyFailed
}
