// Package roster holds the ordered set of registered voters and derives the
// per-voter cancelling keys the self-tallying construction relies on.
package roster

import (
	"encoding/hex"
	"sync"

	"github.com/dedis/tallyvote/internal/dlog"
	"github.com/dedis/tallyvote/pairing"
	"github.com/dedis/tallyvote/tallyerr"
)

// Record is one voter's roster entry: its public identifier, secret key,
// and public key g^sk.
type Record struct {
	VoterID string
	SK      pairing.Fr
	PK      pairing.G1
}

// Roster is an append-only, ordered list of voter records. Order is
// registration order and is part of the public protocol state: the
// cancelling key of every voter depends on the full, final ordering.
//
// - implements a self-tallying voting scheme's voter registry
type Roster struct {
	mu      sync.RWMutex
	records []Record
	index   map[string]int
	closed  bool
}

// New returns an empty roster.
func New() *Roster {
	return &Roster{
		index: make(map[string]int),
	}
}

// Register appends a new voter with a freshly sampled key pair and returns
// the hex encoding of its public key. It fails with ErrDuplicateVoter if
// voterID is already registered, and ErrRegistrationClosed once a ballot
// has been cast anywhere against this roster (see Close).
func (r *Roster) Register(voterID string) (pkHex string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return "", tallyerr.ErrRegistrationClosed
	}

	if _, ok := r.index[voterID]; ok {
		return "", tallyerr.ErrDuplicateVoter
	}

	sk := pairing.RandomFr(nil)
	pk := pairing.Generator().Mul(sk)

	r.index[voterID] = len(r.records)
	r.records = append(r.records, Record{VoterID: voterID, SK: sk, PK: pk})

	buf, err := pk.MarshalBinary()
	if err != nil {
		return "", err
	}

	dlog.Logger.Debug().Str("voter", voterID).Int("index", r.index[voterID]).
		Msg("registered voter")

	return hex.EncodeToString(buf), nil
}

// Close marks the roster as closed to further registration. It is
// idempotent. No ballot may be cast before registration is closed, since
// every Y_j depends on the final roster; the ballot engine calls Close on
// the first Cast for any election sharing this roster.
func (r *Roster) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
}

// Get returns the record for voterID.
func (r *Roster) Get(voterID string) (Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[voterID]
	if !ok {
		return Record{}, tallyerr.ErrUnknownVoter
	}
	return r.records[i], nil
}

// IndexOf returns the registration-order index of voterID.
func (r *Roster) IndexOf(voterID string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[voterID]
	return i, ok
}

// Size returns the number of registered voters.
func (r *Roster) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// Records returns a copy of the roster in registration order.
func (r *Roster) Records() []Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// CancellingKey returns Y_j for the voter at index j = IndexOf(voterID):
//
//	Y_j = Σ_{k<j} pk_k − Σ_{k>j} pk_k
//
// Invariant: Σ_j sk_j·Y_j = identity in G1, for any roster of size n ≥ 1;
// this is the sum that cancels the ballots' blinding factors in the tally.
// The unweighted sum Σ_j Y_j is not the identity for n ≥ 2.
func (r *Roster) CancellingKey(voterID string) (pairing.G1, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	j, ok := r.index[voterID]
	if !ok {
		return pairing.G1{}, tallyerr.ErrUnknownVoter
	}

	y := pairing.G1Identity()
	for k, rec := range r.records {
		switch {
		case k < j:
			y = y.Add(rec.PK)
		case k > j:
			y = y.Sub(rec.PK)
		}
	}
	return y, nil
}

