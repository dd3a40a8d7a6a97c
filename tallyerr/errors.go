// Package tallyerr defines the sentinel errors surfaced by the voting core.
//
// Callers should match against these with errors.Is; call sites in this
// module return them unwrapped.
package tallyerr

import "golang.org/x/xerrors"

var (
	// ErrCryptoInit names the pairing-library initialization failure. No
	// function in this module returns it: pairing operations called before
	// pairing.Init panic instead.
	ErrCryptoInit = xerrors.New("pairing library not initialized")

	// ErrUnknownVoter is returned when a voter_id is absent from the roster.
	ErrUnknownVoter = xerrors.New("unknown voter")

	// ErrDuplicateVoter is returned on re-registration of a voter_id.
	ErrDuplicateVoter = xerrors.New("voter already registered")

	// ErrRegistrationClosed is returned when Register is called on a
	// roster that has already had a ballot cast against it.
	ErrRegistrationClosed = xerrors.New("voter registration is closed")

	// ErrInvalidVote is returned when a vote is not in {0,1}.
	ErrInvalidVote = xerrors.New("vote must be 0 or 1")

	// ErrAlreadyVoted is returned in OR-proof mode when a voter has
	// already cast a ballot for an election.
	ErrAlreadyVoted = xerrors.New("voter already cast a ballot for this election")

	// ErrTallyFailed is the sentinel returned when discrete-log recovery
	// exhausts max_votes without finding a matching exponent.
	ErrTallyFailed = xerrors.New("tally could not be recovered within max_votes")

	// ErrSerialization is returned on malformed hex or wrong-length bytes
	// during deserialization.
	ErrSerialization = xerrors.New("malformed serialization")

	// ErrInvalidInput is returned when a transcript item has no defined
	// canonical serialization.
	ErrInvalidInput = xerrors.New("invalid transcript input")

	// ErrProofConstruction is returned when an OR proof cannot be built,
	// e.g. because the vote is out of range.
	ErrProofConstruction = xerrors.New("proof construction failed")
)
