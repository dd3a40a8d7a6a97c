package ballot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dedis/tallyvote/pairing"
	"github.com/dedis/tallyvote/roster"
	"github.com/dedis/tallyvote/tallyerr"
)

func TestMain(m *testing.M) {
	pairing.Init()
	m.Run()
}

func newRoster(t *testing.T, voters ...string) *roster.Roster {
	t.Helper()
	r := roster.New()
	for _, v := range voters {
		_, err := r.Register(v)
		require.NoError(t, err)
	}
	return r
}

func TestCast_InvalidVoteRejected(t *testing.T) {
	r := newRoster(t, "Tom")
	store := NewStore(false)
	e := NewEngine(r, SchnorrMode, store)

	_, err := e.Cast("Tom", 2, "election-x")
	require.ErrorIs(t, err, tallyerr.ErrInvalidVote)
	require.Empty(t, store.Get("election-x"))
}

func TestCast_UnknownVoter(t *testing.T) {
	r := newRoster(t, "Tom")
	store := NewStore(false)
	e := NewEngine(r, SchnorrMode, store)

	_, err := e.Cast("Ghost", 1, "election-x")
	require.ErrorIs(t, err, tallyerr.ErrUnknownVoter)
}

func TestCast_SchnorrProofCompleteness(t *testing.T) {
	r := newRoster(t, "Tom", "John", "Sarah")
	store := NewStore(false)
	e := NewEngine(r, SchnorrMode, store)

	for _, v := range []int{0, 1} {
		env, err := e.Cast("Tom", v, "election-x")
		require.NoError(t, err)
		require.True(t, env.Verify())
	}
}

func TestCast_ORProofCompleteness(t *testing.T) {
	for _, v := range []int{0, 1} {
		r := newRoster(t, "Tom", "John", "Sarah")
		store := NewStore(true)
		e := NewEngine(r, ORMode, store)

		env, err := e.Cast("Tom", v, "election-x")
		require.NoError(t, err)
		require.True(t, env.Verify())
		require.True(t, VerifyOR(*env.OR, "election-x"))
	}
}

func TestCast_ORMode_AlreadyVoted(t *testing.T) {
	r := newRoster(t, "Tom", "John")
	store := NewStore(true)
	e := NewEngine(r, ORMode, store)

	_, err := e.Cast("Tom", 1, "election-x")
	require.NoError(t, err)

	_, err = e.Cast("Tom", 0, "election-x")
	require.ErrorIs(t, err, tallyerr.ErrAlreadyVoted)
}

func TestCast_SchnorrMode_NoAlreadyVotedEnforcement(t *testing.T) {
	r := newRoster(t, "Tom", "John")
	store := NewStore(false)
	e := NewEngine(r, SchnorrMode, store)

	_, err := e.Cast("Tom", 1, "election-x")
	require.NoError(t, err)

	_, err = e.Cast("Tom", 0, "election-x")
	require.NoError(t, err)
}

func TestCast_ClosesRegistration(t *testing.T) {
	r := newRoster(t, "Tom")
	store := NewStore(false)
	e := NewEngine(r, SchnorrMode, store)

	_, err := e.Cast("Tom", 1, "election-x")
	require.NoError(t, err)

	_, err = r.Register("Latecomer")
	require.ErrorIs(t, err, tallyerr.ErrRegistrationClosed)
}

func TestVerify_TamperedProofRejected(t *testing.T) {
	r := newRoster(t, "Tom", "John", "Sarah")
	store := NewStore(false)
	e := NewEngine(r, SchnorrMode, store)

	env, err := e.Cast("Tom", 1, "election-x")
	require.NoError(t, err)

	tampered := *env.Schnorr
	tampered.S = tampered.S.Add(pairing.FrFromUint64(1))
	env.Schnorr = &tampered

	require.False(t, env.Verify())
}

func TestVerify_MalformedEnvelopeRejected(t *testing.T) {
	env := Envelope{ElectionID: "e", Mode: SchnorrMode}
	require.False(t, env.Verify())
}

func TestWire_SchnorrRoundTrip(t *testing.T) {
	r := newRoster(t, "Tom")
	store := NewStore(false)
	e := NewEngine(r, SchnorrMode, store)

	env, err := e.Cast("Tom", 1, "election-x")
	require.NoError(t, err)

	w, err := env.Schnorr.SchnorrHex()
	require.NoError(t, err)

	back, err := SchnorrFromHex(w)
	require.NoError(t, err)
	require.True(t, VerifySchnorr(back))
}

func TestWire_ORRoundTrip(t *testing.T) {
	r := newRoster(t, "Tom")
	store := NewStore(true)
	e := NewEngine(r, ORMode, store)

	env, err := e.Cast("Tom", 0, "election-x")
	require.NoError(t, err)

	w, err := env.OR.ORHex()
	require.NoError(t, err)

	back, err := ORFromHex(w)
	require.NoError(t, err)
	require.True(t, VerifyOR(back, "election-x"))
}
