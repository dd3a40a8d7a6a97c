package tally

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dedis/tallyvote/ballot"
	"github.com/dedis/tallyvote/pairing"
	"github.com/dedis/tallyvote/roster"
	"github.com/dedis/tallyvote/tallyerr"
)

func TestMain(m *testing.M) {
	pairing.Init()
	m.Run()
}

func setup(t *testing.T, voters ...string) (*roster.Roster, *ballot.Store) {
	t.Helper()
	r := roster.New()
	for _, v := range voters {
		_, err := r.Register(v)
		require.NoError(t, err)
	}
	return r, ballot.NewStore(false)
}

// TestS1_ThreeVotersSumTwo: three voters cast 0, 1, 1; the tally recovers 2.
func TestS1_ThreeVotersSumTwo(t *testing.T) {
	r, store := setup(t, "Tom", "John", "Sarah")
	e := ballot.NewEngine(r, ballot.SchnorrMode, store)

	election := "Election2025/01"
	votes := map[string]int{"Tom": 0, "John": 1, "Sarah": 1}
	for _, v := range []string{"Tom", "John", "Sarah"} {
		_, err := e.Cast(v, votes[v], election)
		require.NoError(t, err)
	}

	te := NewEngine(store)
	res := te.EncryptTally(election)
	got, err := te.DecryptTally(res, 3)
	require.NoError(t, err)
	require.Equal(t, 2, got)
}

// TestS2_ThreeVotersSumOne: three voters cast 0, 1, 0; the tally recovers 1.
func TestS2_ThreeVotersSumOne(t *testing.T) {
	r, store := setup(t, "Tom", "John", "Sarah")
	e := ballot.NewEngine(r, ballot.SchnorrMode, store)

	election := "Election2025/02"
	votes := map[string]int{"Tom": 0, "John": 1, "Sarah": 0}
	for _, v := range []string{"Tom", "John", "Sarah"} {
		_, err := e.Cast(v, votes[v], election)
		require.NoError(t, err)
	}

	te := NewEngine(store)
	res := te.EncryptTally(election)
	got, err := te.DecryptTally(res, 3)
	require.NoError(t, err)
	require.Equal(t, 1, got)
}

// TestS3_AllAbstain: no ballots cast; the tally recovers 0 and R stays 1_GT.
func TestS3_AllAbstain(t *testing.T) {
	_, store := setup(t, "Tom", "John", "Sarah")

	election := "Election2025/03"
	te := NewEngine(store)
	res := te.EncryptTally(election)
	require.True(t, res.R.Equal(pairing.GTIdentity()))

	got, err := te.DecryptTally(res, 3)
	require.NoError(t, err)
	require.Equal(t, 0, got)
}

// TestS4_ProofTamperSkipped: a tampered proof is skipped by EncryptTally
// rather than counted, but the self-tallying construction only collapses to
// B^{Σv} when every voter's cancelling-key term is present in the product;
// dropping one blinded term (e(Y_Tom,H)^{sk_Tom} here) leaves a residual
// factor in R that recovery cannot explain as any small power of Base. The
// invalid ballot is correctly excluded, but the remaining product is no
// longer decodable; DecryptTally reports ErrTallyFailed rather than a
// silently wrong count.
func TestS4_ProofTamperSkipped(t *testing.T) {
	r, store := setup(t, "Tom", "John", "Sarah")
	e := ballot.NewEngine(r, ballot.SchnorrMode, store)

	election := "Election2025/04"
	votes := map[string]int{"Tom": 0, "John": 1, "Sarah": 1}
	for _, v := range []string{"Tom", "John", "Sarah"} {
		_, err := e.Cast(v, votes[v], election)
		require.NoError(t, err)
	}

	// Tamper with one ballot's proof: mutate its s field by adding 1 in Fr,
	// then replay the (mostly) tampered set into a fresh store, since
	// Envelope values are immutable once cast.
	envs := store.Get(election)
	tampered := *envs[0].Schnorr
	tampered.S = tampered.S.Add(pairing.FrFromUint64(1))
	envs[0].Schnorr = &tampered

	castOrder := []string{"Tom", "John", "Sarah"}
	replayed := ballot.NewStore(false)
	for i, env := range envs {
		replayed.Add(castOrder[i], env)
	}

	te := NewEngine(replayed)
	res := te.EncryptTally(election)
	require.False(t, replayed.Get(election)[0].Verify())

	_, err := te.DecryptTally(res, 3)
	require.ErrorIs(t, err, tallyerr.ErrTallyFailed)
}

// TestS5_WrongMaxVotesFails: recovery fails when maxVotes underestimates the true sum.
func TestS5_WrongMaxVotesFails(t *testing.T) {
	r, store := setup(t, "Tom", "John", "Sarah")
	e := ballot.NewEngine(r, ballot.SchnorrMode, store)

	election := "Election2025/05"
	votes := map[string]int{"Tom": 0, "John": 1, "Sarah": 1}
	for _, v := range []string{"Tom", "John", "Sarah"} {
		_, err := e.Cast(v, votes[v], election)
		require.NoError(t, err)
	}

	te := NewEngine(store)
	res := te.EncryptTally(election)
	_, err := te.DecryptTally(res, 1)
	require.ErrorIs(t, err, tallyerr.ErrTallyFailed)
}

// TestTallyIdempotence: calling EncryptTally twice yields identical results.
func TestTallyIdempotence(t *testing.T) {
	r, store := setup(t, "Tom", "John")
	e := ballot.NewEngine(r, ballot.SchnorrMode, store)

	election := "Election2025/06"
	_, err := e.Cast("Tom", 1, election)
	require.NoError(t, err)
	_, err = e.Cast("John", 1, election)
	require.NoError(t, err)

	te := NewEngine(store)
	res1 := te.EncryptTally(election)
	res2 := te.EncryptTally(election)
	require.True(t, res1.R.Equal(res2.R))
	require.True(t, res1.Base.Equal(res2.Base))
}
