package transcript

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dedis/tallyvote/pairing"
	"github.com/dedis/tallyvote/tallyerr"
)

func TestMain(m *testing.M) {
	pairing.Init()
	m.Run()
}

func TestChallenge_Deterministic(t *testing.T) {
	g := pairing.Generator()
	h := pairing.HashToG2([]byte("Election2025/01"))
	b := pairing.Pair(g, h)

	c1, err := Challenge(GT(b), G1(g), G2(h), String("Election2025/01"))
	require.NoError(t, err)

	c2, err := Challenge(GT(b), G1(g), G2(h), String("Election2025/01"))
	require.NoError(t, err)

	require.True(t, c1.Equal(c2))
}

func TestChallenge_SensitiveToOrder(t *testing.T) {
	g := pairing.Generator()
	h := pairing.HashToG2([]byte("Election2025/01"))
	b := pairing.Pair(g, h)

	c1, err := Challenge(GT(b), G1(g))
	require.NoError(t, err)

	c2, err := Challenge(G1(g), GT(b))
	require.NoError(t, err)

	require.False(t, c1.Equal(c2))
}

func TestChallenge_UnsetItemFails(t *testing.T) {
	_, err := Challenge(Item{})
	require.ErrorIs(t, err, tallyerr.ErrInvalidInput)
}
