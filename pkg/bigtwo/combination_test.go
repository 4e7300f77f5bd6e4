package bigtwo

import (
	"math/rand"
	"testing"

	"bigtwo-server/pkg/deck"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func combo(t *testing.T, s string) *Combination {
	t.Helper()
	c, err := Classify(deck.CardsFromString(s))
	require.NoError(t, err)
	return c
}

func TestClassify(t *testing.T) {
	tests := []struct {
		cards string
		kind  Kind
		top   string
	}{
		{"3d", KindSingle, "3d"},
		{"15s", KindSingle, "15s"},
		{"7c,7h", KindPair, "7h"},
		{"9d,9c,9s", KindTriple, "9s"},
		{"3d,4c,5h,6s,7d", KindStraight, "7d"},
		{"11c,12d,13h,14s,15d", KindStraight, "15d"},
		{"3h,6h,9h,11h,14h", KindFlush, "14h"},
		{"8d,8c,8h,4c,4s", KindFullHouse, "8h"},
		{"10d,10c,10h,10s,3d", KindFourOfAKind, "10s"},
		{"5s,6s,7s,8s,9s", KindStraightFlush, "9s"},
	}

	for _, test := range tests {
		t.Run(test.cards, func(t *testing.T) {
			c, err := Classify(deck.CardsFromString(test.cards))
			require.NoError(t, err)
			assert.Equal(t, test.kind, c.Kind)
			assert.Equal(t, len(deck.CardsFromString(test.cards)), c.Size())
			switch test.kind {
			case KindFullHouse:
				assert.Equal(t, 8, c.keyRank)
			case KindFourOfAKind:
				assert.Equal(t, 10, c.keyRank)
			default:
				assert.True(t, c.Top().Equal(deck.CardFromString(test.top)))
			}
		})
	}
}

func TestClassify_invalid(t *testing.T) {
	invalid := []string{
		"",
		"3d,4d",
		"3d,3c,4d",
		"3d,3c,3h,3s",
		"3d,4c,5h,6s",
		"3d,4c,5h,6s,8d",
		"3d,3c,4h,4s,5d",
		"3d,4c,5h,6s,7d,8c",
	}

	for _, cards := range invalid {
		t.Run(cards, func(t *testing.T) {
			c, err := Classify(deck.CardsFromString(cards))
			assert.Equal(t, ErrInvalidCombination, err)
			assert.Nil(t, c)
		})
	}
}

func TestClassify_orderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	hands := []string{
		"8d,8c,8h,4c,4s",
		"3d,4c,5h,6s,7d",
		"5s,6s,7s,8s,9s",
		"10d,10c,10h,10s,3d",
	}

	for _, s := range hands {
		cards := deck.CardsFromString(s)
		want, err := Classify(cards)
		require.NoError(t, err)

		for i := 0; i < 10; i++ {
			rng.Shuffle(len(cards), func(i, j int) {
				cards[i], cards[j] = cards[j], cards[i]
			})

			got, err := Classify(cards)
			require.NoError(t, err)
			assert.Equal(t, want.Kind, got.Kind)
			assert.True(t, got.Top().Equal(want.Top()))
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want Ordering
	}{
		{"4d", "3s", Beats},
		{"3s", "4d", Loses},
		{"7h", "7c", Beats},
		{"7c,7h", "7d,7s", Loses}, // pair ties break on the top card's suit
		{"8d,8c", "7h,7s", Beats},
		{"9d,9c,9h", "8c,8h,8s", Beats},
		{"3c,4d,5h,6s,7h", "3d,4c,5d,6d,7c", Beats}, // 7h beats 7c on suit
		{"3h,6h,9h,11h,14h", "11c,12d,13h,14s,15d", Beats},   // flush beats straight
		{"8d,8c,8h,4c,4s", "3h,6h,9h,11h,15h", Beats},        // full house beats flush
		{"10d,10c,10h,10s,3d", "15d,15c,15h,4c,4s", Beats},   // quads beat a deuce full house
		{"5s,6s,7s,8s,9s", "15d,15c,15h,15s,3d", Beats},      // straight flush beats quads
		{"9d,9c,9h,3c,3s", "8d,8c,8h,15c,15s", Beats},        // full houses compare by triple rank
		{"3s", "7c,7h", Incomparable},
		{"7c,7h", "9d,9c,9h", Incomparable},
		{"9d,9c,9h", "3d,4c,5h,6s,7d", Incomparable},
	}

	for _, test := range tests {
		t.Run(test.a+" vs "+test.b, func(t *testing.T) {
			assert.Equal(t, test.want, Compare(combo(t, test.a), combo(t, test.b)))
		})
	}
}

// compare must be a strict total order within a kind: walk a beating chain and
// check transitivity pairwise
func TestCompare_transitive(t *testing.T) {
	chain := []string{
		"3d,4c,5h,6s,7d",
		"4d,5c,6h,7s,8d",
		"3h,6h,9h,11h,14h",
		"8d,8c,8h,4c,4s",
		"10d,10c,10h,10s,3d",
		"5s,6s,7s,8s,9s",
	}

	for i := 0; i < len(chain); i++ {
		for j := i + 1; j < len(chain); j++ {
			a, b := combo(t, chain[i]), combo(t, chain[j])
			assert.Equal(t, Beats, Compare(b, a), "%s should beat %s", chain[j], chain[i])
			assert.Equal(t, Loses, Compare(a, b))
		}
	}
}
