package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Ah", "Ah", true},
		{"th", "Th", true},
		{" Kd ", "Kd", true},
		{"AH", "Ah", true},
		{"2c", "2c", true},
		{"Xh", "", false},
		{"A", "", false}, // lone rank: last char 'a' is not a suit
		{"", "", false},
		{"  ", "", false},
		{"1h", "", false}, // "10h" style ranks are not valid tokens
	}
	for _, tc := range tests {
		c, ok := ParseCard(tc.in)
		require.Equal(t, tc.ok, ok, "token %q", tc.in)
		if ok {
			require.Equal(t, tc.want, c.String(), "token %q", tc.in)
		}
	}
}

func TestParseCardIdempotent(t *testing.T) {
	t.Parallel()
	for _, tok := range []string{"Ah", "th", " Kd ", "2C"} {
		first, ok := ParseCard(tok)
		require.True(t, ok)
		second, ok := ParseCard(first.String())
		require.True(t, ok)
		require.Equal(t, first, second)
	}
}

func TestParseCardsFiltersAndPreservesOrder(t *testing.T) {
	t.Parallel()
	got := ParseCards([]string{"Qs", "??", "Jd", "", "2c"})
	require.Equal(t, []Card{{'Q', 's'}, {'J', 'd'}, {'2', 'c'}}, got)
}

func TestCardJSONRoundTrip(t *testing.T) {
	t.Parallel()
	c := Card{Rank: 'A', Suit: 'h'}
	b, err := c.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `"Ah"`, string(b))

	var back Card
	require.NoError(t, back.UnmarshalJSON(b))
	require.Equal(t, c, back)
}
