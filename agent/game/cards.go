package game

import "strings"

// Card is a single playing card in compact two-character form, e.g. "Ah".
// Equality is value equality on (Rank, Suit).
type Card struct {
	Rank byte // '2'..'9', 'T', 'J', 'Q', 'K', 'A'
	Suit byte // 'h', 'd', 's', 'c'
}

func (c Card) String() string {
	return string([]byte{c.Rank, c.Suit})
}

// MarshalJSON serializes a card as its two-character token.
func (c Card) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

func (c *Card) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if parsed, ok := ParseCard(s); ok {
		*c = parsed
	}
	return nil
}

func validRank(b byte) bool {
	switch b {
	case 'A', 'K', 'Q', 'J', 'T':
		return true
	}
	return b >= '2' && b <= '9'
}

func validSuit(b byte) bool {
	return b == 'h' || b == 'd' || b == 's' || b == 'c'
}

func upperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

// ParseCard normalizes a card-like token: whitespace is stripped, the first
// character (upper-cased) becomes the rank and the last character
// (lower-cased) becomes the suit. Tokens that do not yield a valid rank and
// suit are dropped, not errored; the extractor upstream is fallible and
// individual bad tokens are expected.
func ParseCard(token string) (Card, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Card{}, false
	}
	rank := upperByte(token[0])
	suit := lowerByte(token[len(token)-1])
	if !validRank(rank) || !validSuit(suit) {
		return Card{}, false
	}
	return Card{Rank: rank, Suit: suit}, true
}

// ParseCards normalizes each token and discards the invalid ones, preserving
// the order of the survivors.
func ParseCards(tokens []string) []Card {
	out := make([]Card, 0, len(tokens))
	for _, t := range tokens {
		if c, ok := ParseCard(t); ok {
			out = append(out, c)
		}
	}
	return out
}
