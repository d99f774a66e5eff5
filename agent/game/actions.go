package game

import (
	"fmt"
	"strconv"
	"strings"
)

type ActionKind string

const (
	Call  ActionKind = "Call"
	Check ActionKind = "Check"
	Bet   ActionKind = "Bet"
	Raise ActionKind = "Raise"
	AllIn ActionKind = "AllIn"
)

// sizedKinds are the kinds that carry an amount, e.g. "Bet(6)".
var sizedKinds = [...]ActionKind{Bet, Raise, AllIn}

// Action is one betting action in a street's history. Call and Check are
// plain; Bet, Raise and AllIn carry a non-negative amount.
type Action struct {
	Kind   ActionKind
	Amount int
}

func (a Action) Sized() bool {
	return a.Kind == Bet || a.Kind == Raise || a.Kind == AllIn
}

// String renders the canonical wire form: "Call", "Check" or "Kind(amount)".
func (a Action) String() string {
	if a.Sized() {
		return fmt.Sprintf("%s(%d)", a.Kind, a.Amount)
	}
	return string(a.Kind)
}

func (a Action) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

func (a *Action) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if parsed, ok := ParseAction(s); ok {
		*a = parsed
	}
	return nil
}

// ParseAction accepts "Call" and "Check" verbatim and sized actions of the
// form Kind(amount) with an integer, non-negative amount. A missing or
// doubled closing paren is tolerated. Anything else is dropped.
func ParseAction(token string) (Action, bool) {
	switch token {
	case string(Call):
		return Action{Kind: Call}, true
	case string(Check):
		return Action{Kind: Check}, true
	}
	for _, kind := range sizedKinds {
		rest, ok := strings.CutPrefix(token, string(kind)+"(")
		if !ok {
			continue
		}
		amount, err := strconv.Atoi(strings.TrimRight(rest, ")"))
		if err != nil || amount < 0 {
			return Action{}, false
		}
		return Action{Kind: kind, Amount: amount}, true
	}
	return Action{}, false
}

// ParseActions is a filtering transform: malformed entries are dropped
// per-entry and never produce an error, so the structural validation stays
// the single source of reported failure.
func ParseActions(tokens []string) []Action {
	out := make([]Action, 0, len(tokens))
	for _, t := range tokens {
		if a, ok := ParseAction(t); ok {
			out = append(out, a)
		}
	}
	return out
}
