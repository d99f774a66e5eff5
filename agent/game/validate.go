package game

import "strings"

type ProblemCode string

const (
	MissingPosition   ProblemCode = "missing_position"
	DuplicatePosition ProblemCode = "duplicate_position"
	InvalidHandCount  ProblemCode = "invalid_hand_count"
	InvalidFlopCount  ProblemCode = "invalid_flop_count"
	InvalidTurnCount  ProblemCode = "invalid_turn_count"
	InvalidRiverCount ProblemCode = "invalid_river_count"
	DuplicateCard     ProblemCode = "duplicate_card"
)

// Problem is one failed structural check.
type Problem struct {
	Code    ProblemCode `json:"code"`
	Message string      `json:"message"`
}

// StatusSuccess is the single-string status of a clean validation.
const StatusSuccess = "Success"

// Status collects every failed check in validation order. Single-message
// callers use Message(), which reports the *last* failure; the checks do not
// short-circuit, and later failures deliberately shadow earlier ones in the
// one-line form.
type Status struct {
	Problems []Problem `json:"problems,omitempty"`
}

func (s Status) OK() bool { return len(s.Problems) == 0 }

// Message returns "Success" or the message of the last failed check.
func (s Status) Message() string {
	if len(s.Problems) == 0 {
		return StatusSuccess
	}
	return s.Problems[len(s.Problems)-1].Message
}

// Validate normalizes a raw candidate into a State and reports structural
// problems. Count checks run on the raw, pre-normalization lengths; token
// normalization silently drops malformed cards and actions afterwards. The
// State is fully populated whatever the status, so callers can still show a
// partial picture, but must check the status before trusting it.
func Validate(raw RawCandidate) (State, Status) {
	var status Status
	fail := func(code ProblemCode, msg string) {
		status.Problems = append(status.Problems, Problem{Code: code, Message: msg})
	}

	userPos := strings.ToUpper(strings.TrimSpace(raw.UserPosition))
	oppPos := strings.ToUpper(strings.TrimSpace(raw.OpponentPosition))
	if userPos == "" {
		fail(MissingPosition, "Error: User position is missing.")
	} else if oppPos == "" {
		fail(MissingPosition, "Error: Opponent position is missing.")
	}
	if userPos == oppPos {
		fail(DuplicatePosition, "Error: User and opponent positions could not be the same.")
	}

	switch {
	case len(raw.UserHand) == 0:
		fail(InvalidHandCount, "Error: User hand is missing.")
	case len(raw.UserHand) != 2:
		fail(InvalidHandCount, "Error: User hand must contain exactly 2 cards.")
	}
	if len(raw.Flop) > 0 && len(raw.Flop) != 3 {
		fail(InvalidFlopCount, "Error: Flop must contain exactly 3 cards.")
	}
	if len(raw.Turn) > 0 && len(raw.Turn) != 1 {
		fail(InvalidTurnCount, "Error: Turn must contain exactly 1 card.")
	}
	if len(raw.River) > 0 && len(raw.River) != 1 {
		fail(InvalidRiverCount, "Error: River must contain exactly 1 card.")
	}

	state := State{
		UserPosition:     userPos,
		OpponentPosition: oppPos,
		UserHand:         ParseCards(raw.UserHand),
		Flop:             ParseCards(raw.Flop),
		Turn:             ParseCards(raw.Turn),
		River:            ParseCards(raw.River),
		FlopActions:      ParseActions(raw.FlopActions),
		TurnActions:      ParseActions(raw.TurnActions),
		RiverActions:     ParseActions(raw.RiverActions),
	}

	if hasDuplicateCards(state.AllCards()) {
		fail(DuplicateCard, "Error: Duplicate cards found.")
	}

	return state, status
}

func hasDuplicateCards(cards []Card) bool {
	seen := make(map[Card]struct{}, len(cards))
	for _, c := range cards {
		if _, dup := seen[c]; dup {
			return true
		}
		seen[c] = struct{}{}
	}
	return false
}
