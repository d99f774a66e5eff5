package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func fullCandidate() RawCandidate {
	return RawCandidate{
		UserPosition:     "BTN",
		OpponentPosition: "BB",
		UserHand:         FlexList{"Ah", "Kd"},
		Flop:             FlexList{"Qs", "Jd", "2c"},
		FlopActions:      FlexList{"Bet(6)", "Call"},
	}
}

func TestValidateSuccess(t *testing.T) {
	t.Parallel()
	state, status := Validate(fullCandidate())
	require.True(t, status.OK())
	require.Equal(t, StatusSuccess, status.Message())
	require.Equal(t, "BTN", state.UserPosition)
	require.Equal(t, "BB", state.OpponentPosition)
	require.Equal(t, []Card{{'A', 'h'}, {'K', 'd'}}, state.UserHand)
	require.Equal(t, []Card{{'Q', 's'}, {'J', 'd'}, {'2', 'c'}}, state.Flop)
	require.Empty(t, state.Turn)
	require.Empty(t, state.River)
	require.Equal(t, []Action{{Kind: Bet, Amount: 6}, {Kind: Call}}, state.FlopActions)
	require.Empty(t, state.TurnActions)
	require.Empty(t, state.RiverActions)
}

func TestValidateFlopCountStillPopulatesOtherFields(t *testing.T) {
	t.Parallel()
	cand := fullCandidate()
	cand.Flop = FlexList{"Qs", "Jd"}
	state, status := Validate(cand)
	require.False(t, status.OK())
	require.Equal(t, "Error: Flop must contain exactly 3 cards.", status.Message())
	// Normalization still runs; the partial state remains inspectable.
	require.Equal(t, []Card{{'A', 'h'}, {'K', 'd'}}, state.UserHand)
	require.Equal(t, []Card{{'Q', 's'}, {'J', 'd'}}, state.Flop)
	require.Equal(t, []Action{{Kind: Bet, Amount: 6}, {Kind: Call}}, state.FlopActions)
}

func TestValidateDuplicateCardWinsOverHandCount(t *testing.T) {
	t.Parallel()
	cand := fullCandidate()
	cand.UserHand = FlexList{"Ah", "Ah"}
	_, status := Validate(cand)
	// Length 2 passes the count check; the later duplicate check is what
	// reports, per the last-error-wins contract.
	require.Equal(t, "Error: Duplicate cards found.", status.Message())
	require.Len(t, status.Problems, 1)
	require.Equal(t, DuplicateCard, status.Problems[0].Code)
}

func TestValidateDuplicateAcrossHandAndBoard(t *testing.T) {
	t.Parallel()
	cand := fullCandidate()
	cand.Turn = FlexList{"Ah"} // already in the hand
	_, status := Validate(cand)
	require.Equal(t, "Error: Duplicate cards found.", status.Message())
}

func TestValidatePositionsEqualAfterUpperCasing(t *testing.T) {
	t.Parallel()
	cand := fullCandidate()
	cand.OpponentPosition = "btn"
	state, status := Validate(cand)
	require.Equal(t, "Error: User and opponent positions could not be the same.", status.Message())
	require.Equal(t, "BTN", state.OpponentPosition)
}

func TestValidateMissingPositions(t *testing.T) {
	t.Parallel()
	cand := fullCandidate()
	cand.UserPosition = "  "
	_, status := Validate(cand)
	// Both positions normalize to distinct values "" vs "BB": only the
	// missing-position check fires.
	require.Equal(t, "Error: User position is missing.", status.Message())

	cand = fullCandidate()
	cand.OpponentPosition = ""
	_, status = Validate(cand)
	require.Equal(t, "Error: Opponent position is missing.", status.Message())
}

func TestValidateBothPositionsMissingReportsEquality(t *testing.T) {
	t.Parallel()
	cand := fullCandidate()
	cand.UserPosition = ""
	cand.OpponentPosition = ""
	_, status := Validate(cand)
	// Two empty positions are also equal; the equality check runs later and
	// its message wins the one-line form.
	require.Equal(t, "Error: User and opponent positions could not be the same.", status.Message())
	require.Equal(t, []Problem{
		{Code: MissingPosition, Message: "Error: User position is missing."},
		{Code: DuplicatePosition, Message: "Error: User and opponent positions could not be the same."},
	}, status.Problems)
}

func TestValidateHandChecks(t *testing.T) {
	t.Parallel()
	cand := fullCandidate()
	cand.UserHand = nil
	_, status := Validate(cand)
	require.Equal(t, "Error: User hand is missing.", status.Message())

	cand = fullCandidate()
	cand.UserHand = FlexList{"Ah", "Kd", "Qc"}
	_, status = Validate(cand)
	require.Equal(t, "Error: User hand must contain exactly 2 cards.", status.Message())
}

func TestValidateCountsUseRawLengths(t *testing.T) {
	t.Parallel()
	cand := fullCandidate()
	cand.UserHand = FlexList{"Ah", "Xx"}
	state, status := Validate(cand)
	// The bogus token passes the raw count check and is then silently
	// dropped, leaving a one-card hand with Success status.
	require.True(t, status.OK())
	require.Equal(t, []Card{{'A', 'h'}}, state.UserHand)
}

func TestValidateTurnAndRiverCounts(t *testing.T) {
	t.Parallel()
	cand := fullCandidate()
	cand.Turn = FlexList{"5h", "6h"}
	_, status := Validate(cand)
	require.Equal(t, "Error: Turn must contain exactly 1 card.", status.Message())

	cand = fullCandidate()
	cand.Turn = FlexList{"5h"}
	cand.River = FlexList{"6h", "7h"}
	_, status = Validate(cand)
	require.Equal(t, "Error: River must contain exactly 1 card.", status.Message())
}

func TestValidateLaterCheckShadowsEarlier(t *testing.T) {
	t.Parallel()
	cand := fullCandidate()
	cand.OpponentPosition = "btn" // duplicate position
	cand.UserHand = nil           // missing hand, checked later
	_, status := Validate(cand)
	require.Equal(t, "Error: User hand is missing.", status.Message())
	require.Equal(t, DuplicatePosition, status.Problems[0].Code)
	require.Equal(t, InvalidHandCount, status.Problems[1].Code)
}

func TestStateJSONShape(t *testing.T) {
	t.Parallel()
	state, _ := Validate(fullCandidate())
	b, err := json.Marshal(state)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"user_position": "BTN",
		"opponent_position": "BB",
		"user_hand": ["Ah", "Kd"],
		"flop": ["Qs", "Jd", "2c"],
		"turn": [],
		"river": [],
		"flop_actions": ["Bet(6)", "Call"],
		"turn_actions": [],
		"river_actions": []
	}`, string(b))
}
