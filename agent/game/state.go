package game

// State is the validated, normalized description of a single hand. It is
// built once per extraction attempt and not mutated afterwards; a new
// attempt produces a new State.
type State struct {
	UserPosition     string   `json:"user_position"`
	OpponentPosition string   `json:"opponent_position"`
	UserHand         []Card   `json:"user_hand"`
	Flop             []Card   `json:"flop"`
	Turn             []Card   `json:"turn"`
	River            []Card   `json:"river"`
	FlopActions      []Action `json:"flop_actions"`
	TurnActions      []Action `json:"turn_actions"`
	RiverActions     []Action `json:"river_actions"`
}

// Board returns the community cards in street order.
func (s State) Board() []Card {
	out := make([]Card, 0, len(s.Flop)+len(s.Turn)+len(s.River))
	out = append(out, s.Flop...)
	out = append(out, s.Turn...)
	out = append(out, s.River...)
	return out
}

// AllCards returns hole cards followed by the board.
func (s State) AllCards() []Card {
	return append(append(make([]Card, 0, len(s.UserHand)+5), s.UserHand...), s.Board()...)
}
