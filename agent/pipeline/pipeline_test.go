package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"holdem-scribe/agent/game"
)

type gateFunc func(string) bool

func (f gateFunc) IsRelevant(text string) bool { return f(text) }

type fakeExtractor struct {
	cand   game.RawCandidate
	err    error
	called int
}

func (f *fakeExtractor) Extract(_ context.Context, _ string) (game.RawCandidate, error) {
	f.called++
	return f.cand, f.err
}

func allowAll() gateFunc { return func(string) bool { return true } }

func TestProcessNotRelevantSkipsExtractor(t *testing.T) {
	t.Parallel()
	ex := &fakeExtractor{}
	p := New(gateFunc(func(string) bool { return false }), ex)
	res := p.Process(context.Background(), "how do I bake bread")
	require.Equal(t, NotRelevant, res.Kind)
	require.Zero(t, ex.called)
}

func TestProcessExtractionFailed(t *testing.T) {
	t.Parallel()
	wantErr := errors.New("no JSON object found in the response")
	ex := &fakeExtractor{err: wantErr}
	p := New(allowAll(), ex)
	res := p.Process(context.Background(), "poker text")
	require.Equal(t, ExtractionFailed, res.Kind)
	require.ErrorIs(t, res.Err, wantErr)
	require.Equal(t, 1, ex.called)
}

func TestProcessInvalid(t *testing.T) {
	t.Parallel()
	ex := &fakeExtractor{cand: game.RawCandidate{
		UserPosition:     "BTN",
		OpponentPosition: "BB",
		UserHand:         game.FlexList{"Ah", "Kd"},
		Flop:             game.FlexList{"Qs", "Jd"},
	}}
	p := New(allowAll(), ex)
	res := p.Process(context.Background(), "poker text")
	require.Equal(t, Invalid, res.Kind)
	require.Equal(t, "Error: Flop must contain exactly 3 cards.", res.Status.Message())
	// Partial state still comes through for diagnostics.
	require.Len(t, res.State.UserHand, 2)
}

func TestProcessValid(t *testing.T) {
	t.Parallel()
	ex := &fakeExtractor{cand: game.RawCandidate{
		UserPosition:     "BTN",
		OpponentPosition: "BB",
		UserHand:         game.FlexList{"Ah", "Kd"},
		Flop:             game.FlexList{"Qs", "Jd", "2c"},
		FlopActions:      game.FlexList{"Bet(6)", "Call"},
	}}
	p := New(allowAll(), ex)
	res := p.Process(context.Background(), "poker text")
	require.Equal(t, Valid, res.Kind)
	require.True(t, res.Status.OK())
	require.Equal(t, game.StatusSuccess, res.Status.Message())
	require.Equal(t, "BTN", res.State.UserPosition)
}
