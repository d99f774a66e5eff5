package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"holdem-scribe/agent/game"
)

// ErrNoCandidate means the model reply contained no parseable JSON object.
var ErrNoCandidate = errors.New("no JSON object found in the response")

const extractSystem = "You are a poker information extraction assistant. Extract and format poker game information into JSON."

// Extraction wants variety over determinism: a high temperature recovers
// more hands from sloppy prose, and the validator catches the misses.
const (
	ExtractTemperature = 1.3
	ExtractMaxTokens   = 512
)

func extractPrompt(text string) string {
	return fmt.Sprintf(`Extract the following poker information from the given text and format it as a JSON object:
    - User's position (BTN, SB, BB, etc.)
    - Opponent's position (BTN, SB, BB, etc.)
    - User's hand (2 cards, from the largest to smallest)
    - Flop cards (3 cards, from the largest to smallest)
    - Turn card (1 card, optional)
    - River card (1 card, optional)
    - Flop actions (list of actions in forms like Bet(6), Bet(10), Call, etc.)
    - Turn actions (list of actions in forms like Bet(6), Bet(10), Call, etc.)
    - River actions (list of actions in forms like Bet(6), Bet(10), Call, etc.)

    Input text: %s

    Return only the JSON object in the following format:
    {
        "user_position": "position",
        "opponent_position": "position",
        "user_hand": ["user_card1","user_card2"],
        "flop": ["cards1","cards2","cards3"],
        "turn": ["cards4"],
        "river": ["cards5"],
        "flop_actions": ["action1", "action2"],
        "turn_actions": ["action1", "action2"],
        "river_actions": ["action1", "action2"]
    }
    `, text)
}

// Extractor is the information-extraction collaborator: it asks the model
// for a structured candidate and pulls the JSON object out of whatever prose
// comes back. No retries; the caller decides what a failure means.
type Extractor struct {
	client *Client
	logger *log.Logger
}

func NewExtractor(client *Client, logger *log.Logger) *Extractor {
	if logger == nil {
		logger = log.Default()
	}
	return &Extractor{client: client, logger: logger.WithPrefix("llm")}
}

func (e *Extractor) Extract(ctx context.Context, text string) (game.RawCandidate, error) {
	reply, err := e.client.Chat(ctx, extractSystem, extractPrompt(text))
	if err != nil {
		return game.RawCandidate{}, fmt.Errorf("chat completion: %w", err)
	}
	obj := extractJSONObject(reply)
	if obj == "" {
		e.logger.Debug("model reply had no JSON object", "reply", truncate(reply, 200))
		return game.RawCandidate{}, ErrNoCandidate
	}
	var cand game.RawCandidate
	if err := json.Unmarshal([]byte(obj), &cand); err != nil {
		e.logger.Debug("candidate JSON undecodable", "err", err)
		return game.RawCandidate{}, fmt.Errorf("%w: %v", ErrNoCandidate, err)
	}
	e.logger.Debug("candidate extracted",
		"user_position", cand.UserPosition,
		"opponent_position", cand.OpponentPosition,
		"hand", []string(cand.UserHand))
	return cand, nil
}

// extractJSONObject slices from the first '{' to the last '}'. Models wrap
// JSON in prose and code fences; this recovers the object either way.
func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	if start < 0 {
		return ""
	}
	end := strings.LastIndex(s, "}")
	if end < start {
		return ""
	}
	return strings.TrimSpace(s[start : end+1])
}
