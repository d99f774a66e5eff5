package game

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// RawCandidate is the untrusted record handed over by the information
// extractor. Field names match the JSON the extraction prompt asks for, but
// nothing about types, counts, casing or presence is guaranteed.
type RawCandidate struct {
	UserPosition     string   `json:"user_position"`
	OpponentPosition string   `json:"opponent_position"`
	UserHand         FlexList `json:"user_hand"`
	Flop             FlexList `json:"flop"`
	Turn             FlexList `json:"turn"`
	River            FlexList `json:"river"`
	FlopActions      FlexList `json:"flop_actions"`
	TurnActions      FlexList `json:"turn_actions"`
	RiverActions     FlexList `json:"river_actions"`
}

// FlexList is a string list that tolerates the shapes extraction models
// actually emit: a JSON array (possibly with numeric elements), a bare
// string, or null. The extractor's own empty template uses "" where an
// empty array is meant.
type FlexList []string

func (l *FlexList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if data[0] == '[' {
		var items []any
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			switch v := item.(type) {
			case string:
				out = append(out, v)
			case float64:
				out = append(out, strconv.FormatFloat(v, 'f', -1, 64))
			}
		}
		*l = out
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if strings.TrimSpace(s) == "" {
		*l = nil
		return nil
	}
	*l = []string{s}
	return nil
}
