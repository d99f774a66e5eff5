// Package pipeline sequences relevance gating, candidate extraction and
// validation into a single call.
package pipeline

import (
	"context"

	"holdem-scribe/agent/game"
)

// Gate decides whether text is worth extracting at all.
type Gate interface {
	IsRelevant(text string) bool
}

// CandidateExtractor turns free text into a raw candidate record. An error
// means no parseable candidate; retry and timeout policy live behind this
// interface, not in the pipeline.
type CandidateExtractor interface {
	Extract(ctx context.Context, text string) (game.RawCandidate, error)
}

type Kind string

const (
	NotRelevant      Kind = "not_relevant"
	ExtractionFailed Kind = "extraction_failed"
	Invalid          Kind = "invalid"
	Valid            Kind = "valid"
)

// Result is the single sum type for every pipeline outcome. State and
// Status are populated for Invalid and Valid; Err only for ExtractionFailed.
type Result struct {
	Kind   Kind
	State  game.State
	Status game.Status
	Err    error
}

type Pipeline struct {
	gate      Gate
	extractor CandidateExtractor
}

func New(gate Gate, extractor CandidateExtractor) *Pipeline {
	return &Pipeline{gate: gate, extractor: extractor}
}

// Process runs text through gate, extractor and validator. The gate
// short-circuits: irrelevant text never reaches the extractor.
func (p *Pipeline) Process(ctx context.Context, text string) Result {
	if !p.gate.IsRelevant(text) {
		return Result{Kind: NotRelevant}
	}
	cand, err := p.extractor.Extract(ctx, text)
	if err != nil {
		return Result{Kind: ExtractionFailed, Err: err}
	}
	state, status := game.Validate(cand)
	kind := Valid
	if !status.OK() {
		kind = Invalid
	}
	return Result{Kind: kind, State: state, Status: status}
}
