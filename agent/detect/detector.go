// Package detect decides whether free text talks about poker at all, so the
// expensive extraction step can be skipped for everything else.
package detect

import (
	"math"
	"sort"
	"sync"
	"unicode/utf8"
)

// DefaultThreshold is the score above which text counts as poker-related.
const DefaultThreshold = 0.1

// Detector scores text with term frequency weighted by a fixed pseudo-IDF:
// every lexicon term carries log(|lexicon|/2), everything else weighs zero.
// It is safe for concurrent use; AddTerms is the only mutation.
type Detector struct {
	mu           sync.RWMutex
	lexicon      map[string]struct{}
	maxTermRunes int // longest lexicon term, bounds greedy CJK matching
	threshold    float64
	seg          Segmenter
}

type Option func(*Detector)

// WithThreshold overrides the relevance threshold.
func WithThreshold(threshold float64) Option {
	return func(d *Detector) { d.threshold = threshold }
}

// WithSegmenter replaces the built-in segmenter, e.g. with a GseSegmenter.
func WithSegmenter(seg Segmenter) Option {
	return func(d *Detector) { d.seg = seg }
}

// WithTerms extends the seed lexicon at construction time.
func WithTerms(terms ...string) Option {
	return func(d *Detector) {
		for _, term := range terms {
			d.addTerm(term)
		}
	}
}

func New(opts ...Option) *Detector {
	d := &Detector{
		lexicon:   make(map[string]struct{}, len(defaultLexicon)),
		threshold: DefaultThreshold,
	}
	for _, term := range defaultLexicon {
		d.addTerm(term)
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Detector) addTerm(term string) {
	if term == "" {
		return
	}
	d.lexicon[term] = struct{}{}
	if n := utf8.RuneCountInString(term); n > d.maxTermRunes {
		d.maxTermRunes = n
	}
}

// AddTerms extends the lexicon. Pure addition, idempotent.
func (d *Detector) AddTerms(terms ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, term := range terms {
		d.addTerm(term)
	}
}

// LexiconSize reports the number of distinct lexicon terms.
func (d *Detector) LexiconSize() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.lexicon)
}

func (d *Detector) cut(text string) []string {
	if d.seg != nil {
		return d.seg.Cut(text)
	}
	return lexiconCut(text, d.lexicon, d.maxTermRunes)
}

// Score never fails; empty or entirely off-topic text scores 0.
func (d *Detector) Score(text string) float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()

	terms := d.cut(text)
	if len(terms) == 0 {
		return 0
	}
	counts := make(map[string]int, len(terms))
	for _, term := range terms {
		counts[term]++
	}
	total := float64(len(terms))
	idf := d.pseudoIDF()
	var score float64
	for term, n := range counts {
		if _, ok := d.lexicon[term]; ok {
			score += float64(n) / total * idf
		}
	}
	return score
}

// pseudoIDF is a per-lexicon constant, not a corpus statistic: with a single
// reference document the simplified IDF collapses to log(|lexicon|/(1+1)).
func (d *Detector) pseudoIDF() float64 {
	return math.Log(float64(len(d.lexicon)) / 2)
}

// IsRelevant reports whether Score(text) clears the configured threshold.
func (d *Detector) IsRelevant(text string) bool {
	return d.Score(text) > d.threshold
}

// TermScore is one row of an Analyze breakdown.
type TermScore struct {
	Term      string
	TF        float64
	IDF       float64
	TFIDF     float64
	InLexicon bool
}

// Analyze returns the per-term scoring detail for a text, sorted by TF-IDF
// descending (term order breaks ties). Used by the analyze CLI command.
func (d *Detector) Analyze(text string) []TermScore {
	d.mu.RLock()
	defer d.mu.RUnlock()

	terms := d.cut(text)
	if len(terms) == 0 {
		return nil
	}
	counts := make(map[string]int, len(terms))
	for _, term := range terms {
		counts[term]++
	}
	total := float64(len(terms))
	idf := d.pseudoIDF()

	out := make([]TermScore, 0, len(counts))
	for term, n := range counts {
		row := TermScore{Term: term, TF: float64(n) / total}
		if _, ok := d.lexicon[term]; ok {
			row.InLexicon = true
			row.IDF = idf
			row.TFIDF = row.TF * idf
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TFIDF != out[j].TFIDF {
			return out[i].TFIDF > out[j].TFIDF
		}
		return out[i].Term < out[j].Term
	})
	return out
}
