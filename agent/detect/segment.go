package detect

// Segmenter turns free text into a finite ordered sequence of terms. Any
// word segmentation is acceptable; the detector only needs consistent terms
// to count.
type Segmenter interface {
	Cut(text string) []string
}

// SegmenterFunc adapts a plain function to the Segmenter interface.
type SegmenterFunc func(text string) []string

func (f SegmenterFunc) Cut(text string) []string { return f(text) }

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// lexiconCut is the built-in segmenter: maximal ASCII letter/digit runs
// become terms as-is, other ASCII is discarded, and non-ASCII text is
// matched greedily (longest first) against the lexicon so that multi-rune
// entries like 德州扑克 stay whole. Unmatched runes come out one per term,
// which keeps the token total honest the way a dictionary segmenter would.
func lexiconCut(text string, lexicon map[string]struct{}, maxTermRunes int) []string {
	runes := []rune(text)
	var out []string
	if maxTermRunes < 1 {
		maxTermRunes = 1
	}
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case isASCIIAlnum(r):
			j := i + 1
			for j < len(runes) && isASCIIAlnum(runes[j]) {
				j++
			}
			out = append(out, string(runes[i:j]))
			i = j
		case r < 0x80:
			i++ // ASCII punctuation and whitespace
		default:
			matched := false
			for l := min(maxTermRunes, len(runes)-i); l >= 2; l-- {
				if _, ok := lexicon[string(runes[i:i+l])]; ok {
					out = append(out, string(runes[i:i+l]))
					i += l
					matched = true
					break
				}
			}
			if !matched {
				out = append(out, string(r))
				i++
			}
		}
	}
	return out
}
