package detect

import "github.com/go-ego/gse"

// GseSegmenter wraps a gse dictionary segmenter (the jieba equivalent in
// Go), giving the detector proper word boundaries for Chinese text.
type GseSegmenter struct {
	seg gse.Segmenter
}

// NewGseSegmenter loads the embedded dictionaries; that takes a moment, so
// callers should construct one segmenter and share it.
func NewGseSegmenter() (*GseSegmenter, error) {
	var seg gse.Segmenter
	if err := seg.LoadDictEmbed(); err != nil {
		return nil, err
	}
	return &GseSegmenter{seg: seg}, nil
}

func (g *GseSegmenter) Cut(text string) []string {
	return g.seg.Cut(text, true)
}
