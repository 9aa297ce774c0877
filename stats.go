package lzend

import "time"

// Stats describes the most recent parse of a Parser.
type Stats struct {
	TextLen int           // input length in bytes
	Phrases int           // number of phrases produced
	Elapsed time.Duration // wall clock time of the parse
}

// BytesPerPhrase is the mean phrase length, a measure of how compressible
// the input was. It is 0 for an empty parsing.
func (st Stats) BytesPerPhrase() float64 {
	if st.Phrases == 0 {
		return 0
	}
	return float64(st.TextLen) / float64(st.Phrases)
}

// Stats returns the statistics of the parser's most recent Parse call.
func (p *Parser) Stats() Stats {
	return p.stats
}
