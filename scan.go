package lzend

import (
	"github.com/npillmayer/lzend/ordered"
	"github.com/npillmayer/lzend/rmq"
)

// scanTickMask throttles progress ticks during the scan to one per 64Ki
// positions.
const scanTickMask = 1<<16 - 1

// candidate is a marked phrase considered as copy source for the bytes
// ending at the current position: the rank of the reversed prefix at the
// phrase's end, the phrase's index, and the number of trailing bytes the
// phrase end has in common with the query rank.
type candidate struct {
	rank int32
	link int32
	len  int32
}

// parseRun is the state of one Parse call's scan.
type parseRun struct {
	parser  *Parser
	text    []byte
	rank    []int32                   // rank[j]: rank of the reversed prefix ending at j
	lcpq    *rmq.Table[int32]         // range minima over the LCP array of the reversed text
	marked  ordered.Map[int32, int32] // end rank of a closed phrase -> phrase index
	parsing []Phrase
}

// lcp is the longest common prefix length of the reversed suffixes at ranks
// a < b: the minimum LCP entry between them.
func (run *parseRun) lcp(a, b int32) int32 {
	_, l := run.lcpq.Query(int(a)+1, int(b))
	return l
}

// lexSmallerPhrase finds the marked phrase whose end rank is nearest below
// x, with its common prefix length against rank x.
func (run *parseRun) lexSmallerPhrase(x int32) (candidate, bool) {
	r := run.marked.Predecessor(x - 1)
	if !r.Exists {
		return candidate{}, false
	}
	return candidate{rank: r.Key, link: r.Value, len: run.lcp(r.Key, x)}, true
}

// lexGreaterPhrase is the mirror image: the nearest marked rank above x.
func (run *parseRun) lexGreaterPhrase(x int32) (candidate, bool) {
	r := run.marked.Successor(x + 1)
	if !r.Exists {
		return candidate{}, false
	}
	return candidate{rank: r.Key, link: r.Value, len: run.lcp(x, r.Key)}, true
}

// scan runs the case analysis of Kempa and Kosolobov over all positions of
// the text. For every position the scan decides whether the byte extends
// the open phrase, merges the last two phrases, or opens a new phrase.
//
// marked holds the end rank of every closed phrase; the open phrase is
// marked lazily, at the moment it closes. A merge erases the mark of the
// phrase it absorbs.
func (run *parseRun) scan() []Phrase {
	s := run.text
	n := len(s)
	run.parsing = append(run.parsing, Phrase{Link: 0, Len: 1, Ext: s[0]})

	for i := 1; i < n; i++ {
		last := len(run.parsing) - 1
		len1 := run.parsing[last].Len // length of the open phrase
		len2 := len1                  // length of the last two phrases combined
		if last > 0 {
			len2 += run.parsing[last-1].Len
		}
		x := run.rank[i-1] // rank of the reversed prefix at the open phrase's end

		// p1: a closed phrase at whose end the last len1 bytes also occur;
		// copy source for extending the open phrase. p2: same for the last
		// len2 bytes; copy source for merging the last two phrases.
		p1, p2 := int32(-1), int32(-1)
		find := func(f func(int32) (candidate, bool)) {
			c, ok := f(x)
			if !ok || c.len < len1 {
				return
			}
			p1 = c.link
			if i <= int(len1) {
				// the open phrase spans the whole text so far, nothing to merge
				return
			}
			if c.link == int32(last-1) {
				// a merge would erase this candidate's own boundary; step to
				// the next mark in the same direction. Its overlap with rank
				// x cannot exceed the overlap found so far.
				next, ok := f(c.rank)
				if !ok {
					return
				}
				if next.len > c.len {
					next.len = c.len
				}
				c = next
			}
			if c.len >= len2 {
				p2 = c.link
			}
		}
		find(run.lexSmallerPhrase)
		if p1 < 0 || p2 < 0 {
			find(run.lexGreaterPhrase)
		}

		switch {
		case p2 >= 0: // merge the last two phrases and append s[i]
			run.marked.Erase(run.rank[i-1-int(len1)])
			run.parsing = run.parsing[:last]
			run.parsing[last-1] = Phrase{Link: p2, Len: len2 + 1, Ext: s[i]}
		case p1 >= 0: // extend the open phrase by s[i]
			run.parsing[last] = Phrase{Link: p1, Len: len1 + 1, Ext: s[i]}
		default: // the open phrase closes; mark its end, open a new phrase
			run.marked.Insert(x, int32(last))
			run.parsing = append(run.parsing, Phrase{Link: 0, Len: 1, Ext: s[i]})
		}

		if i&scanTickMask == 0 {
			run.parser.tick(i, n, len(run.parsing))
		}
	}
	return run.parsing
}
