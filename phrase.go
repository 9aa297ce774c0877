package lzend

import (
	"fmt"
	"math"
)

// Phrase is one factor of an LZ-End parsing. It copies Len-1 bytes from a
// stretch of earlier text ending at the last byte of phrase number Link,
// and appends the literal Ext. Len counts every byte of the phrase,
// including Ext. A phrase with Len == 1 copies nothing; its Link is 0 by
// convention.
type Phrase struct {
	Link int32 // index of the phrase at whose end the copied stretch ends
	Len  int32 // phrase length in bytes, including Ext
	Ext  byte  // the final literal
}

func (p Phrase) String() string {
	return fmt.Sprintf("(%d,%d,%q)", p.Link, p.Len, p.Ext)
}

// Expand decodes a parsing back into the text it represents. It is the
// inverse of Parse: Expand(Parse(text)) reproduces text for every input.
//
// Links and copy ranges are validated; a phrase list that no parse can have
// produced yields ErrCorruptParsing.
func Expand(parsing []Phrase) ([]byte, error) {
	total := int64(0)
	for _, p := range parsing {
		if p.Len < 1 {
			return nil, ErrCorruptParsing
		}
		total += int64(p.Len)
	}
	if total > math.MaxInt32 {
		return nil, ErrCorruptParsing
	}
	out := make([]byte, 0, int(total))
	ends := make([]int32, len(parsing)) // ends[k] is the position of phrase k's last byte
	for k, p := range parsing {
		if p.Len > 1 {
			if p.Link < 0 || int(p.Link) >= k {
				return nil, ErrCorruptParsing
			}
			end := ends[p.Link]
			start := end - p.Len + 2
			if start < 0 {
				return nil, ErrCorruptParsing
			}
			out = append(out, out[start:end+1]...)
		}
		out = append(out, p.Ext)
		ends[k] = int32(len(out)) - 1
	}
	return out, nil
}
