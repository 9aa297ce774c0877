package rangemark

import (
	"fmt"
	"math/bits"
)

// Check validates the bit-vector bookkeeping: per-bucket sizes against
// popcounts, the overall size, the release of emptied buckets and the
// maxBucket watermark.
//
// This checker is intentionally strict and should be used in tests. It
// visits every bucket and is not meant for production paths.
func (m *Map[K, V]) Check() error {
	if m == nil {
		return fmt.Errorf("%w: nil map", ErrCorrupt)
	}
	if m.cfg.BucketCapacity != 1<<m.shift || m.mask != m.cfg.BucketCapacity-1 {
		return fmt.Errorf("%w: shift/mask do not match the bucket capacity", ErrCorrupt)
	}
	total := 0
	for b, bk := range m.buckets {
		if bk == nil {
			continue
		}
		if b > m.maxBucket {
			return fmt.Errorf("%w: bucket %d above the watermark %d", ErrCorrupt, b, m.maxBucket)
		}
		if len(bk.words) != m.cfg.BucketCapacity/64 || len(bk.values) != m.cfg.BucketCapacity {
			return fmt.Errorf("%w: bucket %d has odd storage sizes", ErrCorrupt, b)
		}
		popcount := 0
		for _, word := range bk.words {
			popcount += bits.OnesCount64(word)
		}
		if popcount == 0 {
			return fmt.Errorf("%w: empty bucket %d not released", ErrCorrupt, b)
		}
		if popcount != bk.size {
			return fmt.Errorf("%w: bucket %d records %d marks, bits say %d",
				ErrCorrupt, b, bk.size, popcount)
		}
		total += popcount
	}
	if total != m.size {
		return fmt.Errorf("%w: bookkeeping records %d entries, buckets hold %d",
			ErrCorrupt, m.size, total)
	}
	return nil
}
