package lzend

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"math"
	"time"

	"github.com/guiguan/caster"
	"github.com/npillmayer/lzend/ordered"
	"github.com/npillmayer/lzend/ordered/btree"
	"github.com/npillmayer/lzend/ordered/rangemark"
	"github.com/npillmayer/lzend/rmq"
	"github.com/npillmayer/lzend/textindex"
)

// Backend selects the ordered-map implementation that keeps the ranks of
// the current phrase ends during a parse.
type Backend int8

const (
	// BackendBTree keeps marked ranks in a B-tree. The default.
	BackendBTree Backend = iota
	// BackendRangeMarking keeps marked ranks in a bucketed bit vector over
	// the rank universe. Faster for dense mark sets, at the cost of memory
	// proportional to the text length.
	BackendRangeMarking
)

func (b Backend) String() string {
	if b == BackendRangeMarking {
		return "marking"
	}
	return "btree"
}

// Config configures a Parser. The zero value is valid and selects the
// B-tree backend with default block size and node capacity.
type Config struct {
	// BlockSize is the block width of the range-minimum structure over the
	// LCP array. Zero selects rmq.DefaultBlockSize.
	BlockSize int
	// NodeCapacity is the node capacity of the B-tree backend: even, at
	// least 4, with capacity+1 below 65536. Zero selects
	// btree.DefaultCapacity. The range marking backend ignores it.
	NodeCapacity int
	// Backend selects the marked-rank set implementation.
	Backend Backend
}

func (cfg Config) validate() error {
	if cfg.BlockSize < 0 {
		return ErrInvalidConfig
	}
	if cfg.NodeCapacity != 0 {
		if cfg.NodeCapacity < 4 || cfg.NodeCapacity%2 != 0 || cfg.NodeCapacity+1 >= 1<<16 {
			return ErrInvalidConfig
		}
	}
	if cfg.Backend != BackendBTree && cfg.Backend != BackendRangeMarking {
		return ErrInvalidConfig
	}
	return nil
}

// Parser computes LZ-End parsings. A Parser carries its configuration, a
// progress broadcaster and the statistics of its most recent parse. It is
// not safe for concurrent use.
type Parser struct {
	cfg   Config
	cast  *caster.Caster
	stats Stats
}

// NewParser creates a Parser for the given configuration. Callers should
// Close the parser when done with it to release the progress broadcaster.
func NewParser(cfg Config) (*Parser, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Parser{
		cfg:  cfg,
		cast: caster.New(nil),
	}, nil
}

// Parse computes the LZ-End parsing of text. The empty text parses into an
// empty phrase list. Texts whose positions do not fit in int32 are rejected
// with ErrTextTooLong.
//
// Parse may be called repeatedly; every call replaces the parser's
// statistics.
func (p *Parser) Parse(text []byte) ([]Phrase, error) {
	if len(text) > math.MaxInt32 {
		return nil, ErrTextTooLong
	}
	n := len(text)
	start := time.Now()
	p.stats = Stats{TextLen: n}
	if n == 0 {
		p.stats.Elapsed = time.Since(start)
		p.publish(PhaseDone, 0, 0, 0)
		return nil, nil
	}
	T().Debugf("lzend: parsing %d bytes", n)

	p.publish(PhaseReverse, 0, n, 0)
	rev := make([]byte, n)
	for i := 0; i < n; i++ {
		rev[n-1-i] = text[i]
	}

	p.publish(PhaseIndex, 0, n, 0)
	ix, err := textindex.New(rev)
	if err != nil {
		return nil, err
	}

	p.publish(PhaseRMQ, 0, n, 0)
	lcpq, err := rmq.New(ix.LCP, rmq.Config{BlockSize: p.cfg.BlockSize})
	if err != nil {
		return nil, err
	}

	// The scan addresses ranks by text position: rank[j] is the rank of the
	// reversed suffix that mirrors the text prefix ending at j. That is the
	// index's rank array read backwards, so reverse it in place.
	p.publish(PhaseRank, 0, n, 0)
	rank := ix.Rank
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		rank[i], rank[j] = rank[j], rank[i]
	}

	marked, err := p.newMarkedSet(n)
	if err != nil {
		return nil, err
	}

	p.publish(PhaseParse, 0, n, 1)
	run := &parseRun{
		parser: p,
		text:   text,
		rank:   rank,
		lcpq:   lcpq,
		marked: marked,
	}
	parsing := run.scan()

	p.stats.Phrases = len(parsing)
	p.stats.Elapsed = time.Since(start)
	p.publish(PhaseDone, n, n, len(parsing))
	T().Debugf("lzend: parsed %d bytes into %d phrases in %s", n, len(parsing), p.stats.Elapsed)
	return parsing, nil
}

func (p *Parser) newMarkedSet(n int) (ordered.Map[int32, int32], error) {
	switch p.cfg.Backend {
	case BackendRangeMarking:
		return rangemark.NewMap[int32, int32](int32(n), rangemark.Config{})
	default:
		return btree.NewMap[int32, int32](btree.Config{Capacity: p.cfg.NodeCapacity})
	}
}

// Parse computes the LZ-End parsing of text with the default configuration.
func Parse(text []byte) ([]Phrase, error) {
	parser, err := NewParser(Config{})
	if err != nil {
		return nil, err
	}
	defer parser.Close()
	return parser.Parse(text)
}
