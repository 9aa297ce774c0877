package lzend

import (
	"context"
)

// Phase names a stage of the parse pipeline.
type Phase int8

const (
	// PhaseReverse is the reversal of the input text.
	PhaseReverse Phase = iota
	// PhaseIndex builds the suffix structures of the reversed text.
	PhaseIndex
	// PhaseRMQ builds the range-minimum table over the LCP array.
	PhaseRMQ
	// PhaseRank permutes the rank array into text order.
	PhaseRank
	// PhaseParse is the left-to-right scan.
	PhaseParse
	// PhaseDone signals a completed parse.
	PhaseDone
)

func (ph Phase) String() string {
	switch ph {
	case PhaseReverse:
		return "reverse"
	case PhaseIndex:
		return "index"
	case PhaseRMQ:
		return "rmq"
	case PhaseRank:
		return "rank"
	case PhaseParse:
		return "parse"
	case PhaseDone:
		return "done"
	}
	return "unknown"
}

// Progress reports the state of a running parse. An event is broadcast at
// every phase boundary; during the scan, additional ticks arrive every 64Ki
// positions. Pos counts text positions in [0, Total], Phrases the phrases
// produced so far.
type Progress struct {
	Phase   Phase
	Pos     int
	Total   int
	Phrases int
}

// Subscribe returns a channel on which the parser broadcasts Progress
// values, buffering up to capacity of them. The channel closes when the
// parser is closed or ctx is canceled; ctx may be nil. The second return
// value is false if the parser has already been closed.
//
// Subscribers should keep draining the channel until it closes. Scan ticks
// are sent best-effort; a subscriber that stops draining may miss events.
func (p *Parser) Subscribe(ctx context.Context, capacity uint) (chan interface{}, bool) {
	return p.cast.Sub(ctx, capacity)
}

// Unsubscribe removes a channel obtained from Subscribe.
func (p *Parser) Unsubscribe(ch chan interface{}) {
	p.cast.Unsub(ch)
}

// Close shuts the progress broadcaster down and closes all subscribed
// channels. The parser must not be used afterwards.
func (p *Parser) Close() {
	p.cast.Close()
}

func (p *Parser) publish(ph Phase, pos, total, phrases int) {
	p.cast.Pub(Progress{Phase: ph, Pos: pos, Total: total, Phrases: phrases})
}

// tick reports scan progress without ever blocking the scan.
func (p *Parser) tick(pos, total, phrases int) {
	p.cast.TryPub(Progress{Phase: PhaseParse, Pos: pos, Total: total, Phrases: phrases})
}
