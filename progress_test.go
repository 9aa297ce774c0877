package lzend

import (
	"context"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// drainProgress collects every Progress event buffered on ch until the
// channel closes. Subscriber buffers in these tests are larger than the
// number of events a parse can produce, so nothing is ever dropped.
func drainProgress(t *testing.T, ch chan interface{}) []Progress {
	t.Helper()
	var events []Progress
	for msg := range ch {
		ev, ok := msg.(Progress)
		if !ok {
			t.Fatalf("unexpected message on progress channel: %v", msg)
		}
		events = append(events, ev)
	}
	return events
}

func TestProgressPhases(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lzend")
	defer teardown()

	parser, err := NewParser(Config{})
	if err != nil {
		t.Fatalf("NewParser failed: %v", err)
	}
	ch, ok := parser.Subscribe(context.Background(), 64)
	if !ok {
		t.Fatal("Subscribe failed on a fresh parser")
	}
	text := []byte("abracadabra")
	parsing, err := parser.Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	parser.Close()
	events := drainProgress(t, ch)
	if len(events) == 0 {
		t.Fatal("no progress events received")
	}
	if events[0].Phase != PhaseReverse {
		t.Errorf("first event is %s, want %s", events[0].Phase, PhaseReverse)
	}
	for i := 1; i < len(events); i++ {
		if events[i].Phase < events[i-1].Phase || events[i].Pos < events[i-1].Pos {
			t.Errorf("events ran backwards: %v then %v", events[i-1], events[i])
		}
	}
	last := events[len(events)-1]
	if last.Phase != PhaseDone || last.Pos != len(text) || last.Total != len(text) ||
		last.Phrases != len(parsing) {
		t.Errorf("final event = %+v, want done with %d/%d positions and %d phrases",
			last, len(text), len(text), len(parsing))
	}
}

func TestProgressTicksDuringScan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lzend")
	defer teardown()

	parser, err := NewParser(Config{})
	if err != nil {
		t.Fatalf("NewParser failed: %v", err)
	}
	ch, ok := parser.Subscribe(context.Background(), 64)
	if !ok {
		t.Fatal("Subscribe failed on a fresh parser")
	}
	// Long enough for two scan ticks.
	r := rand.New(rand.NewSource(1))
	text := make([]byte, 2*(1<<16)+100)
	for i := range text {
		text[i] = byte('a' + r.Intn(3))
	}
	if _, err := parser.Parse(text); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	parser.Close()
	ticks := 0
	for _, ev := range drainProgress(t, ch) {
		if ev.Phase == PhaseParse && ev.Pos > 0 {
			if ev.Pos >= ev.Total {
				t.Errorf("scan tick beyond the text: %+v", ev)
			}
			ticks++
		}
	}
	if ticks != 2 {
		t.Errorf("got %d scan ticks, want 2", ticks)
	}
}

func TestProgressUnsubscribe(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lzend")
	defer teardown()

	parser, err := NewParser(Config{})
	if err != nil {
		t.Fatalf("NewParser failed: %v", err)
	}
	defer parser.Close()
	ch, ok := parser.Subscribe(context.Background(), 4)
	if !ok {
		t.Fatal("Subscribe failed on a fresh parser")
	}
	parser.Unsubscribe(ch)
	// Parsing after the only subscriber left must not block.
	parsing, err := parser.Parse([]byte("to be or not to be"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	checkParsing(t, []byte("to be or not to be"), parsing)
}
