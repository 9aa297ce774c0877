package btree

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewMapRejectsBadConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lzend")
	defer teardown()

	if _, err := NewMap[int32, int32](Config{Capacity: 3}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("odd capacity should be rejected, got %v", err)
	}
	if _, err := NewMap[int32, int32](Config{Capacity: 2}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("capacity 2 should be rejected, got %v", err)
	}
	if _, err := NewMap[int32, int32](Config{Capacity: 1 << 16}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("oversized capacity should be rejected, got %v", err)
	}
}

func TestNewMapAppliesDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lzend")
	defer teardown()

	m, err := NewMap[int32, int32](Config{})
	if err != nil {
		t.Fatalf("NewMap failed: %v", err)
	}
	if m.cfg.Capacity != DefaultCapacity {
		t.Errorf("zero config should yield capacity %d, got %d", DefaultCapacity, m.cfg.Capacity)
	}
	if !m.Empty() || m.Size() != 0 {
		t.Errorf("new map should be empty")
	}
	if err := m.Check(); err != nil {
		t.Error(err)
	}
}

func TestEmptyMapQueries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lzend")
	defer teardown()

	m, err := NewMap[int32, int32](Config{Capacity: 4})
	if err != nil {
		t.Fatalf("NewMap failed: %v", err)
	}
	if m.Find(7).Exists || m.Contains(7) {
		t.Errorf("empty map should not contain key 7")
	}
	if m.Predecessor(7).Exists {
		t.Errorf("empty map should have no predecessor")
	}
	if m.Successor(7).Exists {
		t.Errorf("empty map should have no successor")
	}
	if m.Min().Exists || m.Max().Exists {
		t.Errorf("empty map should have no minimum or maximum")
	}
	if m.Erase(7) {
		t.Errorf("erase on an empty map should report false")
	}
}

// collectKeys walks the map in order by chaining Successor calls.
func collectKeys(t *testing.T, m *Map[int32, int32]) []int32 {
	t.Helper()
	keys := make([]int32, 0, m.Size())
	r := m.Min()
	for r.Exists {
		keys = append(keys, r.Key)
		r = m.Successor(r.Key + 1)
	}
	return keys
}

func assertKeys(t *testing.T, m *Map[int32, int32], want ...int32) {
	t.Helper()
	if err := m.Check(); err != nil {
		t.Fatal(err)
	}
	if m.Size() != len(want) {
		t.Fatalf("Size() = %d, want %d", m.Size(), len(want))
	}
	got := collectKeys(t, m)
	if len(got) != len(want) {
		t.Fatalf("in-order walk yields %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("in-order walk yields %v, want %v", got, want)
		}
	}
}

func TestInsertSplitsRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lzend")
	defer teardown()

	m, err := NewMap[int32, int32](Config{Capacity: 4})
	if err != nil {
		t.Fatalf("NewMap failed: %v", err)
	}
	for _, k := range []int32{10, 20, 30, 40} {
		m.Insert(k, k*100)
	}
	if !m.root.isLeaf() {
		t.Fatalf("four keys should still fit into the root leaf")
	}
	m.Insert(50, 5000)
	if m.root.isLeaf() || m.root.size() != 1 || len(m.root.children) != 2 {
		t.Fatalf("fifth key should split the root")
	}
	assertKeys(t, m, 10, 20, 30, 40, 50)
	for _, k := range []int32{10, 20, 30, 40, 50} {
		r := m.Find(k)
		if !r.Exists || r.Value != k*100 {
			t.Errorf("Find(%d) = %+v, want value %d", k, r, k*100)
		}
	}
}

func TestPredecessorSuccessorSemantics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lzend")
	defer teardown()

	m, err := NewMap[int32, int32](Config{Capacity: 4})
	if err != nil {
		t.Fatalf("NewMap failed: %v", err)
	}
	for _, k := range []int32{10, 20, 30, 40, 50} {
		m.Insert(k, k)
	}
	// a contained key is its own predecessor and successor
	if r := m.Predecessor(30); !r.Exists || r.Key != 30 {
		t.Errorf("Predecessor(30) = %+v, want key 30", r)
	}
	if r := m.Successor(30); !r.Exists || r.Key != 30 {
		t.Errorf("Successor(30) = %+v, want key 30", r)
	}
	// keys in gaps round toward the query
	if r := m.Predecessor(29); !r.Exists || r.Key != 20 {
		t.Errorf("Predecessor(29) = %+v, want key 20", r)
	}
	if r := m.Successor(31); !r.Exists || r.Key != 40 {
		t.Errorf("Successor(31) = %+v, want key 40", r)
	}
	// out of range on either side
	if r := m.Predecessor(9); r.Exists {
		t.Errorf("Predecessor(9) = %+v, want absence", r)
	}
	if r := m.Successor(51); r.Exists {
		t.Errorf("Successor(51) = %+v, want absence", r)
	}
	if r := m.Predecessor(1000); !r.Exists || r.Key != 50 {
		t.Errorf("Predecessor(1000) = %+v, want key 50", r)
	}
	if r := m.Successor(-1000); !r.Exists || r.Key != 10 {
		t.Errorf("Successor(-1000) = %+v, want key 10", r)
	}
}

// TestEraseRebalances drives the tree through the deletion cases: merges
// with both siblings, key rotation from the left sibling, replacement of an
// inner key, and the final root collapse.
func TestEraseRebalances(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lzend")
	defer teardown()

	m, err := NewMap[int32, int32](Config{Capacity: 4})
	if err != nil {
		t.Fatalf("NewMap failed: %v", err)
	}
	// Descending inserts pile up in the leftmost leaf and split twice,
	// leaving the root with two separator keys.
	for k := int32(8); k >= 1; k-- {
		m.Insert(k, k)
	}
	assertKeys(t, m, 1, 2, 3, 4, 5, 6, 7, 8)
	if m.root.isLeaf() || m.root.size() != 2 {
		t.Fatalf("expected a root with two separators, got %d", m.root.size())
	}

	if !m.Erase(4) {
		t.Fatalf("Erase(4) should report true")
	}
	assertKeys(t, m, 1, 2, 3, 5, 6, 7, 8)

	// The middle leaf is down to one key now; erasing from it rotates a key
	// from its left sibling through the root.
	if !m.Erase(5) {
		t.Fatalf("Erase(5) should report true")
	}
	assertKeys(t, m, 1, 2, 3, 6, 7, 8)

	if m.Erase(4) {
		t.Errorf("Erase(4) on a missing key should report false")
	}

	// Shrinking the map further forces sibling merges and eventually
	// collapses the root back into a leaf.
	for _, k := range []int32{1, 2, 3, 6, 7} {
		if !m.Erase(k) {
			t.Fatalf("Erase(%d) should report true", k)
		}
		if err := m.Check(); err != nil {
			t.Fatalf("after Erase(%d): %v", k, err)
		}
	}
	assertKeys(t, m, 8)
	if !m.root.isLeaf() {
		t.Errorf("a single remaining key should live in a leaf root")
	}
	if !m.Erase(8) || !m.Empty() {
		t.Errorf("map should be empty after the last erase")
	}
}

// TestEraseInnerKey removes keys that sit in inner nodes, which are replaced
// by a neighbour from a subtree or merged away.
func TestEraseInnerKey(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lzend")
	defer teardown()

	m, err := NewMap[int32, int32](Config{Capacity: 4})
	if err != nil {
		t.Fatalf("NewMap failed: %v", err)
	}
	for k := int32(1); k <= 10; k++ {
		m.Insert(k, k)
	}
	// 1 is erased first so that an inner separator follows, then the
	// separators themselves.
	if !m.Erase(1) {
		t.Fatalf("Erase(1) should report true")
	}
	assertKeys(t, m, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	if !m.Erase(4) {
		t.Fatalf("Erase(4) should report true")
	}
	assertKeys(t, m, 2, 3, 5, 6, 7, 8, 9, 10)
	if !m.Erase(3) {
		t.Fatalf("Erase(3) should report true")
	}
	assertKeys(t, m, 2, 5, 6, 7, 8, 9, 10)
	for _, k := range []int32{6, 8, 2, 10, 5, 9, 7} {
		if !m.Erase(k) {
			t.Fatalf("Erase(%d) should report true", k)
		}
		if err := m.Check(); err != nil {
			t.Fatalf("after Erase(%d): %v", k, err)
		}
	}
	if !m.Empty() {
		t.Errorf("map should be empty, holds %d keys", m.Size())
	}
}

func TestValuesFollowKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lzend")
	defer teardown()

	m, err := NewMap[int32, string](Config{Capacity: 4})
	if err != nil {
		t.Fatalf("NewMap failed: %v", err)
	}
	words := strings.Fields("the quick brown fox jumps over the lazy dog again")
	for i, w := range words {
		m.Insert(int32(i*3), w)
	}
	for i, w := range words {
		if r := m.Find(int32(i * 3)); !r.Exists || r.Value != w {
			t.Errorf("Find(%d) = %+v, want %q", i*3, r, w)
		}
		if r := m.Predecessor(int32(i*3 + 1)); !r.Exists || r.Value != w {
			t.Errorf("Predecessor(%d) = %+v, want %q", i*3+1, r, w)
		}
	}
}

func TestDotOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lzend")
	defer teardown()

	m, err := NewMap[int32, int32](Config{Capacity: 4})
	if err != nil {
		t.Fatalf("NewMap failed: %v", err)
	}
	for k := int32(1); k <= 9; k++ {
		m.Insert(k, k)
	}
	var buf bytes.Buffer
	m.Dot(&buf)
	out := buf.String()
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Errorf("DOT output should open a digraph, got %q", out)
	}
	if !strings.Contains(out, "->") {
		t.Errorf("DOT output of a two-level tree should contain edges")
	}
}
