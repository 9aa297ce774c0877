package rangemark

import (
	"math/rand"
	"sort"
	"strconv"
	"testing"
)

// How to run:
//   - Deterministic randomized property test:
//     go test ./ordered/rangemark -run TestRandomOpsMatchModel -count=1
//   - Fuzz test for this file:
//     go test ./ordered/rangemark -run '^$' -fuzz FuzzRandomOpsMatchModel -fuzztime=10s
//   - Replay a specific saved failing input:
//     go test ./ordered/rangemark -run 'FuzzRandomOpsMatchModel/<id>'

// model is the reference implementation: a sorted key slice plus a hash map
// for the values.
type model struct {
	keys   []int32
	values map[int32]int32
}

func newModel() *model {
	return &model{values: make(map[int32]int32)}
}

func (md *model) insert(key, value int32) {
	i := sort.Search(len(md.keys), func(i int) bool { return md.keys[i] >= key })
	md.keys = append(md.keys, 0)
	copy(md.keys[i+1:], md.keys[i:])
	md.keys[i] = key
	md.values[key] = value
}

func (md *model) erase(key int32) bool {
	if _, ok := md.values[key]; !ok {
		return false
	}
	i := sort.Search(len(md.keys), func(i int) bool { return md.keys[i] >= key })
	md.keys = append(md.keys[:i], md.keys[i+1:]...)
	delete(md.values, key)
	return true
}

func (md *model) contains(key int32) bool {
	_, ok := md.values[key]
	return ok
}

// predecessor returns the largest key not greater than x, or false.
func (md *model) predecessor(x int32) (int32, bool) {
	i := sort.Search(len(md.keys), func(i int) bool { return md.keys[i] > x })
	if i == 0 {
		return 0, false
	}
	return md.keys[i-1], true
}

// successor returns the smallest key not less than x, or false.
func (md *model) successor(x int32) (int32, bool) {
	i := sort.Search(len(md.keys), func(i int) bool { return md.keys[i] >= x })
	if i == len(md.keys) {
		return 0, false
	}
	return md.keys[i], true
}

func (md *model) randomKey(r *rand.Rand) int32 {
	return md.keys[r.Intn(len(md.keys))]
}

// checkAgainstModel compares the map's answers for a single query key with
// the model's, and re-issues each directional query: lookups must not
// mutate the map, so identical calls answer identically. For keys outside
// the universe the clamped answers coincide with the model's, as long as
// the model never holds out-of-universe keys.
func checkAgainstModel(t *testing.T, m *Map[int32, int32], md *model, x int32) {
	t.Helper()
	if got, want := m.Contains(x), md.contains(x); got != want {
		t.Fatalf("Contains(%d) = %v, model says %v", x, got, want)
	}
	r := m.Predecessor(x)
	key, ok := md.predecessor(x)
	if r.Exists != ok || (ok && r.Key != key) {
		t.Fatalf("Predecessor(%d) = %+v, model finds (%d,%v)", x, r, key, ok)
	}
	if ok && r.Value != md.values[key] {
		t.Fatalf("Predecessor(%d) value = %d, model holds %d", x, r.Value, md.values[key])
	}
	if again := m.Predecessor(x); again != r {
		t.Fatalf("Predecessor(%d) answered %+v, asked again %+v", x, r, again)
	}
	r = m.Successor(x)
	key, ok = md.successor(x)
	if r.Exists != ok || (ok && r.Key != key) {
		t.Fatalf("Successor(%d) = %+v, model finds (%d,%v)", x, r, key, ok)
	}
	if ok && r.Value != md.values[key] {
		t.Fatalf("Successor(%d) value = %d, model holds %d", x, r.Value, md.values[key])
	}
	if again := m.Successor(x); again != r {
		t.Fatalf("Successor(%d) answered %+v, asked again %+v", x, r, again)
	}
}

func runRandomMapOps(t *testing.T, seed uint64, steps, bucketCapacity int) {
	t.Helper()
	r := rand.New(rand.NewSource(int64(seed)))
	keyRange := int32(steps) // dense enough to make collisions and gaps common
	m, err := NewMap[int32, int32](keyRange, Config{BucketCapacity: bucketCapacity})
	if err != nil {
		t.Fatalf("NewMap failed: %v", err)
	}
	md := newModel()

	for step := 0; step < steps; step++ {
		switch r.Intn(4) {
		case 0, 1: // insert a fresh key
			key := r.Int31n(keyRange)
			if md.contains(key) {
				continue
			}
			value := r.Int31()
			m.Insert(key, value)
			md.insert(key, value)
		case 2: // erase a contained key
			if len(md.keys) == 0 {
				continue
			}
			key := md.randomKey(r)
			if !m.Erase(key) {
				t.Fatalf("Erase(%d) reported false for a contained key", key)
			}
			md.erase(key)
		case 3: // erase a key that may be missing
			key := r.Int31n(keyRange)
			if got, want := m.Erase(key), md.erase(key); got != want {
				t.Fatalf("Erase(%d) = %v, model says %v", key, got, want)
			}
		}
		if err := m.Check(); err != nil {
			t.Fatalf("after step %d: %v", step, err)
		}
		if m.Size() != len(md.keys) {
			t.Fatalf("Size() = %d, model holds %d keys", m.Size(), len(md.keys))
		}
		checkAgainstModel(t, m, md, r.Int31n(keyRange))
		checkAgainstModel(t, m, md, -1)
		checkAgainstModel(t, m, md, keyRange)
		if len(md.keys) > 0 {
			checkAgainstModel(t, m, md, md.randomKey(r))
			if m.Min().Key != md.keys[0] || m.Max().Key != md.keys[len(md.keys)-1] {
				t.Fatalf("Min/Max = %d/%d, model has %d/%d",
					m.Min().Key, m.Max().Key, md.keys[0], md.keys[len(md.keys)-1])
			}
		} else if m.Min().Exists || m.Max().Exists {
			t.Fatalf("empty map should have no minimum or maximum")
		}
	}
}

func TestRandomOpsMatchModel(t *testing.T) {
	seeds := []uint64{1, 2, 3, 7, 42, 99, 31337, 123456789}
	for _, seed := range seeds {
		t.Run("seed_"+strconv.FormatUint(seed, 10), func(t *testing.T) {
			runRandomMapOps(t, seed, 300, 64)
			runRandomMapOps(t, seed, 300, 128)
			runRandomMapOps(t, seed, 120, DefaultBucketCapacity)
		})
	}
}

func FuzzRandomOpsMatchModel(f *testing.F) {
	f.Add(uint64(1), uint8(64), uint8(0))
	f.Add(uint64(7), uint8(128), uint8(1))
	f.Add(uint64(42), uint8(200), uint8(3))
	f.Fuzz(func(t *testing.T, seed uint64, steps, capacityShift uint8) {
		c := minBucketCapacity << (capacityShift % 4) // 64 .. 512
		runRandomMapOps(t, seed, int(steps)+1, c)
	})
}
