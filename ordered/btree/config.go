package btree

import "fmt"

const (
	// DefaultCapacity is the node capacity used when a Config leaves it zero.
	DefaultCapacity = 64

	// maxBranching bounds the branching factor (capacity+1).
	maxBranching = 1 << 16
)

// Config configures a Map.
type Config struct {
	// Capacity is the maximum number of keys a node can hold. It must be
	// even, so that the branching factor capacity+1 is odd, and at least 4:
	// splits keep capacity/2-1 keys in the left half, which must not leave
	// a node empty.
	Capacity int
}

func (cfg Config) normalized() Config {
	if cfg.Capacity == 0 {
		cfg.Capacity = DefaultCapacity
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.Capacity < 4 {
		return fmt.Errorf("%w: node capacity must be at least 4", ErrInvalidConfig)
	}
	if cfg.Capacity%2 != 0 {
		return fmt.Errorf("%w: node capacity must be even", ErrInvalidConfig)
	}
	if cfg.Capacity+1 >= maxBranching {
		return fmt.Errorf("%w: branching factor must be below %d", ErrInvalidConfig, maxBranching)
	}
	return nil
}
