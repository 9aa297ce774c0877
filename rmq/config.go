package rmq

import "fmt"

const (
	// DefaultBlockSize is the block width used when a Config leaves it zero.
	DefaultBlockSize = 64
)

// Direction selects whether a table reports range minima or range maxima.
type Direction int8

const (
	// Min makes queries report the leftmost minimum of a range.
	Min Direction = iota
	// Max makes queries report the leftmost maximum of a range.
	Max
)

func (dir Direction) String() string {
	if dir == Max {
		return "max"
	}
	return "min"
}

// Config configures a query table.
type Config struct {
	// BlockSize is the width of the first-level blocks. Queries spanning no
	// more than 3*BlockSize values are answered by a direct scan.
	BlockSize int
	// Direction selects minimum or maximum queries. The zero value is Min.
	Direction Direction
}

func (cfg Config) normalized() Config {
	if cfg.BlockSize == 0 {
		cfg.BlockSize = DefaultBlockSize
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.BlockSize < 1 {
		return fmt.Errorf("%w: block size must be positive", ErrInvalidConfig)
	}
	if cfg.Direction != Min && cfg.Direction != Max {
		return fmt.Errorf("%w: unknown query direction", ErrInvalidConfig)
	}
	return nil
}
