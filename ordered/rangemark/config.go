package rangemark

import (
	"fmt"
	"math/bits"
)

const (
	// DefaultBucketCapacity is the bucket width used when a Config leaves
	// it zero.
	DefaultBucketCapacity = 1024

	// minBucketCapacity keeps a bucket at no less than one bit-vector word.
	minBucketCapacity = 64
)

// Config configures a Map.
type Config struct {
	// BucketCapacity is the number of keys a bucket covers. It must be a
	// power of two and at least 64, so that key-to-bucket arithmetic stays
	// in shifts and a bucket spans whole bit-vector words.
	BucketCapacity int
}

func (cfg Config) normalized() Config {
	if cfg.BucketCapacity == 0 {
		cfg.BucketCapacity = DefaultBucketCapacity
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.BucketCapacity < minBucketCapacity {
		return fmt.Errorf("%w: bucket capacity must be at least %d",
			ErrInvalidConfig, minBucketCapacity)
	}
	if bits.OnesCount(uint(cfg.BucketCapacity)) != 1 {
		return fmt.Errorf("%w: bucket capacity must be a power of two", ErrInvalidConfig)
	}
	return nil
}
