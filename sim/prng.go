package sim

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"strings"
)

// ErrInvalidRange indicates Int was called with an empty range.
var ErrInvalidRange = errors.New("max must be greater than min")

// PRNG is a deterministic pseudo-random source. Two instances built from the
// same seed key produce the identical output sequence on any platform.
//
// A PRNG is not safe for concurrent use; each simulation owns its own.
type PRNG struct {
	key string
	src *rand.Rand
}

// NewPRNG creates a deterministic PRNG from a seed key. Sub-streams are
// derived by composing a new key (see StreamKey) and feeding it back through
// this constructor: "match:42" and "shot:42" yield unrelated sequences.
func NewPRNG(seed string) *PRNG {
	return &PRNG{
		key: seed,
		src: rand.New(rand.NewPCG(seedWord(seed, "hi"), seedWord(seed, "lo"))),
	}
}

// NewPRNGFromInt creates a PRNG from a numeric seed. The stream is keyed
// separately from string seeds, so NewPRNGFromInt(42) and NewPRNG("42") are
// each reproducible but need not collide.
func NewPRNGFromInt(seed int64) *PRNG {
	return NewPRNG(fmt.Sprintf("int:%d", seed))
}

// StreamKey composes a sub-stream key as "<domain>:<part>:<part>...".
func StreamKey(domain string, parts ...string) string {
	return strings.Join(append([]string{domain}, parts...), ":")
}

func seedWord(seed, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	_, _ = h.Write([]byte{':'})
	_, _ = h.Write([]byte(salt))
	return h.Sum64()
}

// Key returns the seed key this PRNG was built from.
func (p *PRNG) Key() string {
	return p.key
}

// Next returns the next value in [0, 1).
func (p *PRNG) Next() float64 {
	return p.src.Float64()
}

// Int returns a uniformly distributed integer in [min, max). It returns
// ErrInvalidRange when max <= min; the error is fatal for the caller and is
// never retried internally.
func (p *PRNG) Int(min, max int) (int, error) {
	if max <= min {
		return 0, fmt.Errorf("int draw [%d, %d): %w", min, max, ErrInvalidRange)
	}
	return min + p.src.IntN(max-min), nil
}

// intn draws from [min, max) where the bounds are known valid at the call
// site. All engine call sites pass constant non-empty ranges.
func (p *PRNG) intn(min, max int) int {
	v, err := p.Int(min, max)
	if err != nil {
		// Unreachable with constant valid bounds.
		panic(err)
	}
	return v
}
