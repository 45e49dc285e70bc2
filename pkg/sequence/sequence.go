// Package sequence produces the integer inputs the trace generators consume:
// seeded random sequences and sequences parsed from user text.
package sequence

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Defaults mirror the playground: ten values drawn from 1..50.
const (
	DefaultSize = 10
	DefaultMin  = 1
	DefaultMax  = 50

	// MaxSize bounds generated sequences. Traces grow quadratically for the
	// simple sorts, so anything larger is unwatchable.
	MaxSize = 1024
)

// Sentinel errors.
var (
	ErrInvalidSize  = errors.New("sequence size out of range")
	ErrInvalidRange = errors.New("sequence min exceeds max")
	ErrParse        = errors.New("cannot parse sequence")
)

// Spec describes a random sequence.
type Spec struct {
	Size int
	Min  int
	Max  int
}

// DefaultSpec returns the playground defaults.
func DefaultSpec() Spec {
	return Spec{Size: DefaultSize, Min: DefaultMin, Max: DefaultMax}
}

// Validate checks that s describes a producible sequence.
func (s Spec) Validate() error {
	if s.Size < 0 || s.Size > MaxSize {
		return fmt.Errorf("%w: %d (want 0..%d)", ErrInvalidSize, s.Size, MaxSize)
	}

	if s.Min > s.Max {
		return fmt.Errorf("%w: %d > %d", ErrInvalidRange, s.Min, s.Max)
	}

	return nil
}

// NewRand returns a PCG source seeded with seed. A zero seed draws a fresh
// random seed.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}

	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Random draws spec.Size values uniformly from [spec.Min, spec.Max].
func Random(rng *rand.Rand, spec Spec) ([]int, error) {
	err := spec.Validate()
	if err != nil {
		return nil, err
	}

	// Unsigned arithmetic keeps wide ranges such as [-1, MaxInt] exact. A
	// zero span means the range covers every int.
	span := uint64(spec.Max) - uint64(spec.Min) + 1
	out := make([]int, spec.Size)

	for i := range out {
		var off uint64
		if span == 0 {
			off = rng.Uint64()
		} else {
			off = rng.Uint64N(span)
		}

		out[i] = int(uint64(spec.Min) + off)
	}

	return out, nil
}

// Parse reads integers separated by commas and/or whitespace, e.g.
// "5, 3 8,1". An empty or blank string yields an empty sequence.
func Parse(text string) ([]int, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	out := make([]int, 0, len(fields))

	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrParse, f)
		}

		out = append(out, v)
	}

	return out, nil
}

// Format renders values as a comma-separated list accepted by Parse.
func Format(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}
