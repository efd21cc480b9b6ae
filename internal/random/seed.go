// Package random provides cryptographic seed generation helpers.
//
// It uses crypto/rand to generate high-entropy seeds for the salts and
// pseudo-random sources that the substitution engine re-rolls at runtime.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// SeedFunc produces a fresh seed. Tests substitute fixed values.
type SeedFunc func() (int64, error)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Fixed returns a SeedFunc that always yields seed.
func Fixed(seed int64) SeedFunc {
	return func() (int64, error) { return seed, nil }
}

// NewRand returns a math/rand source seeded from seeds.
func NewRand(seeds SeedFunc) (*rand.Rand, error) {
	if seeds == nil {
		seeds = NewSeed
	}
	seed, err := seeds()
	if err != nil {
		return nil, err
	}
	return rand.New(rand.NewSource(seed)), nil
}
