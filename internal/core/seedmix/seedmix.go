// Package seedmix derives reproducible pseudo-random indexes from a subject
// handle and a process salt.
//
// # Algorithm
//
// The stream is SplitMix64 (Steele, Lea and Flood, 2014). The initial state is
// uint64(handle) + uint64(salt) with wrapping addition. Each call to Uint64
// advances the state by the golden gamma 0x9E3779B97F4A7C15 and returns
//
//	z = state
//	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
//	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
//	z ^ (z >> 31)
//
// Intn reduces with a plain modulo. The bias this introduces is below 2^-40
// for the table sizes used here.
//
// The output depends only on these integer operations, so it is identical on
// every platform and Go release, unlike math/rand sources.
package seedmix

const (
	gamma = 0x9E3779B97F4A7C15
	mulA  = 0xBF58476D1CE4E5B9
	mulB  = 0x94D049BB133111EB
)

// Stream is a SplitMix64 pseudo-random stream.
type Stream struct {
	state uint64
}

// Seed combines a subject handle with a salt into a stream seed.
func Seed(handle uint32, salt int64) uint64 {
	return uint64(handle) + uint64(salt)
}

// New returns a fresh stream for handle and salt. Two streams built from the
// same inputs produce the same sequence.
func New(handle uint32, salt int64) *Stream {
	return &Stream{state: Seed(handle, salt)}
}

// Uint64 returns the next value in the stream.
func (s *Stream) Uint64() uint64 {
	s.state += gamma
	z := s.state
	z = (z ^ (z >> 30)) * mulA
	z = (z ^ (z >> 27)) * mulB
	return z ^ (z >> 31)
}

// Intn returns a value in [0, n). It panics if n <= 0, like math/rand.
func (s *Stream) Intn(n int) int {
	if n <= 0 {
		panic("seedmix: invalid argument to Intn")
	}
	return int(s.Uint64() % uint64(n))
}
