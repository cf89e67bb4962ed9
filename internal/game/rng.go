package game

import "math/rand"

// Xoshiro is a xoshiro256** generator whose state is four plain words, so it
// serializes with the rest of the game state and replays byte-identically.
// It implements math/rand.Source64.
type Xoshiro struct {
	S [4]uint64 `json:"s"`
}

// NewXoshiro seeds a generator using splitmix64, the reference seeding
// procedure for the xoshiro family.
func NewXoshiro(seed uint64) Xoshiro {
	var x Xoshiro
	sm := seed
	for i := range x.S {
		sm += 0x9e3779b97f4a7c15
		z := sm
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		x.S[i] = z ^ (z >> 31)
	}
	return x
}

func rotl(x uint64, k uint) uint64 {
	return (x << k) | (x >> (64 - k))
}

// Uint64 advances the generator.
func (x *Xoshiro) Uint64() uint64 {
	result := rotl(x.S[1]*5, 7) * 9
	t := x.S[1] << 17

	x.S[2] ^= x.S[0]
	x.S[3] ^= x.S[1]
	x.S[1] ^= x.S[2]
	x.S[0] ^= x.S[3]
	x.S[2] ^= t
	x.S[3] = rotl(x.S[3], 45)

	return result
}

func (x *Xoshiro) Int63() int64 {
	return int64(x.Uint64() >> 1)
}

// Seed re-seeds the generator in place.
func (x *Xoshiro) Seed(seed int64) {
	*x = NewXoshiro(uint64(seed))
}

// Intn returns a uniform value in [0, n). Panics if n <= 0, matching
// math/rand semantics.
func (x *Xoshiro) Intn(n int) int {
	return rand.New(x).Intn(n)
}

// Shuffle permutes n elements using the swap function.
func (x *Xoshiro) Shuffle(n int, swap func(i, j int)) {
	rand.New(x).Shuffle(n, swap)
}
