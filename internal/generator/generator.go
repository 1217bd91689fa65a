package generator

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math"
	"math/rand/v2"

	"string-matcher/internal/charset"
)

// IndexSource yields uniformly distributed indexes in [0, n).
// *rand.Rand satisfies it.
type IndexSource interface {
	IntN(n int) int
}

// NewSource returns a fast, non-cryptographic generator seeded from the OS
// entropy source. Every call gives a different sequence.
func NewSource() *rand.Rand {
	var seed [16]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		panic(err)
	}
	return rand.New(rand.NewPCG(binary.LittleEndian.Uint64(seed[:8]), binary.LittleEndian.Uint64(seed[8:])))
}

// NewSeededSource returns a reproducible generator for tests and benchmarks
func NewSeededSource(seed1, seed2 uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed1, seed2))
}

// Generator produces fixed-length strings sampled uniformly, with
// replacement, from an alphabet
type Generator struct {
	alphabet charset.Alphabet
	src      IndexSource
}

// New returns a generator over alphabet. The alphabet must not be empty.
func New(alphabet charset.Alphabet, src IndexSource) *Generator {
	if alphabet.Len() == 0 {
		panic("generator: empty alphabet")
	}
	return &Generator{alphabet: alphabet, src: src}
}

// Fill overwrites every byte of buf with a random alphabet character
func (g *Generator) Fill(buf []byte) {
	n := g.alphabet.Len()
	for i := range buf {
		buf[i] = g.alphabet.At(g.src.IntN(n))
	}
}

// Generate returns a new random string of exactly length characters
func (g *Generator) Generate(length int) string {
	if length <= 0 {
		return ""
	}
	buf := make([]byte, length)
	g.Fill(buf)
	return string(buf)
}

// CalculateCombinations returns alphabetSize^length, the number of distinct
// strings of that length. Large results lose precision and overflow to +Inf.
func CalculateCombinations(alphabetSize, length int) float64 {
	return math.Pow(float64(alphabetSize), float64(length))
}
