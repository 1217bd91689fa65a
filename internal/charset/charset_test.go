package charset_test

import (
	"testing"

	"string-matcher/internal/charset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfer(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"lowercase letters", "ab", charset.Letters},
		{"uppercase letters", "HELLO", charset.Letters},
		{"digits", "2024", charset.Digits},
		{"symbols", "!?", charset.Symbols},
		{"letters and digits", "a1", charset.Letters + charset.Digits},
		{"letters and symbols", "hi!", charset.Letters + charset.Symbols},
		{"digits and symbols", "1+1", charset.Digits + charset.Symbols},
		{"all classes", "Pa$$w0rd", charset.Letters + charset.Digits + charset.Symbols},
		{"spaces ignored", "  a  ", charset.Letters},
		{"backtick is a symbol", "`", charset.Symbols},
		{"non-ascii counts as symbol", "é", charset.Symbols},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alphabet, err := charset.Infer(tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, alphabet.String())
			assert.Equal(t, len(tt.want), alphabet.Len())
		})
	}
}

func TestInfer_SameSequenceEveryTime(t *testing.T) {
	first, err := charset.Infer("z9")
	require.NoError(t, err)
	second, err := charset.Infer("0a")
	require.NoError(t, err)
	assert.Equal(t, first.String(), second.String())
}

func TestInfer_EmptyAlphabet(t *testing.T) {
	for _, target := range []string{"", " ", "\t\n", "   \r\n\v\f "} {
		_, err := charset.Infer(target)
		assert.ErrorIs(t, err, charset.ErrEmptyAlphabet, "target %q", target)
	}
}

func TestClassSequences(t *testing.T) {
	assert.Len(t, charset.Letters, 52)
	assert.Len(t, charset.Digits, 10)
	assert.Len(t, charset.Symbols, 32)

	for i := 0; i < len(charset.Symbols); i++ {
		assert.Equal(t, charset.ClassSymbol, charset.Classify(charset.Symbols[i]))
	}
	for i := 0; i < len(charset.Letters); i++ {
		assert.Equal(t, charset.ClassLetter, charset.Classify(charset.Letters[i]))
	}
	for i := 0; i < len(charset.Digits); i++ {
		assert.Equal(t, charset.ClassDigit, charset.Classify(charset.Digits[i]))
	}
}

func TestAlphabet_UniqueCharacters(t *testing.T) {
	alphabet, err := charset.Infer("a1!")
	require.NoError(t, err)

	seen := make(map[byte]bool)
	for i := 0; i < alphabet.Len(); i++ {
		c := alphabet.At(i)
		assert.False(t, seen[c], "duplicate %q", c)
		seen[c] = true
	}
	assert.Len(t, seen, 94)
}

func TestAlphabet_Unreachable(t *testing.T) {
	alphabet, err := charset.Infer("café au lait")
	require.NoError(t, err)

	assert.Equal(t, []string{"é"}, alphabet.Unreachable("café au lait é"))

	letters, err := charset.Infer("abc")
	require.NoError(t, err)
	assert.Empty(t, letters.Unreachable("a b c"))
	assert.Equal(t, []string{"1"}, letters.Unreachable("a1"))
}
