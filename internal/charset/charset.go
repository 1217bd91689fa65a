// Package charset infers the sampling alphabet from a target string.
package charset

import (
	"errors"
	"strings"
)

const (
	Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	Digits  = "0123456789"
	Symbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// ErrEmptyAlphabet is returned when the target has no letter, digit or symbol
var ErrEmptyAlphabet = errors.New("target string does not contain any recognizable characters")

// Class is the character class a single byte belongs to
type Class int

const (
	ClassSpace Class = iota
	ClassLetter
	ClassDigit
	ClassSymbol
)

// Classes is a set of character classes found in a target
type Classes struct {
	Letters bool
	Digits  bool
	Symbols bool
}

// Empty reports whether no class was found
func (c Classes) Empty() bool {
	return !c.Letters && !c.Digits && !c.Symbols
}

// Classify returns the class of b. Anything that is neither
// whitespace nor an ASCII letter or digit is a symbol.
func Classify(b byte) Class {
	switch {
	case b == ' ' || (b >= '\t' && b <= '\r'):
		return ClassSpace
	case (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z'):
		return ClassLetter
	case b >= '0' && b <= '9':
		return ClassDigit
	default:
		return ClassSymbol
	}
}

// Scan collects the classes present in target
func Scan(target string) Classes {
	var c Classes
	for i := 0; i < len(target); i++ {
		switch Classify(target[i]) {
		case ClassLetter:
			c.Letters = true
		case ClassDigit:
			c.Digits = true
		case ClassSymbol:
			c.Symbols = true
		}
	}
	return c
}

// Alphabet is an immutable ordered set of unique bytes
type Alphabet struct {
	chars   string
	classes Classes
}

// Infer builds the alphabet for target. Each class present contributes
// its fixed sequence, in the order letters, digits, symbols.
func Infer(target string) (Alphabet, error) {
	classes := Scan(target)
	if classes.Empty() {
		return Alphabet{}, ErrEmptyAlphabet
	}

	var sb strings.Builder
	if classes.Letters {
		sb.WriteString(Letters)
	}
	if classes.Digits {
		sb.WriteString(Digits)
	}
	if classes.Symbols {
		sb.WriteString(Symbols)
	}

	return Alphabet{chars: sb.String(), classes: classes}, nil
}

// String returns the characters of the alphabet in order
func (a Alphabet) String() string { return a.chars }

// Len returns the number of characters
func (a Alphabet) Len() int { return len(a.chars) }

// At returns the i-th character
func (a Alphabet) At(i int) byte { return a.chars[i] }

// Classes returns the character classes the alphabet was built from
func (a Alphabet) Classes() Classes { return a.classes }

// Contains reports whether b can be produced from the alphabet
func (a Alphabet) Contains(b byte) bool {
	return strings.IndexByte(a.chars, b) >= 0
}

// Unreachable returns the distinct characters of target, in order of first
// appearance, that the alphabet cannot produce. Whitespace is ignored.
func (a Alphabet) Unreachable(target string) []string {
	var out []string
	seen := make(map[rune]bool)
	for _, r := range target {
		if r < 0x80 && (Classify(byte(r)) == ClassSpace || a.Contains(byte(r))) {
			continue
		}
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, string(r))
	}
	return out
}
