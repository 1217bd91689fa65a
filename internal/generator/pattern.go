package generator

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// MatchTimeout bounds every single pattern evaluation
const MatchTimeout = 100 * time.Millisecond

var (
	// ErrPatternRejected is returned for patterns that fail the complexity check
	ErrPatternRejected = errors.New("regex pattern rejected")
	// ErrInvalidPattern is returned for patterns that do not compile
	ErrInvalidPattern = errors.New("invalid regex pattern")
)

// Pattern decides whether a candidate counts as a match
type Pattern struct {
	re *regexp2.Regexp
}

// CompilePattern validates and compiles a regex used in place of exact
// comparison
func CompilePattern(expr string) (*Pattern, error) {
	if err := validateRegexComplexity(expr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPatternRejected, err)
	}

	re, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	// Set timeout protection against ReDoS attacks
	re.MatchTimeout = MatchTimeout
	return &Pattern{re: re}, nil
}

// String returns the source expression
func (p *Pattern) String() string {
	return p.re.String()
}

// Match reports whether candidate satisfies the pattern
func (p *Pattern) Match(candidate string) (bool, error) {
	return safeRegexMatch(p.re, candidate)
}

// validateRegexComplexity checks regex complexity to prevent potential ReDoS attacks
func validateRegexComplexity(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("empty pattern")
	}

	// Check length limit
	if len(pattern) > 200 {
		return fmt.Errorf("regex pattern too long (max 200 characters)")
	}

	// Check known dangerous patterns
	dangerousPatterns := []string{
		"(.*)*",       // Nested quantifiers
		"(.+)+",       // Nested quantifiers
		"(a+)+",       // Classic ReDoS pattern
		"(a*)*",       // Nested asterisks
		"(.{0,})*",    // Complex nesting
		"(\\w+)*\\w*", // Complex word matching
	}

	for _, dangerous := range dangerousPatterns {
		if strings.Contains(pattern, dangerous) {
			return fmt.Errorf("detected potentially dangerous regex pattern: %s", dangerous)
		}
	}

	quantifiers := strings.Count(pattern, "+") + strings.Count(pattern, "*")
	if quantifiers > 5 {
		return fmt.Errorf("too many quantifiers in regex pattern (max 5)")
	}

	return nil
}

// safeRegexMatch executes regex matching with timeout and error handling
func safeRegexMatch(regex *regexp2.Regexp, input string) (bool, error) {
	if regex.MatchTimeout == 0 {
		regex.MatchTimeout = MatchTimeout
	}

	match, err := regex.MatchString(input)
	if err != nil {
		return false, fmt.Errorf("regex matching failed for pattern '%s' with input '%s': %w", regex.String(), input, err)
	}

	return match, nil
}
