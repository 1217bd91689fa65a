// Package format renders counts, odds and durations for the console report.
package format

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type unit struct {
	value  float64
	suffix string
}

// Short-scale ladder, largest first.
var units = []unit{
	{1e18, "Qi"},
	{1e15, "Qa"},
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

var printer = message.NewPrinter(language.English)

// WithCommas renders n as an integer with thousands separators
func WithCommas(n int64) string {
	return printer.Sprintf("%d", n)
}

// Magnitude abbreviates n. Values below 1,000 are rendered as exact
// integers, larger ones with three decimals and a K/M/B/T/Qa/Qi suffix.
func Magnitude(n float64) string {
	switch {
	case math.IsNaN(n):
		return "nan"
	case math.IsInf(n, 0):
		return "inf"
	}

	for _, u := range units {
		if n >= u.value {
			return fmt.Sprintf("%.3f%s", n/u.value, u.suffix)
		}
	}
	return WithCommas(int64(n))
}

// Count abbreviates an attempt counter
func Count(n uint64) string {
	return Magnitude(float64(n))
}

// Odds renders the chance of a single attempt succeeding out of
// combinations equally likely outcomes
func Odds(combinations float64) string {
	if combinations > 0 && combinations < 1 {
		combinations = 1 / combinations
	}
	if !math.IsInf(combinations, 0) {
		combinations = math.Trunc(combinations)
	}
	return "1 in " + Magnitude(combinations)
}

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerYear   = 365 * secondsPerDay
)

// Duration renders seconds as "<y>y <d>d <h>h <m>m <s>s", starting at the
// highest non-zero unit. Seconds are always shown.
func Duration(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	rest := int64(seconds)

	years := rest / secondsPerYear
	rest %= secondsPerYear
	days := rest / secondsPerDay
	rest %= secondsPerDay
	hours := rest / secondsPerHour
	rest %= secondsPerHour
	minutes := rest / secondsPerMinute
	secs := rest % secondsPerMinute

	parts := make([]string, 0, 5)
	leading := false
	for _, p := range []struct {
		v      int64
		suffix string
	}{
		{years, "y"},
		{days, "d"},
		{hours, "h"},
		{minutes, "m"},
	} {
		if p.v > 0 {
			leading = true
		}
		if leading {
			parts = append(parts, fmt.Sprintf("%d%s", p.v, p.suffix))
		}
	}
	parts = append(parts, fmt.Sprintf("%ds", secs))

	return strings.Join(parts, " ")
}

// Rate returns whole attempts per second. Zero elapsed time gives 0.
func Rate(attempts uint64, seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	return math.Trunc(float64(attempts) / seconds)
}
