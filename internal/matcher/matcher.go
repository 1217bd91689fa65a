// Package matcher drives random generation attempts against one or more
// target strings until a candidate matches.
//
// A Loop moves through three states: Idle after construction, Running once
// Run is entered and Found when a candidate matches. The alphabet is checked
// in New, so a Loop that exists can always reach Found given enough time.
package matcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"string-matcher/internal/charset"
	"string-matcher/internal/format"
	"string-matcher/internal/generator"
	"string-matcher/internal/types"
	"string-matcher/internal/ui"
)

// ErrInterrupted is returned by Run when its context is cancelled before a match
var ErrInterrupted = errors.New("interrupted before a match was found")

// State is the lifecycle position of a Loop
type State int

const (
	StateIdle State = iota
	StateRunning
	StateFound
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateFound:
		return "found"
	default:
		return "unknown"
	}
}

// ParseTargets turns raw input into targets. Single mode strips all
// whitespace. Words mode keeps each distinct whitespace-separated word
// once, in order of first appearance.
func ParseTargets(input string, mode types.TargetMode) []string {
	words := strings.Fields(input)
	if mode == types.TargetModeSingle {
		if len(words) == 0 {
			return nil
		}
		return []string{strings.Join(words, "")}
	}

	seen := make(map[string]struct{}, len(words))
	targets := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		targets = append(targets, w)
	}
	return targets
}

// Loop owns the generator, the attempt counter and the clock of one run
type Loop struct {
	mode     types.TargetMode
	targets  []string
	alphabet charset.Alphabet
	gen      *generator.Generator
	out      io.Writer

	pattern  *generator.Pattern
	interval uint64
	now      func() time.Time
	logger   *slog.Logger
	styles   *ui.Styles

	state    State
	attempts uint64
	start    time.Time
}

// New parses input into targets and infers the alphabet from them.
// It fails with charset.ErrEmptyAlphabet when there is nothing to match.
func New(input string, mode types.TargetMode, src generator.IndexSource, out io.Writer, opts ...Option) (*Loop, error) {
	targets := ParseTargets(input, mode)

	alphabet, err := charset.Infer(strings.Join(targets, ""))
	if err != nil {
		return nil, err
	}

	l := &Loop{
		mode:     mode,
		targets:  targets,
		alphabet: alphabet,
		gen:      generator.New(alphabet, src),
		out:      out,
		interval: DefaultProgressInterval,
		now:      time.Now,
		logger:   slog.Default(),
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.styles == nil {
		l.styles = ui.NewStyles(out)
	}

	classes := alphabet.Classes()
	l.logger.Debug("alphabet inferred",
		"size", alphabet.Len(),
		"letters", classes.Letters,
		"digits", classes.Digits,
		"symbols", classes.Symbols,
		"targets", len(targets),
	)

	return l, nil
}

// Targets returns the effective targets
func (l *Loop) Targets() []string {
	return append([]string(nil), l.targets...)
}

// Alphabet returns the inferred alphabet
func (l *Loop) Alphabet() charset.Alphabet { return l.alphabet }

// State returns the current lifecycle state
func (l *Loop) State() State { return l.state }

// Attempts returns the number of generate-compare cycles executed so far
func (l *Loop) Attempts() uint64 { return l.attempts }

// Run generates candidates until one matches or ctx is cancelled. It may run
// indefinitely for long targets. Run can only be called once.
func (l *Loop) Run(ctx context.Context) (types.Result, error) {
	if l.state != StateIdle {
		return types.Result{}, fmt.Errorf("matcher: run called in state %s", l.state)
	}

	l.announce()

	bufs := make([][]byte, len(l.targets))
	for i, t := range l.targets {
		bufs[i] = make([]byte, len(t))
	}

	done := ctx.Done()
	l.state = StateRunning
	l.start = l.now()
	l.attempts = 0

	for {
		for i, target := range l.targets {
			select {
			case <-done:
				l.logger.Warn("run interrupted", "attempts", l.attempts)
				l.summary()
				return l.result("", "", false), ErrInterrupted
			default:
			}

			buf := bufs[i]
			l.gen.Fill(buf)
			l.attempts++

			found := l.matches(buf, target)
			if found {
				fmt.Fprintf(l.out, "%s at attempt %s\n",
					l.styles.Match("Match found: "+string(buf)), format.Count(l.attempts))
			}

			if l.attempts%l.interval == 0 {
				l.progress()
			}

			if found {
				l.state = StateFound
				l.summary()
				return l.result(target, string(buf), true), nil
			}
		}
	}
}

func (l *Loop) matches(candidate []byte, target string) bool {
	if l.pattern == nil {
		return string(candidate) == target
	}

	ok, err := l.pattern.Match(string(candidate))
	if err != nil {
		l.logger.Debug("pattern evaluation failed", "error", err)
		return false
	}
	return ok
}

func (l *Loop) announce() {
	if unreachable := l.alphabet.Unreachable(strings.Join(l.targets, "")); len(unreachable) > 0 && l.pattern == nil {
		l.logger.Warn("target contains characters that can never be generated",
			"characters", strings.Join(unreachable, ""))
	}

	if l.mode == types.TargetModeSingle && l.pattern == nil {
		combinations := generator.CalculateCombinations(l.alphabet.Len(), len(l.targets[0]))
		fmt.Fprintf(l.out, "Odds of finding the string in 1 attempt: %s\n", format.Odds(combinations))
	}

	quoted := make([]string, len(l.targets))
	for i, t := range l.targets {
		quoted[i] = fmt.Sprintf("%q", t)
	}

	switch {
	case l.mode == types.TargetModeWords:
		fmt.Fprintf(l.out, "Attempting to match any of %d words: %s\n", len(l.targets), strings.Join(quoted, ", "))
	default:
		fmt.Fprintf(l.out, "Attempting to match string %s\n", quoted[0])
	}

	if l.pattern != nil {
		fmt.Fprintf(l.out, "Accepting any candidate that matches pattern %q\n", l.pattern.String())
	}
}

func (l *Loop) elapsed() time.Duration {
	return l.now().Sub(l.start)
}

func (l *Loop) progress() {
	fmt.Fprintf(l.out, "Generated %s attempts in %s.\n",
		format.Count(l.attempts), format.Duration(l.elapsed().Seconds()))
}

func (l *Loop) summary() {
	elapsed := l.elapsed().Seconds()
	fmt.Fprintf(l.out, "Generated %s attempts in %s.\n", format.Count(l.attempts), format.Duration(elapsed))
	fmt.Fprintf(l.out, "Rate: %s attempts per second.\n", format.Magnitude(format.Rate(l.attempts, elapsed)))
}

func (l *Loop) result(target, match string, found bool) types.Result {
	return types.Result{
		Target:   target,
		Match:    match,
		Attempts: l.attempts,
		Elapsed:  l.elapsed(),
		Found:    found,
	}
}
