package matcher

import (
	"log/slog"
	"time"

	"string-matcher/internal/generator"
	"string-matcher/internal/ui"
)

// DefaultProgressInterval is the number of attempts between progress lines
const DefaultProgressInterval = 1_000_000

// Option configures a Loop
type Option func(*Loop)

// WithPattern makes a candidate match when pattern accepts it,
// instead of requiring byte equality with the target
func WithPattern(p *generator.Pattern) Option {
	return func(l *Loop) {
		l.pattern = p
	}
}

// WithProgressInterval sets how many attempts pass between progress lines.
// Zero keeps the default.
func WithProgressInterval(n uint64) Option {
	return func(l *Loop) {
		if n > 0 {
			l.interval = n
		}
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(l *Loop) {
		if now != nil {
			l.now = now
		}
	}
}

// WithLogger sets the diagnostics logger
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithStyles sets the styles used for the match line
func WithStyles(s *ui.Styles) Option {
	return func(l *Loop) {
		if s != nil {
			l.styles = s
		}
	}
}
