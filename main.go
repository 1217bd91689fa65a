package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"string-matcher/internal/charset"
	"string-matcher/internal/config"
	"string-matcher/internal/generator"
	"string-matcher/internal/matcher"
	"string-matcher/internal/types"
	"string-matcher/internal/ui"

	"github.com/mattn/go-isatty"
)

const version = "v1.0.0"

// ExitError carries the process exit code for a failed run
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func printHelp(w io.Writer, flagSet *flag.FlagSet) {
	fmt.Fprintln(w, "String Matcher - generate random strings until one matches the target")
	fmt.Fprintln(w, "\nUsage:")
	fmt.Fprintln(w, "  strmatch [options] [TARGET]")
	fmt.Fprintln(w, "\nIf TARGET is omitted it is read from standard input.")
	fmt.Fprintln(w, "\nOptions:")
	flagSet.PrintDefaults()
	fmt.Fprintln(w, "\nExamples:")
	fmt.Fprintln(w, "  1. Match a short word:")
	fmt.Fprintln(w, "     strmatch ab")
	fmt.Fprintln(w, "\n  2. Stop at the first of several words:")
	fmt.Fprintln(w, "     strmatch -words \"cat dog\"")
	fmt.Fprintln(w, "\n  3. Accept any 3 letter candidate starting with c:")
	fmt.Fprintln(w, "     strmatch -r \"^c\" abc")
	fmt.Fprintln(w, "\n  4. Use config file:")
	fmt.Fprintln(w, "     strmatch -config config.toml hello")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, interactive); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, ui.NewStyles(os.Stderr).Error(exitErr.Message))
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run holds everything main does apart from process exit
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, interactive bool) error {
	flagSet := flag.NewFlagSet("strmatch", flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Usage = func() { printHelp(stderr, flagSet) }

	words := flagSet.Bool("words", false, "Match any of the whitespace-separated words of the target")
	pattern := flagSet.String("r", "", "Accept any candidate matching this regex instead of the exact target")
	progress := flagSet.Uint64("progress", config.DefaultProgressInterval, "Attempts between progress lines")
	configPath := flagSet.String("config", "", "Path to config file")
	banner := flagSet.Bool("banner", false, "Show the start banner")
	pause := flagSet.Bool("pause", false, "Wait for Enter before exiting (terminal only)")
	logLevel := flagSet.String("log-level", "warn", "Diagnostics level: 'debug', 'info', 'warn' or 'error'")
	logFormat := flagSet.String("log-format", "text", "Diagnostics format: 'text' or 'json'")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &ExitError{Code: 2, Message: err.Error()}
	}

	appConfig := config.Default()
	if *configPath != "" {
		var err error
		appConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			return &ExitError{Code: 2, Message: fmt.Sprintf("Error loading config file: %v", err)}
		}
	}

	// Explicitly set flags override the config file
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "words":
			if *words {
				appConfig.Match.Mode = types.TargetModeWords.String()
			} else {
				appConfig.Match.Mode = types.TargetModeSingle.String()
			}
		case "r":
			appConfig.Match.Pattern = *pattern
		case "progress":
			appConfig.Match.ProgressInterval = *progress
		case "banner":
			appConfig.Output.Banner = *banner
		case "pause":
			appConfig.Output.PauseOnExit = *pause
		case "log-level":
			appConfig.Log.Level = strings.ToLower(*logLevel)
		case "log-format":
			appConfig.Log.Format = strings.ToLower(*logFormat)
		}
	})

	if err := config.Validate(appConfig); err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}

	logger := newLogger(appConfig.Log.Level, appConfig.Log.Format, stderr)
	logger.Debug("configuration resolved", "config_file", *configPath, "mode", appConfig.Match.Mode,
		"progress_interval", appConfig.Match.ProgressInterval)

	mode, _ := types.ParseTargetMode(appConfig.Match.Mode)
	styles := ui.NewStyles(stdout)

	opts := []matcher.Option{
		matcher.WithProgressInterval(appConfig.Match.ProgressInterval),
		matcher.WithLogger(logger),
		matcher.WithStyles(styles),
	}
	if appConfig.Match.Pattern != "" {
		p, err := generator.CompilePattern(appConfig.Match.Pattern)
		if err != nil {
			return &ExitError{Code: 2, Message: err.Error()}
		}
		opts = append(opts, matcher.WithPattern(p))
	}

	if appConfig.Output.Banner {
		fmt.Fprintln(stdout, styles.Banner(version))
		fmt.Fprintln(stdout)
	}

	reader := bufio.NewReader(stdin)

	var input string
	if flagSet.NArg() > 0 {
		input = strings.Join(flagSet.Args(), " ")
	} else {
		fmt.Fprint(stdout, "Enter target to match: ")
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading target: %w", err)
		}
		input = strings.TrimRight(line, "\r\n")
	}

	loop, err := matcher.New(input, mode, generator.NewSource(), stdout, opts...)
	if err != nil {
		if errors.Is(err, charset.ErrEmptyAlphabet) {
			return &ExitError{Code: 1, Message: "Target string does not contain any recognizable characters."}
		}
		return err
	}

	res, err := loop.Run(ctx)
	if err != nil {
		if errors.Is(err, matcher.ErrInterrupted) {
			return &ExitError{Code: 130, Message: "Interrupted."}
		}
		return err
	}
	logger.Debug("run finished", "target", res.Target, "attempts", res.Attempts, "elapsed", res.Elapsed)

	if appConfig.Output.PauseOnExit && interactive {
		fmt.Fprintln(stdout, "Press Enter to exit...")
		_, _ = reader.ReadString('\n')
	}

	return nil
}

// newLogger builds the diagnostics logger. It does not replace the
// global logger.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}
