// Package cli implements the analyze command: score text given on the
// command line or read line by line from a file.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/spacesedan/sentiscope/config"
	"github.com/spacesedan/sentiscope/internal/app"
	"github.com/spacesedan/sentiscope/internal/logging"
	"github.com/spacesedan/sentiscope/internal/models"
	"github.com/spacesedan/sentiscope/internal/sentiment"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// AnalyzerFactory builds the analyzer for cfg and a func releasing it.
type AnalyzerFactory func(ctx context.Context, cfg *config.Config) (sentiment.Analyzer, func(), error)

type options struct {
	texts   []string
	file    string
	backend string
	verbose bool
	json    bool
}

func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	return run(ctx, args, stdout, stderr, buildAnalyzer)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, factory AnalyzerFactory) int {
	opts, rest, err := parseFlags(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return ExitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitUsage
	}

	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	slog.SetDefault(logging.NewLogger(stderr, level))

	texts, err := collectTexts(opts, rest)
	if errors.Is(err, errUsage) {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitUsage
	}
	if err != nil {
		slog.Error("[CLI] Failed to read input", slog.String("error", err.Error()))
		return ExitError
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("[CLI] Failed to load config", slog.String("error", err.Error()))
		return ExitError
	}
	if opts.backend != "" {
		cfg.Backend = opts.backend
	}

	analyzer, release, err := factory(ctx, cfg)
	if err != nil {
		slog.Error("[CLI] Failed to build analyzer", slog.String("error", err.Error()))
		return ExitError
	}
	defer release()

	var progress sentiment.ProgressFunc
	if opts.verbose {
		progress = func(done, total int, r models.SentimentResult) {
			slog.Info("[CLI] Analyzed text",
				slog.Int("done", done),
				slog.Int("total", total),
				slog.String("sentiment", r.Sentiment))
		}
	}

	results := sentiment.AnalyzeBatch(ctx, analyzer, texts, progress)
	if err := writeResults(stdout, results, opts.json); err != nil {
		slog.Error("[CLI] Failed to write results", slog.String("error", err.Error()))
		return ExitError
	}

	return ExitOK
}

func parseFlags(args []string, stderr io.Writer) (options, []string, error) {
	var opts options

	fs := pflag.NewFlagSet("analyze", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringArrayVarP(&opts.texts, "text", "t", nil, "text to analyze; repeated values and trailing arguments are joined with spaces")
	fs.StringVarP(&opts.file, "file", "f", "", "path to a file with one text per line")
	fs.StringVarP(&opts.backend, "backend", "b", "", "analyzer backend: local or remote (default from ANALYZER_BACKEND)")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log progress and debug output to stderr")
	fs.BoolVarP(&opts.json, "json", "j", false, "print one JSON object per result")

	if err := fs.Parse(args); err != nil {
		return opts, nil, err
	}

	switch opts.backend {
	case "", config.BackendLocal, config.BackendRemote:
	default:
		return opts, nil, fmt.Errorf("--backend must be %q or %q", config.BackendLocal, config.BackendRemote)
	}

	return opts, fs.Args(), nil
}

var errUsage = errors.New("exactly one of --text or --file is required")

func collectTexts(opts options, rest []string) ([]string, error) {
	hasText := len(opts.texts) > 0
	hasFile := opts.file != ""
	if hasText == hasFile {
		return nil, errUsage
	}

	if hasText {
		parts := append(append([]string{}, opts.texts...), rest...)
		return []string{strings.Join(parts, " ")}, nil
	}

	return readLines(opts.file)
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return lines, nil
}

func writeResults(w io.Writer, results []models.SentimentResult, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	}

	for i, r := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "Text:       %s\nSentiment:  %s\nConfidence: %s\n",
			r.Text, r.Sentiment, sentiment.FormatScore(r.Confidence))
		if err != nil {
			return err
		}
	}
	return nil
}

func buildAnalyzer(ctx context.Context, cfg *config.Config) (sentiment.Analyzer, func(), error) {
	analyzer, cache, err := app.Build(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return analyzer, cache.Close, nil
}
