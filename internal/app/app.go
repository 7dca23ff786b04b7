// Package app wires the analysis pipeline together: fetch sources,
// extract text, tokenize, analyze, render, and optionally persist. CLI
// concerns stay in cmd; everything here is callable from tests.
package app

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/stylo-cli/stylo/internal/counter"
	"github.com/stylo-cli/stylo/internal/drift"
	"github.com/stylo-cli/stylo/internal/extract"
	"github.com/stylo-cli/stylo/internal/fetch"
	"github.com/stylo-cli/stylo/internal/report"
	"github.com/stylo-cli/stylo/internal/spinner"
	"github.com/stylo-cli/stylo/internal/store"
	"github.com/stylo-cli/stylo/internal/tokenize"
)

// Format selects the output rendering.
type Format int

const (
	// Text is the human-readable sectioned report (default).
	Text Format = iota
	// JSON is indented JSON, the stable contract for downstream tools.
	JSON
)

// String returns the format name.
func (f Format) String() string {
	if f == JSON {
		return "json"
	}
	return "text"
}

// Config holds everything a drift analysis run needs.
type Config struct {
	Sources  []string     // file paths, URLs, or "-" for stdin
	Selector string       // optional CSS selector for HTML sources
	Drift    drift.Config // analysis parameters
	Format   Format
	SavePath string // history database path; empty disables persistence
	Quiet    bool   // suppress progress output on stderr
	Debug    bool
}

// Run executes a drift analysis and returns the rendered result.
//
// Pipeline: fetch and extract every source, tokenize the combined text,
// run drift detection, render, and save to history when configured.
// ctx cancels fetches and database writes.
func Run(ctx context.Context, cfg Config) (string, error) {
	if len(cfg.Sources) == 0 {
		return "", fmt.Errorf("no sources provided")
	}

	text, err := LoadText(ctx, cfg.Sources, cfg.Selector, cfg.Quiet)
	if err != nil {
		return "", err
	}

	tokens, err := tokenize.Words(text)
	if err != nil {
		return "", fmt.Errorf("tokenizing: %w", err)
	}
	slog.Debug("tokenized input", "tokens", len(tokens))

	result, err := drift.Detect(tokens, cfg.Drift)
	if err != nil {
		return "", fmt.Errorf("drift analysis: %w", err)
	}

	if cfg.SavePath != "" {
		id, err := saveResult(ctx, cfg.SavePath, sourceLabel(cfg.Sources), result)
		if err != nil {
			return "", err
		}
		if !cfg.Quiet {
			fmt.Fprintf(os.Stderr, "Saved analysis %s\n", id)
		}
	}

	var buf bytes.Buffer
	if cfg.Format == JSON {
		if err := report.JSON(&buf, result); err != nil {
			return "", fmt.Errorf("encoding result: %w", err)
		}
	} else {
		report.Drift(&buf, sourceLabel(cfg.Sources), counter.Describe(text), result)
	}
	return buf.String(), nil
}

// LoadText fetches and extracts every source and joins the results with
// blank lines. Sources that fail are reported on stderr and skipped; the
// call fails only when nothing could be extracted.
func LoadText(ctx context.Context, sources []string, selector string, quiet bool) (string, error) {
	var combined strings.Builder

	for _, source := range sources {
		text, err := loadSource(ctx, source, selector, quiet)
		if err != nil {
			if !quiet {
				fmt.Fprintf(os.Stderr, "Warning: failed to process source %q: %v\n", source, err)
			}
			continue
		}

		if combined.Len() > 0 {
			combined.WriteString("\n\n")
		}
		combined.WriteString(text)
	}

	if combined.Len() == 0 {
		return "", fmt.Errorf("no content extracted from any source")
	}
	return combined.String(), nil
}

func loadSource(ctx context.Context, source, selector string, quiet bool) (string, error) {
	if !quiet {
		sp := spinner.New(ctx, os.Stderr, fmt.Sprintf("Fetching %s...", source))
		sp.Start()
		defer sp.Stop()
	}

	data, err := fetch.ReadAll(ctx, source)
	if err != nil {
		return "", err
	}

	format := extract.DetectFormat(source, data)
	slog.Debug("extracting source", "source", source, "format", format.String(), "bytes", len(data))

	var baseURL *url.URL
	if fetch.IsURL(source) {
		baseURL, _ = url.Parse(source)
	}

	text, err := extract.ToText(data, format, selector, baseURL)
	if err != nil {
		return "", fmt.Errorf("extracting %q: %w", source, err)
	}
	return text, nil
}

func saveResult(ctx context.Context, path, source string, result *drift.Result) (string, error) {
	db, err := store.Open(path)
	if err != nil {
		return "", err
	}
	defer db.Close()

	id, err := db.Save(ctx, source, result)
	if err != nil {
		return "", err
	}
	slog.Debug("saved analysis", "id", id, "path", path)
	return id, nil
}

// sourceLabel names a run after its sources for reports and history.
func sourceLabel(sources []string) string {
	if len(sources) == 1 {
		if sources[0] == "-" {
			return "stdin"
		}
		return sources[0]
	}
	return fmt.Sprintf("%s (+%d more)", sources[0], len(sources)-1)
}
