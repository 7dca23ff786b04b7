// Package report renders analysis results for humans and machines.
//
// The text renderers follow one layout: a heavy rule under the title,
// light rules between sections, aligned label columns. JSON output is the
// stable contract for downstream tooling; the text layout may change.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/stylo-cli/stylo/internal/authorship"
	"github.com/stylo-cli/stylo/internal/counter"
	"github.com/stylo-cli/stylo/internal/dialect"
	"github.com/stylo-cli/stylo/internal/drift"
	"github.com/stylo-cli/stylo/internal/lexical"
	"github.com/stylo-cli/stylo/internal/ngram"
	"github.com/stylo-cli/stylo/internal/readability"
	"github.com/stylo-cli/stylo/internal/store"
)

const (
	minRuleWidth = 40
	maxRuleWidth = 72
)

// TerminalWidth returns the stdout width clamped to a readable range,
// falling back to 60 columns when stdout is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 60
	}
	if width < minRuleWidth {
		return minRuleWidth
	}
	if width > maxRuleWidth {
		return maxRuleWidth
	}
	return width
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func heavyRule(w io.Writer, width int) {
	fmt.Fprintln(w, strings.Repeat("=", width))
}

func lightRule(w io.Writer, width int) {
	fmt.Fprintln(w, strings.Repeat("-", width))
}

func section(w io.Writer, width int, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, title)
	lightRule(w, width)
}

// Drift renders the full drift analysis as a sectioned text report.
func Drift(w io.Writer, source string, stats counter.DocumentStats, res *drift.Result) {
	width := TerminalWidth()

	heavyRule(w, width)
	fmt.Fprintln(w, "STYLISTIC DRIFT ANALYSIS")
	heavyRule(w, width)
	fmt.Fprintf(w, "Source: %s\n", source)
	fmt.Fprintf(w, "Size:   %d characters / %d words / %d tokens\n",
		stats.Characters, stats.Words, stats.Tokens)
	fmt.Fprintf(w, "Status: %s\n", res.Status)

	if res.Status == drift.StatusInsufficientData {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "warning: %s\n", res.StatusMessage)
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Windows created:  %d\n", res.WindowCount)
		fmt.Fprintf(w, "Minimum required: %.0f\n", res.Thresholds["min_windows"])
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Try reducing --window-size or --stride to create more windows.")
		return
	}

	section(w, width, "PATTERN DETECTED")
	fmt.Fprintf(w, "  Pattern:    %s\n", res.Pattern)
	fmt.Fprintf(w, "  Confidence: %.1f%%\n", res.PatternConfidence*100)
	fmt.Fprintln(w)
	for _, line := range patternNotes(res) {
		fmt.Fprintf(w, "  %s\n", line)
	}

	section(w, width, "CHI-SQUARED STATISTICS")
	fmt.Fprintf(w, "  Mean:   %.2f\n", res.MeanChiSquared)
	fmt.Fprintf(w, "  Std:    %.2f\n", res.StdChiSquared)
	fmt.Fprintf(w, "  Min:    %.2f\n", res.MinChiSquared)
	fmt.Fprintf(w, "  Max:    %.2f\n", res.MaxChiSquared)
	fmt.Fprintf(w, "  Trend:  %+.4f\n", res.Trend)

	section(w, width, "WINDOW CONFIGURATION")
	fmt.Fprintf(w, "  Window size:  %d tokens\n", res.WindowSize)
	fmt.Fprintf(w, "  Stride:       %d tokens\n", res.Stride)
	fmt.Fprintf(w, "  Overlap:      %.1f%%\n", res.OverlapRatio*100)
	fmt.Fprintf(w, "  Mode:         %s\n", res.ComparisonMode)
	fmt.Fprintf(w, "  Windows:      %d\n", res.WindowCount)
	fmt.Fprintf(w, "  Comparisons:  %d\n", len(res.PairwiseScores))

	if res.Status == drift.StatusMarginalData {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "warning: %s\n", res.StatusMessage)
	}
}

func patternNotes(res *drift.Result) []string {
	switch res.Pattern {
	case drift.PatternConsistent:
		return []string{"Text shows consistent writing style throughout."}
	case drift.PatternGradualDrift:
		return []string{
			"Text shows gradual stylistic drift over its length.",
			"Possible causes: author fatigue, topic evolution, revision.",
		}
	case drift.PatternSuddenSpike:
		return []string{
			"Text contains a sudden stylistic discontinuity.",
			fmt.Sprintf("Location: between windows %d and %d.", res.MaxLocation, res.MaxLocation+1),
			"Possible causes: pasted content, different author, major edit.",
		}
	case drift.PatternSuspiciouslyUniform:
		return []string{
			"Text shows unusually uniform style (near-zero variance).",
			"Possible causes: generated content, heavy editing, templated text.",
		}
	default:
		return nil
	}
}

// Compare renders a two-text authorship comparison.
func Compare(w io.Writer, source1, source2 string, res *authorship.KilgarriffResult) {
	width := TerminalWidth()

	heavyRule(w, width)
	fmt.Fprintln(w, "AUTHORSHIP COMPARISON")
	heavyRule(w, width)
	fmt.Fprintf(w, "Text A: %s (%d tokens)\n", source1, res.TokenCount1)
	fmt.Fprintf(w, "Text B: %s (%d tokens)\n", source2, res.TokenCount2)

	section(w, width, "KILGARRIFF CHI-SQUARED")
	fmt.Fprintf(w, "  Chi-squared:         %.2f\n", res.ChiSquared)
	fmt.Fprintf(w, "  Degrees of freedom:  %d\n", res.DegreesOfFreedom)
	fmt.Fprintf(w, "  Words compared:      %d most frequent\n", res.MFW)

	if len(res.TopWords) > 0 {
		section(w, width, "MOST DISTINCTIVE WORDS")
		for _, c := range res.TopWords {
			fmt.Fprintf(w, "  %-16s %.2f\n", c.Word, c.Value)
		}
	}
}

// ReadabilitySummary gathers every readability score for one document.
type ReadabilitySummary struct {
	Flesch      *readability.FleschScore      `json:"flesch"`
	ARI         *readability.ARIScore         `json:"ari"`
	ColemanLiau *readability.ColemanLiauScore `json:"coleman_liau"`
	SMOG        *readability.SMOGScore        `json:"smog"`
	GunningFog  *readability.GunningFogScore  `json:"gunning_fog"`
}

// Readability renders all readability measures for one document.
func Readability(w io.Writer, source string, sum *ReadabilitySummary) {
	width := TerminalWidth()

	heavyRule(w, width)
	fmt.Fprintln(w, "READABILITY ANALYSIS")
	heavyRule(w, width)
	fmt.Fprintf(w, "Source: %s\n", source)

	section(w, width, "FLESCH")
	fmt.Fprintf(w, "  Reading ease:   %.1f (%s)\n", sum.Flesch.ReadingEase, sum.Flesch.Difficulty)
	fmt.Fprintf(w, "  Grade level:    %.1f\n", sum.Flesch.GradeLevel)
	fmt.Fprintf(w, "  Sentences:      %d\n", sum.Flesch.SentenceCount)
	fmt.Fprintf(w, "  Words:          %d\n", sum.Flesch.WordCount)
	fmt.Fprintf(w, "  Syllables:      %d\n", sum.Flesch.SyllableCount)

	section(w, width, "GRADE-LEVEL INDICES")
	fmt.Fprintf(w, "  ARI:            %.1f (grade %d, ages %s)\n",
		sum.ARI.Score, sum.ARI.GradeLevel, sum.ARI.AgeRange)
	fmt.Fprintf(w, "  Coleman-Liau:   %.1f (grade %d)\n",
		sum.ColemanLiau.Index, sum.ColemanLiau.GradeLevel)
	fmt.Fprintf(w, "  SMOG:           %.1f (grade %d)\n",
		sum.SMOG.Index, sum.SMOG.GradeLevel)
	fmt.Fprintf(w, "  Gunning Fog:    %.1f (grade %d)\n",
		sum.GunningFog.Index, sum.GunningFog.GradeLevel)

	if !sum.SMOG.Reliable {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "note: SMOG is normed on 30-sentence samples; this text is shorter.")
	}
}

// LexicalSummary gathers the vocabulary richness measures for one document.
type LexicalSummary struct {
	TTR         *lexical.TTRResult   `json:"ttr"`
	Yule        *lexical.YuleResult  `json:"yule"`
	Hapax       *lexical.HapaxResult `json:"hapax"`
	MTLD        *lexical.MTLDResult  `json:"mtld"`
	WordBigrams *ngram.Result        `json:"word_bigram_entropy"`
	CharBigrams *ngram.Result        `json:"char_bigram_entropy"`
}

// Lexical renders vocabulary richness measures for one document.
func Lexical(w io.Writer, source string, sum *LexicalSummary) {
	width := TerminalWidth()

	heavyRule(w, width)
	fmt.Fprintln(w, "LEXICAL DIVERSITY ANALYSIS")
	heavyRule(w, width)
	fmt.Fprintf(w, "Source: %s\n", source)
	fmt.Fprintf(w, "Tokens: %d (%d types)\n", sum.TTR.TokenCount, sum.TTR.TypeCount)

	section(w, width, "TYPE-TOKEN RATIOS")
	fmt.Fprintf(w, "  TTR:        %.4f\n", sum.TTR.TTR)
	fmt.Fprintf(w, "  Root TTR:   %.4f\n", sum.TTR.RootTTR)
	fmt.Fprintf(w, "  Log TTR:    %.4f\n", sum.TTR.LogTTR)
	fmt.Fprintf(w, "  STTR:       %.4f (std %.4f over %d chunks)\n",
		sum.TTR.STTR, sum.TTR.STTRStd, sum.TTR.ChunkCount)
	fmt.Fprintf(w, "  MTLD:       %.2f\n", sum.MTLD.Average)

	section(w, width, "FREQUENCY SPECTRUM")
	fmt.Fprintf(w, "  Yule's K:      %.2f\n", sum.Yule.K)
	fmt.Fprintf(w, "  Yule's I:      %.2f\n", sum.Yule.I)
	fmt.Fprintf(w, "  Hapax ratio:   %.4f (%d words)\n", sum.Hapax.HapaxRatio, sum.Hapax.HapaxCount)
	fmt.Fprintf(w, "  Sichel's S:    %.4f\n", sum.Hapax.SichelS)
	fmt.Fprintf(w, "  Honore's R:    %.2f\n", sum.Hapax.HonoreR)

	section(w, width, "ENTROPY")
	fmt.Fprintf(w, "  Word bigrams:  %.3f bits (perplexity %.1f)\n",
		sum.WordBigrams.Entropy, sum.WordBigrams.Perplexity)
	fmt.Fprintf(w, "  Char bigrams:  %.3f bits (perplexity %.1f)\n",
		sum.CharBigrams.Entropy, sum.CharBigrams.Perplexity)
}

// Dialect renders the dialect detection result.
func Dialect(w io.Writer, source string, res *dialect.Result) {
	width := TerminalWidth()

	heavyRule(w, width)
	fmt.Fprintln(w, "DIALECT ANALYSIS")
	heavyRule(w, width)
	fmt.Fprintf(w, "Source: %s\n", source)

	section(w, width, "DETECTION")
	fmt.Fprintf(w, "  Dialect:     %s\n", res.Dialect)
	fmt.Fprintf(w, "  Confidence:  %.1f%%\n", res.Confidence*100)
	fmt.Fprintf(w, "  Markedness:  %.4f\n", res.Markedness)
	fmt.Fprintf(w, "  Markers:     %d British, %d American (of %d tokens)\n",
		res.BritishMarkers, res.AmericanMarkers, res.TokenCount)
}

// History renders stored analyses as a table, newest first.
func History(w io.Writer, records []store.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No stored analyses.")
		return
	}

	fmt.Fprintf(w, "%-26s  %-16s  %-20s  %-10s  %s\n",
		"ID", "CREATED", "PATTERN", "CONFIDENCE", "SOURCE")
	for _, rec := range records {
		fmt.Fprintf(w, "%-26s  %-16s  %-20s  %9.1f%%  %s\n",
			rec.ID,
			rec.CreatedAt.Local().Format("2006-01-02 15:04"),
			rec.Pattern,
			rec.Confidence*100,
			rec.Source)
	}
}
