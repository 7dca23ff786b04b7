package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/stylo-cli/stylo/internal/app"
	"github.com/stylo-cli/stylo/internal/authorship"
	"github.com/stylo-cli/stylo/internal/config"
	"github.com/stylo-cli/stylo/internal/dialect"
	"github.com/stylo-cli/stylo/internal/drift"
	"github.com/stylo-cli/stylo/internal/lexical"
	"github.com/stylo-cli/stylo/internal/ngram"
	"github.com/stylo-cli/stylo/internal/readability"
	"github.com/stylo-cli/stylo/internal/report"
	"github.com/stylo-cli/stylo/internal/store"
	"github.com/stylo-cli/stylo/internal/tokenize"

	"github.com/spf13/cobra"
)

// defaultDBPath is where --save and the history subcommand look for the
// analysis database unless told otherwise.
const defaultDBPath = "stylo-history.db"

// buildConfig constructs an app.Config from command flags and arguments
func buildConfig(cmd *cobra.Command, args []string) (app.Config, error) {
	// get flag values
	selector, _ := cmd.Flags().GetString("selector")
	windowSize, _ := cmd.Flags().GetInt("window-size")
	stride, _ := cmd.Flags().GetInt("stride")
	modeFlag, _ := cmd.Flags().GetString("mode")
	lag, _ := cmd.Flags().GetInt("lag")
	nWords, _ := cmd.Flags().GetInt("n-words")
	jsonFlag, _ := cmd.Flags().GetBool("json")
	savePath, _ := cmd.Flags().GetString("save")
	thresholdsPath, _ := cmd.Flags().GetString("thresholds")
	quiet, _ := cmd.Flags().GetBool("quiet")
	debug, _ := cmd.Flags().GetBool("debug")

	driftCfg := drift.DefaultConfig()
	driftCfg.WindowSize = windowSize
	driftCfg.Stride = stride
	driftCfg.Lag = lag
	driftCfg.NWords = nWords

	switch drift.Mode(modeFlag) {
	case drift.ModeSequential, drift.ModeAllPairs, drift.ModeFixedLag:
		driftCfg.Mode = drift.Mode(modeFlag)
	default:
		return app.Config{}, fmt.Errorf("unknown mode %q (want sequential, all_pairs, or fixed_lag)", modeFlag)
	}

	// threshold overrides from a YAML file, if given
	if thresholdsPath != "" {
		file, err := config.Load(thresholdsPath)
		if err != nil {
			return app.Config{}, fmt.Errorf("loading thresholds: %w", err)
		}
		driftCfg = file.Apply(driftCfg)
	}

	// determine output format
	format := app.Text
	if jsonFlag {
		format = app.JSON
	}

	return app.Config{
		Sources:  sourcesFromArgs(args),
		Selector: selector,
		Drift:    driftCfg,
		Format:   format,
		SavePath: savePath,
		Quiet:    quiet,
		Debug:    debug,
	}, nil
}

// sourcesFromArgs defaults to stdin when no sources are given
func sourcesFromArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	var level slog.Level
	if debug {
		level = slog.LevelDebug
	} else {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// runContext builds a signal-aware context shared by every subcommand
func runContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

var rootCmd = &cobra.Command{
	Use:   "stylo [sources...]",
	Short: "Stylometric analysis of text documents",
	Long: `Stylo measures writing style. The default command slides a window
across a document and scores consecutive windows with a chi-squared
distance over their most frequent words, flagging sudden spikes,
gradual drift, or suspiciously uniform stretches. Sources may be URLs,
local files (plain text, HTML, PDF, or DOCX), or standard input.

Examples:
  stylo essay.txt
  stylo --window-size 500 --stride 250 https://example.com/post
  cat draft.md | stylo --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd, args)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		// configure logging pending debug flag
		setupLogger(cfg.Debug)

		ctx, stop := runContext()
		defer stop()

		result, err := app.Run(ctx, cfg)
		if err != nil {
			return fmt.Errorf("stylo failed: %w", err)
		}

		fmt.Print(result)
		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare <source1> <source2>",
	Short: "Compare two documents with a chi-squared distance",
	Long: `Compare scores two documents against each other over their most
frequent words. Identical word distributions score 0; larger values
mean the documents diverge more. The score is a relative distance, not
a calibrated probability.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		selector, _ := cmd.Flags().GetString("selector")
		mfw, _ := cmd.Flags().GetInt("n-words")
		jsonFlag, _ := cmd.Flags().GetBool("json")
		quiet, _ := cmd.Flags().GetBool("quiet")
		debug, _ := cmd.Flags().GetBool("debug")
		setupLogger(debug)

		ctx, stop := runContext()
		defer stop()

		text1, err := app.LoadText(ctx, args[:1], selector, quiet)
		if err != nil {
			return fmt.Errorf("loading %q: %w", args[0], err)
		}
		text2, err := app.LoadText(ctx, args[1:], selector, quiet)
		if err != nil {
			return fmt.Errorf("loading %q: %w", args[1], err)
		}

		result, err := authorship.Kilgarriff(text1, text2, mfw)
		if err != nil {
			return fmt.Errorf("comparing documents: %w", err)
		}

		if jsonFlag {
			return report.JSON(os.Stdout, result)
		}
		report.Compare(os.Stdout, args[0], args[1], result)
		return nil
	},
}

var readabilityCmd = &cobra.Command{
	Use:   "readability [sources...]",
	Short: "Score document readability",
	Long: `Readability computes Flesch reading ease, Flesch-Kincaid grade,
ARI, Coleman-Liau, SMOG, and Gunning fog for a document.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, label, err := loadForSubcommand(cmd, args)
		if err != nil {
			return err
		}

		sum := &report.ReadabilitySummary{}
		if sum.Flesch, err = readability.Flesch(text); err != nil {
			return err
		}
		if sum.ARI, err = readability.ARI(text); err != nil {
			return err
		}
		if sum.ColemanLiau, err = readability.ColemanLiau(text); err != nil {
			return err
		}
		if sum.SMOG, err = readability.SMOG(text); err != nil {
			return err
		}
		if sum.GunningFog, err = readability.GunningFog(text); err != nil {
			return err
		}

		if jsonFlag, _ := cmd.Flags().GetBool("json"); jsonFlag {
			return report.JSON(os.Stdout, sum)
		}
		report.Readability(os.Stdout, label, sum)
		return nil
	},
}

var lexicalCmd = &cobra.Command{
	Use:   "lexical [sources...]",
	Short: "Measure vocabulary richness",
	Long: `Lexical computes type-token ratios, Yule's K, hapax statistics,
MTLD, and n-gram entropy for a document.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, label, err := loadForSubcommand(cmd, args)
		if err != nil {
			return err
		}

		tokens, err := tokenize.Words(text)
		if err != nil {
			return fmt.Errorf("tokenizing: %w", err)
		}

		sum := &report.LexicalSummary{
			TTR:   lexical.ComputeTTR(tokens, lexical.DefaultChunkSize),
			Yule:  lexical.Yule(tokens),
			Hapax: lexical.Hapax(tokens),
		}
		if sum.MTLD, err = lexical.MTLD(tokens, 0); err != nil {
			return err
		}
		if sum.WordBigrams, err = ngram.WordEntropy(tokens, 2); err != nil {
			return err
		}
		if sum.CharBigrams, err = ngram.CharEntropy(text, 2); err != nil {
			return err
		}

		if jsonFlag, _ := cmd.Flags().GetBool("json"); jsonFlag {
			return report.JSON(os.Stdout, sum)
		}
		report.Lexical(os.Stdout, label, sum)
		return nil
	},
}

var dialectCmd = &cobra.Command{
	Use:   "dialect [sources...]",
	Short: "Detect British vs. American English",
	Long: `Dialect counts spelling and vocabulary markers for British and
American English and reports which variety dominates, or whether the
document mixes both.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, label, err := loadForSubcommand(cmd, args)
		if err != nil {
			return err
		}

		tokens, err := tokenize.Words(text)
		if err != nil {
			return fmt.Errorf("tokenizing: %w", err)
		}

		result := dialect.NewDetector().Detect(tokens)

		if jsonFlag, _ := cmd.Flags().GetBool("json"); jsonFlag {
			return report.JSON(os.Stdout, result)
		}
		report.Dialect(os.Stdout, label, result)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history [id]",
	Short: "List or inspect saved analyses",
	Long: `History lists analyses saved with --save, newest first. Given a
record id, it prints that analysis as JSON.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("db")
		limit, _ := cmd.Flags().GetInt("limit")
		debug, _ := cmd.Flags().GetBool("debug")
		setupLogger(debug)

		ctx, stop := runContext()
		defer stop()

		db, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening history database: %w", err)
		}
		defer db.Close()

		if len(args) == 1 {
			record, err := db.Get(ctx, args[0])
			if err != nil {
				return err
			}
			result, err := record.Result()
			if err != nil {
				return err
			}
			return report.JSON(os.Stdout, result)
		}

		records, err := db.List(ctx, limit)
		if err != nil {
			return err
		}
		report.History(os.Stdout, records)
		return nil
	},
}

// loadForSubcommand fetches and extracts sources for the single-document
// analysis subcommands, returning the text and a display label.
func loadForSubcommand(cmd *cobra.Command, args []string) (string, string, error) {
	selector, _ := cmd.Flags().GetString("selector")
	quiet, _ := cmd.Flags().GetBool("quiet")
	debug, _ := cmd.Flags().GetBool("debug")
	setupLogger(debug)

	ctx, stop := runContext()
	defer stop()

	sources := sourcesFromArgs(args)
	text, err := app.LoadText(ctx, sources, selector, quiet)
	if err != nil {
		return "", "", err
	}

	label := sources[0]
	if label == "-" {
		label = "stdin"
	}
	if len(sources) > 1 {
		label = fmt.Sprintf("%s (+%d more)", label, len(sources)-1)
	}
	return text, label, nil
}

// addCommonFlags attaches the flags shared by every analysis subcommand
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("selector", "s", "", "CSS selector for HTML sources")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress progress messages")
	cmd.Flags().BoolP("debug", "D", false, "Enable debug logging")
	_ = cmd.Flags().MarkHidden("debug")
}

func init() {
	addCommonFlags(rootCmd)

	// window configuration
	rootCmd.Flags().IntP("window-size", "w", drift.DefaultWindowSize, "Tokens per analysis window")
	rootCmd.Flags().Int("stride", drift.DefaultStride, "Tokens between window starts")
	rootCmd.Flags().String("mode", string(drift.ModeSequential), "Comparison mode: sequential, all_pairs, or fixed_lag")
	rootCmd.Flags().Int("lag", drift.DefaultLag, "Window offset for fixed_lag mode")
	rootCmd.Flags().IntP("n-words", "n", drift.DefaultNWords, "Most frequent words compared per window pair")

	// persistence
	rootCmd.Flags().String("save", "", "Save the analysis to a history database")
	rootCmd.Flags().Lookup("save").NoOptDefVal = defaultDBPath

	// threshold overrides
	rootCmd.Flags().String("thresholds", "", "YAML file overriding analysis thresholds")

	addCommonFlags(compareCmd)
	compareCmd.Flags().IntP("n-words", "n", authorship.DefaultMFW, "Most frequent words to compare")

	addCommonFlags(readabilityCmd)
	addCommonFlags(lexicalCmd)
	addCommonFlags(dialectCmd)

	historyCmd.Flags().String("db", defaultDBPath, "Path to the history database")
	historyCmd.Flags().Int("limit", 20, "Maximum records to list (0 for all)")
	historyCmd.Flags().BoolP("debug", "D", false, "Enable debug logging")
	_ = historyCmd.Flags().MarkHidden("debug")

	rootCmd.AddCommand(compareCmd, readabilityCmd, lexicalCmd, dialectCmd, historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
