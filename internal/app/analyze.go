package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/codecommenter/internal/analyzer"
	"github.com/blackwell-systems/codecommenter/internal/annotate"
	"github.com/blackwell-systems/codecommenter/internal/config"
	"github.com/blackwell-systems/codecommenter/internal/examples"
	"github.com/blackwell-systems/codecommenter/internal/lang"
	"github.com/blackwell-systems/codecommenter/internal/output"
	"github.com/blackwell-systems/codecommenter/internal/suggest"
)

// Files written by --save.
const (
	commentsFile    = "code_comments.txt"
	suggestionsFile = "code_suggestions.txt"
)

// Values accepted by --only and --copy.
const (
	partComments    = "comments"
	partSuggestions = "suggestions"
)

var (
	analyzeOnly        string
	analyzeNumbering   string
	analyzeLanguage    string
	analyzeLatency     time.Duration
	analyzeCopy        string
	analyzeStats       bool
	analyzeNoHighlight bool
	analyzeExample     string
	analyzeSave        string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file|-]",
	Short: "Annotate code and list improvement suggestions",
	Long: `Read source code from a file (or stdin when no file or "-" is given),
classify its language, and print the code with explanatory comments after
each recognised line, followed by numbered improvement suggestions.

Examples:
  codecommenter analyze main.py
  cat app.js | codecommenter analyze --only suggestions
  codecommenter analyze --numbering sequential --copy comments util.cpp
  codecommenter analyze --example python --save results/`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeOnly, "only", "", "Print only one part: comments or suggestions")
	analyzeCmd.Flags().StringVar(&analyzeNumbering, "numbering", "", "Suggestion numbering: fixed or sequential (default from config)")
	analyzeCmd.Flags().StringVar(&analyzeLanguage, "language", "", "Skip detection and annotate as this language (javascript, python, java, cpp)")
	analyzeCmd.Flags().DurationVar(&analyzeLatency, "latency", 0, "Delay before the result is shown (default from config)")
	analyzeCmd.Flags().StringVar(&analyzeCopy, "copy", "", "Copy a part to the clipboard: comments or suggestions")
	analyzeCmd.Flags().BoolVar(&analyzeStats, "stats", false, "Show per-construct annotation counts")
	analyzeCmd.Flags().BoolVar(&analyzeNoHighlight, "no-highlight", false, "Disable syntax highlighting of annotated code")
	analyzeCmd.Flags().StringVar(&analyzeExample, "example", "", "Analyze a built-in sample instead of a file: "+strings.Join(examples.Names(), " or "))
	analyzeCmd.Flags().StringVar(&analyzeSave, "save", "", "Also write "+commentsFile+" and "+suggestionsFile+" to this directory")
	rootCmd.AddCommand(analyzeCmd)
}

func validPart(flag, v string) error {
	switch v {
	case "", partComments, partSuggestions:
		return nil
	}
	return fmt.Errorf("invalid --%s %q: want %s or %s", flag, v, partComments, partSuggestions)
}

// analysisOptions merges command flags over config values.
func analysisOptions(cmd *cobra.Command, cfg *config.Config) ([]analyzer.Option, error) {
	numbering := cfg.Numbering()
	if analyzeNumbering != "" {
		n, err := suggest.ParseNumbering(analyzeNumbering)
		if err != nil {
			return nil, err
		}
		numbering = n
	}

	label := cfg.Language()
	if analyzeLanguage != "" {
		l, err := lang.ParseLabel(analyzeLanguage)
		if err != nil {
			return nil, err
		}
		label = l
	}

	latency := cfg.Analysis.Latency
	if cmd.Flags().Changed("latency") {
		if analyzeLatency < 0 {
			return nil, fmt.Errorf("invalid --latency %s: must not be negative", analyzeLatency)
		}
		latency = analyzeLatency
	}

	return []analyzer.Option{
		analyzer.WithNumbering(numbering),
		analyzer.WithLanguage(label),
		analyzer.WithDelay(analyzer.FixedDelay(latency)),
	}, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if err := validPart("only", analyzeOnly); err != nil {
		return err
	}
	if err := validPart("copy", analyzeCopy); err != nil {
		return err
	}

	e, err := setup(cmd)
	if err != nil {
		return err
	}
	opts, err := analysisOptions(cmd, e.cfg)
	if err != nil {
		return err
	}

	name, text, err := analyzeSource(cmd, args)
	if err != nil {
		return err
	}
	if err := analyzer.CheckInput(text); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), shutdownSignals...)
	defer stop()

	start := time.Now()
	task := analyzer.New(opts...).Start(ctx, text)
	res, err := task.Wait()
	if err != nil {
		return fmt.Errorf("analysis cancelled: %w", err)
	}
	e.log.Debug().
		Str("path", name).
		Str("language", res.Language.String()).
		Int("lines", len(annotate.Lines(text))).
		Int("suggestions", len(res.Items)).
		Dur("duration", time.Since(start)).
		Msg("analyzed")

	w := cmd.OutOrStdout()
	if flagJSON {
		if err := renderAnalyzeJSON(w, res); err != nil {
			return err
		}
	} else {
		highlight := e.cfg.Output.Highlight && !analyzeNoHighlight
		renderAnalysis(w, res, highlight, e.cfg.Output.Style)
		if analyzeStats {
			renderStats(w, text, res.Language)
		}
	}

	if analyzeSave != "" {
		if err := saveResults(analyzeSave, res); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), output.StyleSuccess.Render("Saved results to "+analyzeSave))
	}

	if analyzeCopy != "" {
		part := res.Comments
		if analyzeCopy == partSuggestions {
			part = res.Suggestions
		}
		if err := output.Copy(part); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), output.StyleSuccess.Render("Copied "+analyzeCopy+" to clipboard"))
	}
	return nil
}

// analyzeSource returns the built-in example named by --example, or the
// file or stdin named by args.
func analyzeSource(cmd *cobra.Command, args []string) (name, text string, err error) {
	if analyzeExample == "" {
		return readSource(cmd, args)
	}
	if len(args) > 0 {
		return "", "", fmt.Errorf("--example cannot be combined with a file argument")
	}
	e, err := examples.Get(analyzeExample)
	if err != nil {
		return "", "", err
	}
	return e.Name + " example", e.Code, nil
}

// saveResults writes both parts to dir exactly as the engine produced them.
func saveResults(dir string, res analyzer.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	files := []struct {
		name, data string
	}{
		{commentsFile, res.Comments},
		{suggestionsFile, res.Suggestions},
	}
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, []byte(f.data), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}

func renderAnalyzeJSON(w io.Writer, res analyzer.Result) error {
	var payload any = res
	switch analyzeOnly {
	case partComments:
		payload = map[string]string{"language": res.Language.String(), "comments": res.Comments}
	case partSuggestions:
		payload = map[string]any{"language": res.Language.String(), "suggestions": res.Suggestions, "items": res.Items}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

// renderAnalysis prints the requested parts. A part printed on its own is
// written exactly as the engine produced it, so it can be piped to strip.
func renderAnalysis(w io.Writer, res analyzer.Result, highlight bool, style string) {
	comments := res.Comments
	if highlight {
		comments = output.Highlight(comments, res.Language, style)
	}
	switch analyzeOnly {
	case partComments:
		fmt.Fprint(w, comments)
	case partSuggestions:
		fmt.Fprint(w, res.Suggestions)
	default:
		fmt.Fprint(w, comments, "\n\n", res.Suggestions)
	}
}

func renderStats(w io.Writer, text string, l lang.Label) {
	counts := annotate.Stats(text, l)
	lines := len(annotate.Lines(text))

	fmt.Fprintln(w, output.Section("Annotation Stats"))
	fmt.Fprintln(w)

	tbl := output.NewTable("Construct", "Lines").AlignRight(1)
	for _, k := range annotate.Kinds() {
		if n := counts[k]; n > 0 {
			tbl.AddRow(k.String(), fmt.Sprintf("%d", n))
		}
	}
	if tbl.Len() > 0 {
		_ = tbl.Fprint(w)
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Annotated"), output.CoverageBar(counts.Total(), lines, 20))
}
