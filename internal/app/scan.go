package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/codecommenter/internal/analyzer"
	"github.com/blackwell-systems/codecommenter/internal/annotate"
	"github.com/blackwell-systems/codecommenter/internal/discover"
	"github.com/blackwell-systems/codecommenter/internal/output"
)

var (
	scanFlagExts    []string
	scanFlagWorkers int
	scanFlagSort    string
)

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "Analyze every source file under a directory",
	Long: `Scan walks a directory (default: the current one), honouring .gitignore
and skipping dependency and build directories, analyzes each source file
concurrently, and prints one row per file with its detected language, line
count, annotated lines and number of suggestions.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringSliceVar(&scanFlagExts, "ext", nil, "File extensions to include (default from config, e.g. --ext .py,.js)")
	scanCmd.Flags().IntVar(&scanFlagWorkers, "workers", 0, "Concurrent analyses (default from config)")
	scanCmd.Flags().StringVar(&scanFlagSort, "sort", "path", "Sort by: path, language, suggestions, annotated")
	rootCmd.AddCommand(scanCmd)
}

// scanResult is the per-file outcome of a scan.
type scanResult struct {
	Path        string `json:"path"`
	Language    string `json:"language,omitempty"`
	Lines       int    `json:"lines"`
	Annotated   int    `json:"annotated"`
	Suggestions int    `json:"suggestions"`
	Skipped     string `json:"skipped,omitempty"`
}

// scanOptions controls scanFiles.
type scanOptions struct {
	Workers      int
	MaxFileBytes int64
	Analyzer     *analyzer.Analyzer
}

func runScan(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	exts := e.cfg.Scan.Extensions
	if len(scanFlagExts) > 0 {
		exts = scanFlagExts
	}
	workers := e.cfg.Scan.Workers
	if scanFlagWorkers > 0 {
		workers = scanFlagWorkers
	}

	entries, err := discover.Files(root, exts)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	e.log.Debug().Str("path", root).Int("files", len(entries)).Int("workers", workers).Msg("scan started")

	ctx, stop := signal.NotifyContext(cmd.Context(), shutdownSignals...)
	defer stop()

	a := analyzer.New(analyzer.WithNumbering(e.cfg.Numbering()), analyzer.WithLanguage(e.cfg.Language()))
	results, err := scanFiles(ctx, root, entries, scanOptions{
		Workers:      workers,
		MaxFileBytes: e.cfg.Scan.MaxFileBytes,
		Analyzer:     a,
	})
	if err != nil {
		return err
	}
	sortScanResults(results, scanFlagSort)

	if flagJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	renderScanTable(cmd.OutOrStdout(), results)
	renderScanSummary(cmd.OutOrStdout(), results)
	return nil
}

// scanFiles analyzes entries concurrently, at most opts.Workers at a time.
// Unreadable files abort the scan; oversized and blank files are reported as
// skipped. Results keep the order of entries.
func scanFiles(ctx context.Context, root string, entries []discover.FileEntry, opts scanOptions) ([]scanResult, error) {
	results := make([]scanResult, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))

	for i, entry := range entries {
		results[i].Path = entry.Path
		if opts.MaxFileBytes > 0 && entry.Size > opts.MaxFileBytes {
			results[i].Skipped = "too large"
			continue
		}

		g.Go(func() error {
			data, err := os.ReadFile(filepath.Join(root, entry.Path))
			if err != nil {
				return fmt.Errorf("reading %s: %w", entry.Path, err)
			}
			text := string(data)
			if analyzer.CheckInput(text) != nil {
				results[i].Skipped = "empty"
				return nil
			}

			res, err := opts.Analyzer.Analyze(ctx, text)
			if err != nil {
				return err
			}
			results[i].Language = res.Language.String()
			results[i].Lines = len(annotate.Lines(text))
			results[i].Annotated = annotate.Stats(text, res.Language).Total()
			results[i].Suggestions = len(res.Items)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func sortScanResults(results []scanResult, sortBy string) {
	sort.SliceStable(results, func(i, j int) bool {
		switch sortBy {
		case "language":
			return results[i].Language < results[j].Language
		case "suggestions":
			return results[i].Suggestions > results[j].Suggestions
		case "annotated":
			return results[i].Annotated > results[j].Annotated
		default: // "path"
			return results[i].Path < results[j].Path
		}
	})
}

func renderScanTable(w io.Writer, results []scanResult) {
	fmt.Fprintln(w, output.Section("Source Scan"))
	fmt.Fprintln(w)

	tbl := output.NewTable("File", "Language", "Lines", "Annotated", "Suggestions").AlignRight(2, 3, 4)
	for _, r := range results {
		if r.Skipped != "" {
			tbl.AddRow(r.Path, output.StyleWarning.Render("skipped: "+r.Skipped), "", "", "")
			continue
		}
		tbl.AddRow(r.Path, r.Language,
			fmt.Sprintf("%d", r.Lines),
			fmt.Sprintf("%d", r.Annotated),
			fmt.Sprintf("%d", r.Suggestions))
	}
	_ = tbl.Fprint(w)
}

func renderScanSummary(w io.Writer, results []scanResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, output.StyleMuted.Render("\n No source files found."))
		return
	}

	byLang := make(map[string]int)
	var analyzed, lines, annotated int
	for _, r := range results {
		if r.Skipped != "" {
			continue
		}
		analyzed++
		lines += r.Lines
		annotated += r.Annotated
		byLang[r.Language]++
	}

	fmt.Fprintln(w, output.Section("Summary"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, " %s %d of %d\n", output.StyleLabel.Render("Files analyzed"), analyzed, len(results))
	fmt.Fprintf(w, " %s %s\n", output.StyleLabel.Render("Coverage"), output.CoverageBar(annotated, lines, 20))

	names := make([]string, 0, len(byLang))
	for name := range byLang {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, " %s %d\n", output.StyleLabel.Render(name), byLang[name])
	}
}
