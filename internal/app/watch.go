package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/codecommenter/internal/analyzer"
	"github.com/blackwell-systems/codecommenter/internal/output"
	"github.com/blackwell-systems/codecommenter/internal/watcher"
)

var (
	watchInterval time.Duration
	watchOnly     string
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-analyze a file every time it changes",
	Long: `Watch polls a source file and prints a fresh analysis whenever its
content changes. An edit that is still running when the next one lands is
abandoned.

Examples:
  codecommenter watch main.py                 # ctrl-c to stop
  codecommenter watch --interval 500ms app.js
  codecommenter watch --only suggestions util.cpp`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 0, "Polling interval (default from config)")
	watchCmd.Flags().StringVar(&watchOnly, "only", "", "Print only one part: comments or suggestions")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := validPart("only", watchOnly); err != nil {
		return err
	}
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	interval := e.cfg.Watch.Interval
	if watchInterval > 0 {
		interval = watchInterval
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), shutdownSignals...)
	defer stop()

	a := analyzer.New(
		analyzer.WithNumbering(e.cfg.Numbering()),
		analyzer.WithLanguage(e.cfg.Language()),
		analyzer.WithDelay(analyzer.FixedDelay(e.cfg.Analysis.Latency)),
	)
	w := cmd.OutOrStdout()
	fmt.Fprintf(cmd.ErrOrStderr(), "codecommenter watching %s... (checking every %s)\n", args[0], interval)

	var (
		pending *analyzer.Task
		mu      sync.Mutex
	)
	onChange := func(ev watcher.Event) {
		if ev.Err != nil {
			e.log.Warn().Err(ev.Err).Str("path", ev.Path).Msg("read failed")
			return
		}
		if pending != nil {
			pending.Cancel()
		}
		if analyzer.CheckInput(ev.Content) != nil {
			pending = nil
			mu.Lock()
			fmt.Fprintf(w, "[%s] %s\n", ev.Time.Format("15:04:05"), output.StyleWarning.Render(ev.Path+" is empty"))
			mu.Unlock()
			return
		}
		task := a.Start(ctx, ev.Content)
		pending = task
		go printWhenDone(w, &mu, ev, task, watchOnly)
	}

	err = watcher.New(args[0], interval, onChange).Run(ctx)
	if pending != nil {
		pending.Cancel()
	}
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(cmd.ErrOrStderr(), "\nStopped.")
		return nil
	}
	return err
}

// printWhenDone prints the task's result unless it was abandoned. mu
// serialises writes to w.
func printWhenDone(w io.Writer, mu *sync.Mutex, ev watcher.Event, task *analyzer.Task, only string) {
	res, err := task.Wait()
	if err != nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(w, "%s\n\n", output.Section(fmt.Sprintf("%s  %s  (%s)", ev.Time.Format("15:04:05"), ev.Path, res.Language)))
	if only != partSuggestions {
		fmt.Fprintln(w, res.Comments)
		fmt.Fprintln(w)
	}
	if only != partComments {
		fmt.Fprint(w, res.Suggestions)
	}
}
