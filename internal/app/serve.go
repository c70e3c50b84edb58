package app

import (
	"fmt"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/codecommenter/internal/analyzer"
	"github.com/blackwell-systems/codecommenter/internal/logging"
	"github.com/blackwell-systems/codecommenter/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analyzer over an HTTP JSON API",
	Long: `Start an HTTP server exposing:

  POST /api/v1/analyze    {"code": "...", "numbering": "fixed|sequential", "language": "..."}
  GET  /api/v1/languages
  GET  /healthz

Requests are logged as JSON lines on stderr. Each analysis waits for
analysis.latency first; a client that disconnects abandons its analysis.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, e.g. :8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	log, err := logging.New(cmd.ErrOrStderr(), logging.FormatJSON, e.cfg.Log.Level, flagVerbose)
	if err != nil {
		return fmt.Errorf("configuring logging: %w", err)
	}

	srvCfg := e.cfg.Server
	if serveAddr != "" {
		srvCfg.Addr = serveAddr
	}

	a := analyzer.New(
		analyzer.WithNumbering(e.cfg.Numbering()),
		analyzer.WithLanguage(e.cfg.Language()),
		analyzer.WithDelay(analyzer.FixedDelay(e.cfg.Analysis.Latency)),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), shutdownSignals...)
	defer stop()

	return server.New(a, srvCfg, log).ListenAndServe(ctx)
}
