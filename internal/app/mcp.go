package app

import (
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/codecommenter/internal/analyzer"
	"github.com/blackwell-systems/codecommenter/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP stdio server exposing the analyzer as tools",
	Long: `Start a Model Context Protocol stdio server. The server exposes three
tools:

  analyze_code     Annotated code plus the suggestions report
  detect_language  The language label and its comment leader
  suggest          Structured suggestions with their slot numbers

Example MCP client configuration:
  {"mcpServers":{"codecommenter":{"command":"codecommenter","args":["mcp"]}}}`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	a := analyzer.New(
		analyzer.WithNumbering(e.cfg.Numbering()),
		analyzer.WithLanguage(e.cfg.Language()),
		analyzer.WithDelay(analyzer.FixedDelay(e.cfg.Analysis.Latency)),
	)
	srv := mcp.NewServer(a, e.log, appVersion)
	return srv.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
}
