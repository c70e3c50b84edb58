// Package app contains the Cobra command tree for codecommenter.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/codecommenter/internal/config"
	"github.com/blackwell-systems/codecommenter/internal/logging"
	"github.com/blackwell-systems/codecommenter/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "codecommenter",
	Short: "Explain source code line by line and suggest improvements",
	Long: `codecommenter guesses the language of a piece of source code, interleaves
plain-English comments after the lines it recognises (functions, loops,
conditionals, classes, imports, error handling), and lists generic
improvement suggestions.

The analysis is heuristic: it matches text patterns and never parses code.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, output.StyleError.Render("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: "+filepath.Join(config.DefaultConfigDir, config.DefaultConfigFile)+")")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}

// env bundles what every command loads before doing work.
type env struct {
	cfg *config.Config
	log zerolog.Logger
}

// setup loads configuration, configures color and builds the console logger.
func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
	} else if f, ok := cmd.OutOrStdout().(*os.File); ok {
		output.AutoColor(f)
	} else {
		output.SetNoColor(true)
	}

	log, err := logging.New(cmd.ErrOrStderr(), logging.FormatConsole, cfg.Log.Level, flagVerbose)
	if err != nil {
		return nil, fmt.Errorf("configuring logging: %w", err)
	}
	return &env{cfg: cfg, log: log}, nil
}

// readSource reads the file named by args[0], or stdin when no file or "-"
// is given. The returned name is used in messages.
func readSource(cmd *cobra.Command, args []string) (name, text string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return "stdin", string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", "", fmt.Errorf("file not found: %s", args[0])
		}
		return "", "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return args[0], string(data), nil
}
