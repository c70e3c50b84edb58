package app

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/codecommenter/internal/annotate"
	"github.com/blackwell-systems/codecommenter/internal/lang"
)

var stripLanguage string

var stripCmd = &cobra.Command{
	Use:   "strip [file|-]",
	Short: "Remove codecommenter annotations, restoring the original code",
	Long: `Strip reverses 'analyze --only comments': it removes the header and
every explanatory comment line, printing the original source exactly.

The language is read from the header unless --language is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStrip,
}

func init() {
	stripCmd.Flags().StringVar(&stripLanguage, "language", "", "Language the code was annotated as (default: read from header)")
	rootCmd.AddCommand(stripCmd)
}

var errNoHeader = errors.New("no codecommenter header found")

func runStrip(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	name, text, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	var label lang.Label
	if stripLanguage != "" {
		if label, err = lang.ParseLabel(stripLanguage); err != nil {
			return err
		}
	} else {
		var ok bool
		if label, ok = annotate.DetectHeader(text); !ok {
			return fmt.Errorf("%s: %w", name, errNoHeader)
		}
	}
	e.log.Debug().Str("path", name).Str("language", label.String()).Msg("stripping")

	_, err = fmt.Fprint(cmd.OutOrStdout(), annotate.Strip(text, label))
	return err
}
