package app

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/codecommenter/internal/lang"
	"github.com/blackwell-systems/codecommenter/internal/output"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the languages codecommenter recognises",
	Long: `List every language label in the order classification tries them,
with the comment leader used for annotations. Code matching none of them is
reported as Unknown.`,
	Args: cobra.NoArgs,
	RunE: runLanguages,
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

type languageEntry struct {
	Name          string `json:"name"`
	CommentLeader string `json:"comment_leader"`
}

func runLanguages(cmd *cobra.Command, args []string) error {
	if _, err := setup(cmd); err != nil {
		return err
	}

	labels := lang.Labels()
	entries := make([]languageEntry, 0, len(labels))
	for _, l := range labels {
		entries = append(entries, languageEntry{Name: l.String(), CommentLeader: l.CommentLeader()})
	}

	if flagJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	tbl := output.NewTable("Language", "Comment")
	for _, e := range entries {
		tbl.AddRow(e.Name, e.CommentLeader)
	}
	return tbl.Fprint(cmd.OutOrStdout())
}
