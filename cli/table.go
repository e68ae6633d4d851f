package cli

import (
	"github.com/spf13/cobra"

	"github.com/final-project/speechprep/report"
)

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print translation precision/recall/F1 per language pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return report.Render(stdout(cmd), report.TranslationScores)
		},
	}
}
