package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/final-project/speechprep/orchestrator"
)

func newStatsCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [manifest]",
		Short: "Print the summary of an existing train.txt",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, log, err := setup(cmd, root)
			if err != nil {
				return err
			}
			path := filepath.Join(conf.Paths.Outputs, orchestrator.ManifestName)
			if len(args) == 1 {
				path = args[0]
			}
			log.WithField("manifest", path).Debug("reading manifest")

			records, err := orchestrator.ReadManifest(path)
			if err != nil {
				return err
			}
			s, err := orchestrator.Summarize(records, conf.Audio.FrameShiftMs)
			if err != nil {
				return err
			}
			return s.Print(stdout(cmd))
		},
	}
	cmd.Flags().String("out-dir", "./training", "directory holding train.txt")
	return cmd
}
