package cli

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/final-project/speechprep/clients"
	"github.com/final-project/speechprep/orchestrator"
)

func newPreprocessCmd(root *rootOptions) *cobra.Command {
	var noProgress, printConfig bool
	cmd := &cobra.Command{
		Use:   "preprocess",
		Short: "Extract features for every utterance and write train.txt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, log, err := setup(cmd, root)
			if err != nil {
				return err
			}
			if printConfig {
				if err := conf.Dump(cmd.ErrOrStderr()); err != nil {
					return err
				}
			}
			if conf.Services.Features.URL == "" {
				return errors.New("no feature service configured: set services.features.url or --features-url")
			}

			runID := uuid.NewString()
			entry := log.WithFields(logrus.Fields{"run_id": runID, "in_dir": conf.Paths.Data, "out_dir": conf.Paths.Outputs})

			h := clients.NewHTTP()
			h.RunID = runID
			var progress orchestrator.Progress = orchestrator.NoProgress
			if !noProgress {
				progress = orchestrator.NewBarProgress(cmd.ErrOrStderr(), "preprocessing")
			}

			b := orchestrator.NewBuilder(
				orchestrator.NewFeatureTransform(h, conf.Services.Features.URL, conf.Audio),
				orchestrator.WithWorkers(conf.WorkerCount()),
				orchestrator.WithProgress(progress),
				orchestrator.WithLogger(entry),
			)
			records, err := b.Build(cmd.Context(), conf.Paths.Data, conf.Paths.Outputs)
			if err != nil {
				return err
			}
			_, err = orchestrator.WriteManifest(records, conf.Paths.Outputs, conf.Audio.FrameShiftMs, stdout(cmd))
			return err
		},
	}
	f := cmd.Flags()
	f.String("in-dir", "./LJSpeech-1.1", "corpus root containing metadata.csv and wavs/")
	f.String("out-dir", "./training", "directory for artifacts and train.txt")
	f.Int("workers", 0, "parallel transforms (0 = one per logical core)")
	f.String("features-url", "", "base URL of the feature extraction service")
	f.BoolVar(&noProgress, "no-progress", false, "disable the progress bar")
	f.BoolVar(&printConfig, "print-config", false, "print the effective configuration before running")
	return cmd
}
