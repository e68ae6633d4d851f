// Package cli wires the speechprep commands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cfg "github.com/final-project/speechprep/config"
)

type rootOptions struct {
	configPath string
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "speechprep",
		Short:         "Speech corpus preprocessing and evaluation reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default config/$CONFIG_ENV/config.yaml)")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(newPreprocessCmd(opts), newStatsCmd(opts), newTableCmd())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setup loads configuration with cmd's flags layered on top and builds
// the logger. Logs go to the command's stderr.
func setup(cmd *cobra.Command, opts *rootOptions) (*cfg.Root, *logrus.Logger, error) {
	conf, err := cfg.Load(opts.configPath, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	log, err := cfg.NewLogger(conf.Pipeline.LogLvl, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}
	return conf, log, nil
}

func stdout(cmd *cobra.Command) io.Writer { return cmd.OutOrStdout() }
