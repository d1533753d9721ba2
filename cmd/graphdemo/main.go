// Command graphdemo runs a fixed sequence of graph operations against two
// sample graphs and prints the results to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/undigraph/internal/config"
)

var (
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graphdemo",
		Short: "Demonstrate subgraph, union, intersection, degree and reachability queries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(flagLogLevel)
			if err != nil {
				return err
			}

			sc := config.Default()
			if flagConfig != "" {
				if sc, err = config.Load(flagConfig); err != nil {
					return err
				}
				log.WithField("path", flagConfig).Debug("scenario loaded")
			}

			return run(cmd.OutOrStdout(), sc, log)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "YAML scenario file (built-in sample graphs when empty)")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug|info|warn|error")

	return cmd
}

// newLogger returns a stderr text logger at the given level.
func newLogger(level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(lvl)

	return log, nil
}
