// SPDX-License-Identifier: MIT

// Command spgemmtune picks a process grid for a sparse matrix product,
// moves the operands onto it, and scores predictions against measurements.
//
//	spgemmtune tune --config run.yaml --predictions pred.csv
//	spgemmtune evaluate pred.csv measured.csv
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "spgemmtune",
		Short:         "Autotune the process grid of a distributed SpGEMM",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("log-level", "", "override the configured log level (debug, info, warn, error)")
	root.AddCommand(newTuneCmd(), newEvaluateCmd())
	return root
}

func newLogger(cmd *cobra.Command, level logrus.Level) (*logrus.Logger, error) {
	if s, _ := cmd.Flags().GetString("log-level"); s != "" {
		l, err := logrus.ParseLevel(s)
		if err != nil {
			return nil, err
		}
		level = l
	}
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return log, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("spgemmtune failed")
		os.Exit(1)
	}
}
