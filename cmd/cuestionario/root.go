package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-cuestionario/pkg/config"
	"github.com/goliatone/go-cuestionario/pkg/logging"
)

type globalOptions struct {
	EnvFiles []string
	LogLevel string
}

func newRootCmd() *cobra.Command {
	var opts globalOptions

	cmd := &cobra.Command{
		Use:           "cuestionario",
		Short:         "Fill in and submit the research questionnaire",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringArrayVar(&opts.EnvFiles, "env-file", nil, "dotenv file to load (repeatable, defaults to .env and .env.local)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level, overrides LOG_LEVEL")

	cmd.AddCommand(newRunCmd(&opts))
	cmd.AddCommand(newFetchCmd(&opts))
	return cmd
}

// setup loads configuration and builds the logger both commands share.
func (o *globalOptions) setup() (*config.Config, *logrus.Logger, error) {
	cfg, err := config.Load(o.EnvFiles...)
	if err != nil {
		return nil, nil, err
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	return cfg, logging.Console(cfg.LogLevel), nil
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
