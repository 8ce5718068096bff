package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	cuestionario "github.com/goliatone/go-cuestionario"
	pkgcuestionario "github.com/goliatone/go-cuestionario/pkg/cuestionario"
	"github.com/goliatone/go-cuestionario/pkg/renderers/tui"
)

type runOptions struct {
	Multiline bool
	Prefixes  bool
}

func newRunCmd(global *globalOptions) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Answer the questionnaire interactively and submit it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := global.setup()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			ctrl, err := cuestionario.NewControllerFromConfig(cfg, pkgcuestionario.WithLogger(logger))
			if err != nil {
				return err
			}
			// The flow reports load failures to the respondent.
			if err := ctrl.Initialize(ctx); err != nil {
				logger.WithError(err).Debug("initial load failed")
			}

			flowOpts := []tui.Option{
				tui.WithPromptDriver(tui.NewSurveyDriver(cmd.OutOrStdout())),
				tui.WithDebugFormat(tui.DebugFormat(cfg.DebugFormat)),
				tui.WithMultilineAnswers(opts.Multiline),
			}
			if opts.Prefixes {
				flowOpts = append(flowOpts, tui.WithTheme(tui.Theme{InfoPrefix: "› ", ErrorPrefix: "✗ "}))
			}

			_, err = tui.New(flowOpts...).Run(ctx, ctrl)
			switch {
			case errors.Is(err, tui.ErrAborted), errors.Is(err, context.Canceled):
				fmt.Fprintln(cmd.ErrOrStderr(), "Cuestionario cancelado.")
				return nil
			default:
				return err
			}
		},
	}
	cmd.Flags().BoolVar(&opts.Multiline, "multiline", false, "answer each question in a multi-line editor")
	cmd.Flags().BoolVar(&opts.Prefixes, "prefixes", false, "prefix informational and error messages")
	return cmd
}
