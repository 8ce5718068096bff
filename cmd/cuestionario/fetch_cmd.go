package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	cuestionario "github.com/goliatone/go-cuestionario"
	"github.com/goliatone/go-cuestionario/pkg/catalog"
)

type fetchOptions struct {
	Format string
}

func newFetchCmd(global *globalOptions) *cobra.Command {
	var opts fetchOptions

	cmd := &cobra.Command{
		Use:       "fetch <unidades|academicos|preguntas>",
		Short:     "Print one reference dataset",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"unidades", "academicos", "preguntas"},
		RunE: func(cmd *cobra.Command, args []string) error {
			format := strings.ToLower(strings.TrimSpace(opts.Format))
			if format != "json" && format != "yaml" {
				return errors.Errorf("--format must be json or yaml, got %q", opts.Format)
			}

			cfg, logger, err := global.setup()
			if err != nil {
				return err
			}
			srcs, err := cfg.Sources()
			if err != nil {
				return err
			}

			var src catalog.Source
			switch args[0] {
			case "unidades":
				src = srcs.Unidades
			case "academicos":
				src = srcs.Academicos
			case "preguntas":
				src = srcs.Cuestionarios
			default:
				return errors.Errorf("unknown dataset %q", args[0])
			}

			loader := cuestionario.NewLoader(catalog.WithHTTPFallback(cfg.RequestTimeout))
			doc, err := loader.Load(cmd.Context(), src)
			if err != nil {
				return errors.Wrapf(err, "fetch %s", args[0])
			}
			logger.WithField("source", doc.Location()).Debug("dataset fetched")

			var env any
			switch args[0] {
			case "unidades":
				env, err = catalog.DecodeEnvelope[catalog.AcademicUnit](doc)
			case "academicos":
				env, err = catalog.DecodeEnvelope[catalog.Researcher](doc)
			default:
				env, err = catalog.DecodeEnvelope[catalog.SurveyQuestion](doc)
			}
			if err != nil {
				return err
			}

			out, err := encode(env, format)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&opts.Format, "format", "json", "output format: json or yaml")
	return cmd
}

// encode renders v as indented JSON, or as YAML derived from that JSON so
// opaque question payloads keep their fields.
func encode(v any, format string) (string, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encode json")
	}
	if format == "json" {
		return string(raw), nil
	}
	var tree any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return "", errors.Wrap(err, "convert to yaml")
	}
	out, err := yaml.Marshal(tree)
	if err != nil {
		return "", errors.Wrap(err, "encode yaml")
	}
	return strings.TrimRight(string(out), "\n"), nil
}
