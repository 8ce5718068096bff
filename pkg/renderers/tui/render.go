package tui

import (
	"encoding/json"
	"strings"

	"github.com/flosch/pongo2/v6"
	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-cuestionario/pkg/cuestionario"
)

const summaryTemplate = `{% autoescape off %}Cuestionario enviado correctamente.
Investigador/a: {{ investigador|default:"(sin seleccionar)" }}
Unidad académica: {{ escuela|default:"(sin seleccionar)" }}
Respuestas completadas: {{ answered }} de {{ total }}{% endautoescape %}`

var summaryTpl = pongo2.Must(pongo2.FromString(summaryTemplate))

func renderSummary(res Result) (string, error) {
	out, err := summaryTpl.Execute(pongo2.Context{
		"investigador": res.Investigador,
		"escuela":      res.Escuela,
		"answered":     res.Answered,
		"total":        len(res.Payload.Respuestas),
	})
	if err != nil {
		return "", errors.Wrap(err, "tui: render summary")
	}
	return out, nil
}

// renderDebug serialises the payload preview.
func renderDebug(payload cuestionario.PostData, format DebugFormat) (string, error) {
	switch format {
	case DebugFormatYAML:
		out, err := yaml.Marshal(payload)
		if err != nil {
			return "", errors.Wrap(err, "tui: encode yaml preview")
		}
		return strings.TrimRight(string(out), "\n"), nil
	default:
		out, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return "", errors.Wrap(err, "tui: encode json preview")
		}
		return string(out), nil
	}
}
