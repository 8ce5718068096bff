package catalog

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/go-faster/errors"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a document payload.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DetectFormat infers the payload encoding from the document location.
// Only .yaml/.yml locations are treated as YAML.
func DetectFormat(location string) Format {
	p := location
	if u, err := url.Parse(location); err == nil && u.Scheme != "" && u.Host != "" {
		p = u.Path
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// DecodeEnvelope decodes a document into an Envelope of T. YAML documents
// are normalised to JSON first so both encodings share the same field
// names and identifier handling.
func DecodeEnvelope[T any](doc Document) (Envelope[T], error) {
	var env Envelope[T]
	raw := doc.Raw()
	if len(raw) == 0 {
		return env, errors.New("catalog: empty document")
	}

	if DetectFormat(doc.Location()) == FormatYAML {
		converted, err := yamlToJSON(raw)
		if err != nil {
			return env, errors.Wrapf(err, "catalog: decode %s", doc.Location())
		}
		raw = converted
	}

	if err := json.Unmarshal(raw, &env); err != nil {
		return env, errors.Wrapf(err, "catalog: decode %s", doc.Location())
	}
	return env, nil
}

func yamlToJSON(raw []byte) ([]byte, error) {
	var tree any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return nil, errors.Wrap(err, "parse yaml")
	}
	out, err := json.Marshal(tree)
	if err != nil {
		return nil, errors.Wrap(err, "convert yaml")
	}
	return out, nil
}
