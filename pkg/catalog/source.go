package catalog

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"
)

// Source identifies where a dataset comes from so loaders can read files,
// fs.FS entries or URLs without callers caring which.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

type fileSource struct {
	path string
}

func (s fileSource) Location() string {
	return s.path
}

func (s fileSource) Kind() SourceKind {
	return SourceKindFile
}

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string {
	return s.name
}

func (s fsSource) Kind() SourceKind {
	return SourceKindFS
}

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

type urlSource struct {
	raw string
}

func (s urlSource) Location() string {
	return s.raw
}

func (s urlSource) Kind() SourceKind {
	return SourceKindURL
}

// SourceFromURL returns a Source for an HTTP(S) endpoint. It panics on an
// invalid URL to surface wiring mistakes early; use ParseSource for values
// that come from configuration.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("catalog: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("catalog: invalid URL %q: %v", raw, err))
	}
	return urlSource{raw: raw}
}

// ParseSource turns a configured location into a Source: http(s) URLs
// become URL sources, anything else a file path.
func ParseSource(raw string) (Source, error) {
	location := strings.TrimSpace(raw)
	if location == "" {
		return nil, errors.New("catalog: empty source")
	}
	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		u, err := url.ParseRequestURI(location)
		if err != nil {
			return nil, errors.Wrapf(err, "catalog: invalid URL %q", location)
		}
		if u.Host == "" {
			return nil, errors.Errorf("catalog: URL %q has no host", location)
		}
		return urlSource{raw: location}, nil
	}
	return SourceFromFile(location), nil
}
