package loader

import (
	"context"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-faster/errors"

	"github.com/goliatone/go-cuestionario/pkg/catalog"
)

// Loader implements catalog.Loader by delegating to file, fs.FS, or HTTP
// strategies.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

var _ catalog.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options catalog.LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		httpClient = options.HTTPClient
	case options.AllowHTTPFallback:
		httpClient = &http.Client{}
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
	}
}

// Load fetches the payload behind src and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src catalog.Source) (catalog.Document, error) {
	if src == nil {
		return catalog.Document{}, errors.New("catalog loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case catalog.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case catalog.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case catalog.SourceKindURL:
		if !l.allowHTTP {
			return catalog.Document{}, errors.New("catalog loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.Errorf("catalog loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return catalog.Document{}, err
	}

	return catalog.NewDocument(src, data)
}
