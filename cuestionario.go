package cuestionario

import (
	internalLoader "github.com/goliatone/go-cuestionario/internal/catalog/loader"
	"github.com/goliatone/go-cuestionario/pkg/catalog"
	"github.com/goliatone/go-cuestionario/pkg/config"
	pkgcuestionario "github.com/goliatone/go-cuestionario/pkg/cuestionario"
)

// Controller aliases the survey controller for callers of the root package.
type Controller = pkgcuestionario.Controller

// Sources aliases the dataset locations the controller reads.
type Sources = pkgcuestionario.Sources

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...catalog.LoaderOption) catalog.Loader {
	cfg := catalog.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewController wires a controller over the default loader configured with
// loaderOptions.
func NewController(sources Sources, loaderOptions []catalog.LoaderOption, options ...pkgcuestionario.Option) *Controller {
	return pkgcuestionario.New(NewLoader(loaderOptions...), sources, options...)
}

// NewControllerFromConfig builds a controller from environment settings.
// Remote locations are fetched with the configured request timeout.
func NewControllerFromConfig(cfg *config.Config, options ...pkgcuestionario.Option) (*Controller, error) {
	srcs, err := cfg.Sources()
	if err != nil {
		return nil, err
	}
	loader := NewLoader(catalog.WithHTTPFallback(cfg.RequestTimeout))
	return pkgcuestionario.New(loader, Sources{
		Unidades:      srcs.Unidades,
		Academicos:    srcs.Academicos,
		Cuestionarios: srcs.Cuestionarios,
	}, options...), nil
}
