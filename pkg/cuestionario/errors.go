package cuestionario

import "github.com/go-faster/errors"

// LoadErrorMessage is the user-facing text stored when the initial load fails.
const LoadErrorMessage = "Error al cargar los datos. Por favor intente más tarde."

var (
	// ErrIndexOutOfRange is returned by UpdateRespuesta for an index outside
	// the current question list.
	ErrIndexOutOfRange = errors.New("cuestionario: answer index out of range")
	// ErrNoSources is returned by Initialize when a dataset source is missing.
	ErrNoSources = errors.New("cuestionario: dataset sources are not configured")
)
