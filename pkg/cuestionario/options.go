package cuestionario

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-cuestionario/pkg/submit"
)

// DefaultSubmitURL is where answers are posted.
const DefaultSubmitURL = "https://kth2025backend-production.up.railway.app/respuestas-cuestionarios"

// Submitter posts a payload and reports the request identifier it used.
// *submit.Client satisfies it.
type Submitter interface {
	Send(ctx context.Context, payload any) (string, error)
}

var _ Submitter = (*submit.Client)(nil)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for load and submit diagnostics.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSubmitter replaces the submission client.
func WithSubmitter(s Submitter) Option {
	return func(c *Controller) {
		if s != nil {
			c.submitter = s
		}
	}
}

// WithSubmitURL points submissions at another collector. It exists for
// tests and staging setups; the CLI always uses DefaultSubmitURL.
func WithSubmitURL(url string, client *http.Client) Option {
	return func(c *Controller) {
		c.submitter = submit.New(url, submit.WithHTTPClient(client))
	}
}
