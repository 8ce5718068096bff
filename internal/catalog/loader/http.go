package loader

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-faster/errors"
)

// loadHTTP returns the response body whatever the status code: the
// reference endpoints report failure inside the envelope, so a non-2xx
// reply carrying a body is left for the decoder to judge. Only an empty
// non-2xx reply is an error here.
func loadHTTP(ctx context.Context, client *http.Client, url string, timeout time.Duration) ([]byte, error) {
	if client == nil {
		return nil, errors.New("catalog loader: http client is not configured")
	}
	if url == "" {
		return nil, errors.New("catalog loader: url is required")
	}

	reqCtx := ctx
	var cancel context.CancelFunc
	if timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "catalog loader: build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog loader: get %s", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog loader: read %s", url)
	}

	if len(data) == 0 && (resp.StatusCode < 200 || resp.StatusCode >= 300) {
		return nil, errors.Errorf("catalog loader: unexpected status %s from %s", resp.Status, url)
	}
	return data, nil
}
