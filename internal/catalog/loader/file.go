package loader

import (
	"context"
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
)

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("catalog loader: file path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, errors.Wrap(err, "catalog loader: read file")
	}
	return data, nil
}
