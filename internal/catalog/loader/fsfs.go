package loader

import (
	"context"
	"io/fs"

	"github.com/go-faster/errors"
)

func loadFromFS(ctx context.Context, files fs.FS, name string) ([]byte, error) {
	if name == "" {
		return nil, errors.New("catalog loader: fs path is required")
	}
	if files == nil {
		return nil, errors.New("catalog loader: fs is nil")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := fs.ReadFile(files, name)
	if err != nil {
		return nil, errors.Wrap(err, "catalog loader: read fs")
	}
	return data, nil
}
