package model

import (
	"context"
	"io"
)

// ObjectReader reads objects from a remote object store.
type ObjectReader interface {
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Exists(ctx context.Context, key string) (bool, error)
}
