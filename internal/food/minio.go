package food

import (
	"context"
	"fmt"

	"github.com/dtroode/nutrilog-server/internal/model"
)

// MinioSource loads reference tables stored as objects in a bucket.
type MinioSource struct {
	storage model.ObjectReader
}

// NewMinioSource creates a source reading through storage.
func NewMinioSource(storage model.ObjectReader) *MinioSource {
	return &MinioSource{storage: storage}
}

// Load downloads key and decodes it by its extension.
func (s *MinioSource) Load(ctx context.Context, key string) ([]model.Food, error) {
	exists, err := s.storage.Exists(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to check food reference object: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("food reference object %q: %w", key, model.ErrNotFound)
	}

	rc, err := s.storage.Download(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to download food reference: %w", err)
	}
	defer rc.Close()

	foods, err := Decode(key, rc)
	if err != nil {
		return nil, fmt.Errorf("failed to decode food reference: %w", err)
	}

	return foods, nil
}
