package store

import "context"

// Store is a minimal document store: schemaless records in named collections,
// addressed by opaque string ids assigned at creation. Documents returned by
// reads carry their id under the "id" key. FindOne returns
// apperrors.ErrNotFound when no document matches; a malformed id behaves the
// same way since ids are opaque to callers.
type Store interface {
	Create(ctx context.Context, collection string, doc map[string]any) (string, error)
	List(ctx context.Context, collection string, filter map[string]any) ([]map[string]any, error)
	FindOne(ctx context.Context, collection string, id string) (map[string]any, error)
	Collections(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}
