package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/pulseanalytics/pulse/internal/apperrors"
)

// MemoryStore is an in-process Store for tests. Documents are held per
// collection in insertion order; a mutex guards concurrent writes.
type MemoryStore struct {
	mu   sync.Mutex
	docs map[string][]memoryDoc
}

type memoryDoc struct {
	id   string
	data map[string]any
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]memoryDoc)}
}

func (s *MemoryStore) Create(_ context.Context, collection string, doc map[string]any) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := make(map[string]any, len(doc))
	for k, v := range doc {
		data[k] = v
	}

	id := uuid.New().String()
	s.docs[collection] = append(s.docs[collection], memoryDoc{id: id, data: data})
	return id, nil
}

func (s *MemoryStore) List(_ context.Context, collection string, filter map[string]any) ([]map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := make([]map[string]any, 0)
	for _, d := range s.docs[collection] {
		if matches(d.data, filter) {
			docs = append(docs, withID(d.data, d.id))
		}
	}
	return docs, nil
}

func (s *MemoryStore) FindOne(_ context.Context, collection string, id string) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.docs[collection] {
		if d.id == id {
			return withID(d.data, d.id), nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *MemoryStore) Collections(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.docs))
	for name := range s.docs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

// matches compares document fields against the filter by string rendering,
// mirroring the jsonb ->> text comparison of the postgres store.
func matches(data map[string]any, filter map[string]any) bool {
	for key, want := range filter {
		have, ok := data[key]
		if !ok || fmt.Sprint(have) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}
