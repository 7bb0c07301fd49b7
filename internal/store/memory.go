package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps every collection as an insertion-ordered slice guarded by
// a RWMutex. It backs the service when DATABASE_URL is not configured and is
// the fixture store for tests. Documents are copied on both write and read so
// callers never alias store state.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]Document)}
}

func (m *MemoryStore) Create(collection string, doc Document) (Document, error) {
	stored, err := copyDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to copy document: %w", err)
	}
	if !stored.Has("_id") {
		stored["_id"] = uuid.New().String()
	}

	m.mu.Lock()
	m.collections[collection] = append(m.collections[collection], stored)
	m.mu.Unlock()

	return copyDocument(stored)
}

func (m *MemoryStore) Query(collection string, filter Filter) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]Document, 0)
	for _, doc := range m.collections[collection] {
		if !matches(doc, filter) {
			continue
		}
		out, err := copyDocument(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to copy document: %w", err)
		}
		results = append(results, out)
	}
	return results, nil
}

func (m *MemoryStore) Collections() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func matches(doc Document, filter Filter) bool {
	for key, want := range filter {
		got, ok := doc[key]
		if !ok || !equalValues(got, want) {
			return false
		}
	}
	return true
}

// equalValues compares loosely across numeric types, since documents always
// hold float64 after the JSON round-trip while filters may carry ints.
func equalValues(got, want interface{}) bool {
	if gf, ok := asFloat(got); ok {
		if wf, ok := asFloat(want); ok {
			return gf == wf
		}
		return false
	}
	return got == want
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func copyDocument(doc Document) (Document, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var out Document
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
