package cart

import (
	"context"
	"errors"
	"sync"
)

// ErrNoRecord is returned by Persistence.Load when the session has no saved
// cart. It is expected on first access and is not a failure.
var ErrNoRecord = errors.New("cart: no persisted record")

// Persistence stores serialized cart payloads keyed by session ID. The store
// treats payloads as opaque bytes so backends never need to understand the
// cart shape.
type Persistence interface {
	Load(ctx context.Context, sessionID string) ([]byte, error)
	Save(ctx context.Context, sessionID string, payload []byte) error
	Delete(ctx context.Context, sessionID string) error
}

// MemoryPersistence keeps payloads in process memory. Used in tests and as
// the fallback backend when no database is configured.
type MemoryPersistence struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemoryPersistence() *MemoryPersistence {
	return &MemoryPersistence{records: make(map[string][]byte)}
}

func (m *MemoryPersistence) Load(_ context.Context, sessionID string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	payload, ok := m.records[sessionID]
	if !ok {
		return nil, ErrNoRecord
	}
	out := make([]byte, len(payload))
	copy(out, payload)
	return out, nil
}

func (m *MemoryPersistence) Save(_ context.Context, sessionID string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(payload))
	copy(stored, payload)
	m.records[sessionID] = stored
	return nil
}

func (m *MemoryPersistence) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, sessionID)
	return nil
}
