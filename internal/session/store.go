// Package session keeps per-session conversation history for the
// serving surface. The pipeline itself never touches it: history is
// loaded before a turn and saved after, per session identity.
package session

import (
	"context"
	"sync"

	"github.com/cloudwego/eino/schema"
)

// Store loads and saves conversation history keyed by session id.
type Store interface {
	Load(ctx context.Context, sessionID string) ([]*schema.Message, error)
	Save(ctx context.Context, sessionID string, history []*schema.Message) error
}

// MemoryStore keeps histories in process memory. Unknown sessions load
// as empty history.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]*schema.Message
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string][]*schema.Message)}
}

func (m *MemoryStore) Load(_ context.Context, sessionID string) ([]*schema.Message, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	history := m.sessions[sessionID]
	out := make([]*schema.Message, len(history))
	copy(out, history)
	return out, nil
}

func (m *MemoryStore) Save(_ context.Context, sessionID string, history []*schema.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]*schema.Message, len(history))
	copy(stored, history)
	m.sessions[sessionID] = stored
	return nil
}
