package proptable

import "sync"

//go:generate mockgen -source=state.go -destination=state_mock_test.go -package=proptable_test StateStore

// StateStore persists TableState between frames and sessions.
// The table never owns persistence: it loads its state by key at the
// start of a frame, mutates it in place and hands it back to Save at
// the end.
//
// Implementations must return the same pointer from Load for a key until
// it is replaced, since the table mutates the state directly.
type StateStore interface {
	Load(key string) (*TableState, bool)
	Save(key string, state *TableState) error
}

// MemoryStateStore is the default in-memory StateStore. It is the
// canonical store, so Save only records the pointer.
type MemoryStateStore struct {
	mu     sync.RWMutex
	states map[string]*TableState
}

// NewMemoryStateStore creates an empty store.
func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{states: make(map[string]*TableState)}
}

// Load returns the state stored under key.
func (m *MemoryStateStore) Load(key string) (*TableState, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.states[key]
	return s, ok
}

// Save stores state under key.
func (m *MemoryStateStore) Save(key string, state *TableState) error {
	m.mu.Lock()
	m.states[key] = state
	m.mu.Unlock()
	return nil
}

// loadTableState returns the state for key, creating an empty one on
// first use.
func (ctx *Context) loadTableState(key string) *TableState {
	if s, ok := ctx.stateStore.Load(key); ok && s != nil {
		return s
	}
	s := NewTableState()
	if err := ctx.stateStore.Save(key, s); err != nil {
		ctx.logger.Warn("table state: initial save failed", "table", key, "err", err)
	}
	return s
}

// saveTableState flushes state through the store's Save hook. Failures
// are logged; a frame never aborts because persistence failed.
func (ctx *Context) saveTableState(key string, state *TableState) {
	if err := ctx.stateStore.Save(key, state); err != nil {
		ctx.logger.Warn("table state: save failed", "table", key, "err", err)
	}
}
