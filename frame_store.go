package proptable

import "sync"

// Cleanable is implemented by stores that need frame-based cleanup.
type Cleanable interface {
	Cleanup(currentFrame uint64)
}

// stateEntry wraps a state value with frame tracking for staleness detection.
type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore is a type-safe store for transient widget state (resize
// sessions, open menus, drag edits). Entries not touched during the
// previous frame are dropped, so a widget that stops drawing releases
// its state automatically.
//
// Each Context owns its stores; nothing here is process-wide.
//
//	var sessions = gui.NewFrameStore[ResizeSession](ctx)
//	s := sessions.Get(tableID, ResizeSession{Column: -1})
//	s.Active = true // direct modification
type FrameStore[T any] struct {
	frame  *uint64
	states map[ID]*stateEntry[T]
	mu     sync.RWMutex
}

// NewFrameStore creates a store bound to ctx's frame counter and
// registers it for cleanup in ctx.Reset.
func NewFrameStore[T any](ctx *Context) *FrameStore[T] {
	store := &FrameStore[T]{
		frame:  &ctx.frame,
		states: make(map[ID]*stateEntry[T]),
	}
	ctx.stores = append(ctx.stores, store)
	return store
}

// Get retrieves state for id, creating it from defaultVal if absent.
// The returned pointer may be modified directly. The entry is marked as
// used this frame.
func (s *FrameStore[T]) Get(id ID, defaultVal T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.states[id]; ok {
		entry.lastFrame = *s.frame
		return &entry.value
	}
	entry := &stateEntry[T]{value: defaultVal, lastFrame: *s.frame}
	s.states[id] = entry
	return &entry.value
}

// GetIfExists returns state only if it already exists, without marking
// it as used.
func (s *FrameStore[T]) GetIfExists(id ID) *T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if entry, ok := s.states[id]; ok {
		return &entry.value
	}
	return nil
}

// Delete removes state for an ID.
func (s *FrameStore[T]) Delete(id ID) {
	s.mu.Lock()
	delete(s.states, id)
	s.mu.Unlock()
}

// Cleanup removes entries that weren't accessed in the previous frame.
// Called from Context.Reset after the frame counter advances.
func (s *FrameStore[T]) Cleanup(frame uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if frame == 0 {
		return
	}
	threshold := frame - 1
	for id, entry := range s.states {
		if entry.lastFrame < threshold {
			delete(s.states, id)
		}
	}
}

// Len returns the number of stored entries.
func (s *FrameStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.states)
}
