package state

import (
	"sync"

	"github.com/google/uuid"
)

// FormMode tracks what the entity form is doing.
type FormMode int

const (
	FormClosed FormMode = iota
	FormCreating
	FormEditing
)

// EntityStore holds one entity collection plus its selection and form state.
// Records are keyed by the id function supplied at construction. All methods
// are safe for concurrent use.
type EntityStore[T any] struct {
	id func(T) uuid.UUID

	mu       sync.RWMutex
	items    []T
	selected *T
	mode     FormMode
}

func NewEntityStore[T any](id func(T) uuid.UUID) *EntityStore[T] {
	if id == nil {
		panic("state: id function is required")
	}
	return &EntityStore[T]{id: id}
}

// Initialize replaces the whole collection, clearing any selection.
func (s *EntityStore[T]) Initialize(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]T, len(items))
	copy(s.items, items)
	s.selected = nil
	s.mode = FormClosed
}

// Items returns a snapshot copy of the collection.
func (s *EntityStore[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the collection size.
func (s *EntityStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get returns the record with the given id, if present.
func (s *EntityStore[T]) Get(id uuid.UUID) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.id(s.items[i]) == id {
			return s.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Add appends a record to the collection.
func (s *EntityStore[T]) Add(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
}

// Update replaces the record with the same id. Unknown ids are a silent
// no-op so a stale server echo cannot corrupt the collection.
func (s *EntityStore[T]) Update(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.id(s.items[i]) == s.id(item) {
			s.items[i] = item
			if s.selected != nil && s.id(*s.selected) == s.id(item) {
				s.selected = &item
			}
			return
		}
	}
}

// Remove drops the record with the given id. Removing the selected record
// also clears the selection and closes the form.
func (s *EntityStore[T]) Remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.id(s.items[i]) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	if s.selected != nil && s.id(*s.selected) == id {
		s.selected = nil
		s.mode = FormClosed
	}
}

// Select marks a record as selected and opens the form in edit mode.
func (s *EntityStore[T]) Select(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = &item
	s.mode = FormEditing
}

// Selected returns the current selection, if any.
func (s *EntityStore[T]) Selected() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		var zero T
		return zero, false
	}
	return *s.selected, true
}

// OpenCreate opens the form for a new record, dropping any selection.
func (s *EntityStore[T]) OpenCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
	s.mode = FormCreating
}

// ClearSelection closes the form and drops the selection.
func (s *EntityStore[T]) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
	s.mode = FormClosed
}

// FormMode reports the current form state.
func (s *EntityStore[T]) FormMode() FormMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// IsFormOpen reports whether the form is open in any mode.
func (s *EntityStore[T]) IsFormOpen() bool {
	return s.FormMode() != FormClosed
}
