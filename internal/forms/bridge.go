package forms

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/immogest/immogest-backend/internal/state"
	pkgerrors "github.com/immogest/immogest-backend/pkg/errors"
)

// FieldErrors maps field names to the message shown under each input.
type FieldErrors map[string]string

// SubmitFunc performs the server call for an open form. It returns the
// canonical record on success, field errors when validation fails, or an
// error when the call itself broke.
type SubmitFunc[T any] func(ctx context.Context) (*T, FieldErrors, error)

// DeleteFunc performs the server-side delete for a record.
type DeleteFunc func(ctx context.Context) error

// Bridge connects one entity form to its store. Only records echoed back by
// the server reach the store; locally typed values never do.
type Bridge[T any] struct {
	store *state.EntityStore[T]

	mu         sync.Mutex
	submitting bool
	errors     FieldErrors
}

func NewBridge[T any](store *state.EntityStore[T]) (*Bridge[T], error) {
	if store == nil {
		return nil, fmt.Errorf("entity store required")
	}
	return &Bridge[T]{store: store}, nil
}

// OpenCreate opens an empty form.
func (b *Bridge[T]) OpenCreate() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.errors = nil
	b.store.OpenCreate()
}

// OpenEdit opens the form pre-filled with an existing record.
func (b *Bridge[T]) OpenEdit(record T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.errors = nil
	b.store.Select(record)
}

// Cancel closes the form, dropping any field errors and selection.
func (b *Bridge[T]) Cancel() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.errors = nil
	b.store.ClearSelection()
}

// Errors returns the field errors from the last failed submit.
func (b *Bridge[T]) Errors() FieldErrors {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(FieldErrors, len(b.errors))
	for k, v := range b.errors {
		out[k] = v
	}
	return out
}

// IsSubmitting reports whether a submit is in flight.
func (b *Bridge[T]) IsSubmitting() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.submitting
}

// Submit runs the server call for the open form. On success the canonical
// record is merged into the store (appended when creating, replaced when
// editing) and the form closes. Validation failures keep the form open with
// field errors attached.
func (b *Bridge[T]) Submit(ctx context.Context, submit SubmitFunc[T]) error {
	if submit == nil {
		return pkgerrors.New(pkgerrors.CodeInternal, "no submit function")
	}

	b.mu.Lock()
	if b.submitting {
		b.mu.Unlock()
		return pkgerrors.New(pkgerrors.CodeConflict, "submit already in flight")
	}
	mode := b.store.FormMode()
	if mode == state.FormClosed {
		b.mu.Unlock()
		return pkgerrors.New(pkgerrors.CodeConflict, "form is not open")
	}
	b.submitting = true
	b.mu.Unlock()

	record, fieldErrs, err := submit(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.submitting = false

	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "submitting form")
	}
	if len(fieldErrs) > 0 {
		b.errors = fieldErrs
		return nil
	}
	if record == nil {
		return pkgerrors.New(pkgerrors.CodeInternal, "submit returned no record")
	}

	switch mode {
	case state.FormCreating:
		b.store.Add(*record)
	case state.FormEditing:
		b.store.Update(*record)
	}
	b.errors = nil
	b.store.ClearSelection()
	return nil
}

// Delete removes a record server-side first, then from the store. The store
// is untouched when the server call fails.
func (b *Bridge[T]) Delete(ctx context.Context, id uuid.UUID, remove DeleteFunc) error {
	if remove == nil {
		return pkgerrors.New(pkgerrors.CodeInternal, "no delete function")
	}
	if err := remove(ctx); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting record")
	}
	b.store.Remove(id)
	return nil
}
