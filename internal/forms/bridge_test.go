package forms

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/immogest/immogest-backend/internal/state"
	"github.com/immogest/immogest-backend/internal/tenants"
	pkgerrors "github.com/immogest/immogest-backend/pkg/errors"
)

func newBridge(t *testing.T) (*Bridge[tenants.TenantDTO], *state.EntityStore[tenants.TenantDTO]) {
	t.Helper()
	store := state.NewEntityStore(func(td tenants.TenantDTO) uuid.UUID { return td.ID })
	bridge, err := NewBridge(store)
	if err != nil {
		t.Fatalf("new bridge: %v", err)
	}
	return bridge, store
}

func TestSubmitCreateAppendsCanonicalRecord(t *testing.T) {
	bridge, store := newBridge(t)
	bridge.OpenCreate()

	canonical := tenants.TenantDTO{ID: uuid.New(), FirstName: "Aminatou"}
	err := bridge.Submit(context.Background(), func(context.Context) (*tenants.TenantDTO, FieldErrors, error) {
		return &canonical, nil, nil
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	items := store.Items()
	if len(items) != 1 || items[0].ID != canonical.ID {
		t.Fatalf("expected canonical record in store, got %+v", items)
	}
	if store.IsFormOpen() {
		t.Fatal("expected form closed after success")
	}
	if len(bridge.Errors()) != 0 {
		t.Fatalf("expected no errors, got %v", bridge.Errors())
	}
}

func TestSubmitEditReplacesRecord(t *testing.T) {
	bridge, store := newBridge(t)
	original := tenants.TenantDTO{ID: uuid.New(), FirstName: "Paul"}
	store.Initialize([]tenants.TenantDTO{original})
	bridge.OpenEdit(original)

	updated := original
	updated.FirstName = "Paul-Henri"
	err := bridge.Submit(context.Background(), func(context.Context) (*tenants.TenantDTO, FieldErrors, error) {
		return &updated, nil, nil
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	items := store.Items()
	if len(items) != 1 || items[0].FirstName != "Paul-Henri" {
		t.Fatalf("expected replaced record, got %+v", items)
	}
	if _, ok := store.Selected(); ok {
		t.Fatal("expected selection cleared after success")
	}
}

func TestSubmitValidationFailureKeepsFormOpen(t *testing.T) {
	bridge, store := newBridge(t)
	bridge.OpenCreate()

	err := bridge.Submit(context.Background(), func(context.Context) (*tenants.TenantDTO, FieldErrors, error) {
		return nil, FieldErrors{"phone": "phone is required"}, nil
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if !store.IsFormOpen() {
		t.Fatal("expected form still open after validation failure")
	}
	if store.Len() != 0 {
		t.Fatal("expected nothing written to the store")
	}
	if bridge.Errors()["phone"] != "phone is required" {
		t.Fatalf("expected field error kept, got %v", bridge.Errors())
	}
}

func TestSubmitTransportErrorLeavesStoreUntouched(t *testing.T) {
	bridge, store := newBridge(t)
	bridge.OpenCreate()

	gotErr := bridge.Submit(context.Background(), func(context.Context) (*tenants.TenantDTO, FieldErrors, error) {
		return nil, nil, errors.New("connection reset")
	})
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", gotErr)
	}
	if store.Len() != 0 {
		t.Fatal("expected store untouched")
	}
	if !store.IsFormOpen() {
		t.Fatal("expected form still open for retry")
	}
}

func TestSubmitRequiresOpenForm(t *testing.T) {
	bridge, _ := newBridge(t)
	gotErr := bridge.Submit(context.Background(), func(context.Context) (*tenants.TenantDTO, FieldErrors, error) {
		t.Fatal("submit must not be called for a closed form")
		return nil, nil, nil
	})
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", gotErr)
	}
}

func TestCancelDropsErrorsAndSelection(t *testing.T) {
	bridge, store := newBridge(t)
	record := tenants.TenantDTO{ID: uuid.New()}
	store.Initialize([]tenants.TenantDTO{record})
	bridge.OpenEdit(record)
	_ = bridge.Submit(context.Background(), func(context.Context) (*tenants.TenantDTO, FieldErrors, error) {
		return nil, FieldErrors{"phone": "bad"}, nil
	})

	bridge.Cancel()

	if store.IsFormOpen() {
		t.Fatal("expected form closed")
	}
	if len(bridge.Errors()) != 0 {
		t.Fatalf("expected errors dropped, got %v", bridge.Errors())
	}
	if store.Len() != 1 {
		t.Fatal("expected collection untouched by cancel")
	}
}

func TestDeleteRemovesFromStoreOnlyAfterServerSuccess(t *testing.T) {
	bridge, store := newBridge(t)
	record := tenants.TenantDTO{ID: uuid.New()}
	store.Initialize([]tenants.TenantDTO{record})

	gotErr := bridge.Delete(context.Background(), record.ID, func(context.Context) error {
		return errors.New("forbidden")
	})
	if gotErr == nil {
		t.Fatal("expected delete error surfaced")
	}
	if store.Len() != 1 {
		t.Fatal("expected record kept after failed delete")
	}

	if err := bridge.Delete(context.Background(), record.ID, func(context.Context) error {
		return nil
	}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if store.Len() != 0 {
		t.Fatal("expected record removed after successful delete")
	}
}
