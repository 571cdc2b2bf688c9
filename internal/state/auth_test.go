package state

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/immogest/immogest-backend/internal/permissions"
	"github.com/immogest/immogest-backend/internal/users"
	"github.com/immogest/immogest-backend/pkg/enums"
)

type stubFetcher struct {
	perms permissions.GlobalPermissions
	err   error
	calls int
}

func (s *stubFetcher) GlobalPermissions(_ context.Context) (permissions.GlobalPermissions, error) {
	s.calls++
	return s.perms, s.err
}

func account() *users.UserDTO {
	return &users.UserDTO{ID: uuid.New(), Email: "gerant@immogest.cm", Role: enums.UserRoleManager}
}

func TestSetUserZeroValueClearsAuthentication(t *testing.T) {
	app := NewAppState(nil)

	app.SetUser(account())
	if !app.IsAuthenticated() {
		t.Fatal("expected authenticated after real account")
	}

	// A guest session serializes to an empty object, which decodes to a
	// zero-value account.
	app.SetUser(&users.UserDTO{})
	if app.IsAuthenticated() {
		t.Fatal("expected zero-value account treated as signed out")
	}

	app.SetUser(nil)
	if app.IsAuthenticated() {
		t.Fatal("expected nil account treated as signed out")
	}
}

func TestLoadPermissionsFetchesOncePerSession(t *testing.T) {
	fetcher := &stubFetcher{perms: permissions.GlobalPermissions{
		PropertyScopePerm: enums.PermissionLevelUpdate,
		BuildingScopePerm: enums.PermissionLevelView,
	}}
	app := NewAppState(fetcher)
	app.SetUser(account())

	for i := 0; i < 3; i++ {
		if err := app.LoadPermissions(context.Background()); err != nil {
			t.Fatalf("load %d: %v", i, err)
		}
	}
	if fetcher.calls != 1 {
		t.Fatalf("expected one fetch per session, got %d", fetcher.calls)
	}

	perms, status := app.Permissions()
	if status != PermissionsLoaded {
		t.Fatalf("expected loaded status, got %d", status)
	}
	if perms.PropertyScopePerm != enums.PermissionLevelUpdate {
		t.Fatalf("unexpected property scope %s", perms.PropertyScopePerm)
	}
}

func TestLoadPermissionsFailureAllowsRetry(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("network down")}
	app := NewAppState(fetcher)
	app.SetUser(account())

	if err := app.LoadPermissions(context.Background()); err == nil {
		t.Fatal("expected fetch error surfaced")
	}
	if _, status := app.Permissions(); status != PermissionsNotLoaded {
		t.Fatalf("expected status reset after failure, got %d", status)
	}

	fetcher.err = nil
	if err := app.LoadPermissions(context.Background()); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if fetcher.calls != 2 {
		t.Fatalf("expected retry to fetch again, got %d calls", fetcher.calls)
	}
}

func TestPermissionsReadAsNoneUntilLoaded(t *testing.T) {
	app := NewAppState(&stubFetcher{})
	app.SetUser(account())

	perms, status := app.Permissions()
	if status != PermissionsNotLoaded {
		t.Fatalf("expected not loaded, got %d", status)
	}
	if perms.PropertyScopePerm != enums.PermissionLevelNone || perms.BuildingScopePerm != enums.PermissionLevelNone {
		t.Fatalf("expected none permissions before load, got %+v", perms)
	}
}

func TestLogoutResetsPermissionCycle(t *testing.T) {
	fetcher := &stubFetcher{perms: permissions.GlobalPermissions{
		PropertyScopePerm: enums.PermissionLevelDelete,
		BuildingScopePerm: enums.PermissionLevelDelete,
	}}
	app := NewAppState(fetcher)
	app.SetUser(account())
	if err := app.LoadPermissions(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	app.Logout()

	if app.IsAuthenticated() {
		t.Fatal("expected signed out")
	}
	if _, status := app.Permissions(); status != PermissionsNotLoaded {
		t.Fatalf("expected permissions reset, got %d", status)
	}

	// The next session fetches fresh permissions.
	app.SetUser(account())
	if err := app.LoadPermissions(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if fetcher.calls != 2 {
		t.Fatalf("expected fresh fetch after logout, got %d calls", fetcher.calls)
	}
}
