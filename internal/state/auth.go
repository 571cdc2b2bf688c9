package state

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/immogest/immogest-backend/internal/permissions"
	"github.com/immogest/immogest-backend/internal/users"
	"github.com/immogest/immogest-backend/pkg/enums"
	pkgerrors "github.com/immogest/immogest-backend/pkg/errors"
)

// PermissionStatus tracks the scope-permission fetch lifecycle.
type PermissionStatus int

const (
	PermissionsNotLoaded PermissionStatus = iota
	PermissionsLoading
	PermissionsLoaded
)

// PermissionFetcher resolves the caller's scope permissions, typically over HTTP.
type PermissionFetcher interface {
	GlobalPermissions(ctx context.Context) (permissions.GlobalPermissions, error)
}

// AppState holds the authenticated account and its scope permissions.
// All methods are safe for concurrent use.
type AppState struct {
	fetcher PermissionFetcher

	mu     sync.RWMutex
	user   *users.UserDTO
	perms  permissions.GlobalPermissions
	status PermissionStatus
}

func NewAppState(fetcher PermissionFetcher) *AppState {
	return &AppState{
		fetcher: fetcher,
		perms:   nonePermissions(),
	}
}

// SetUser stores the account. A nil or zero-value user (the shape a guest
// session serializes to) clears authentication instead of storing a husk.
func (a *AppState) SetUser(user *users.UserDTO) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if user == nil || user.ID == uuid.Nil {
		a.user = nil
		return
	}
	copied := *user
	a.user = &copied
}

// User returns a copy of the authenticated account, if any.
func (a *AppState) User() (users.UserDTO, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.user == nil {
		return users.UserDTO{}, false
	}
	return *a.user, true
}

// IsAuthenticated reports whether a real account is present.
func (a *AppState) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user != nil
}

// Role returns the account role, or the zero value for guests.
func (a *AppState) Role() (enums.UserRole, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.user == nil {
		return "", false
	}
	return a.user.Role, true
}

// LoadPermissions fetches scope permissions once per session. Repeat calls
// after a successful load are no-ops; a failed load may be retried.
func (a *AppState) LoadPermissions(ctx context.Context) error {
	a.mu.Lock()
	if a.user == nil {
		a.mu.Unlock()
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	if a.status != PermissionsNotLoaded {
		a.mu.Unlock()
		return nil
	}
	if a.fetcher == nil {
		a.mu.Unlock()
		return pkgerrors.New(pkgerrors.CodeInternal, "no permission fetcher configured")
	}
	a.status = PermissionsLoading
	a.mu.Unlock()

	perms, err := a.fetcher.GlobalPermissions(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		a.status = PermissionsNotLoaded
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading permissions")
	}
	a.perms = perms
	a.status = PermissionsLoaded
	return nil
}

// Permissions returns the loaded scope permissions along with their status.
// Until the load completes, both scopes read as none.
func (a *AppState) Permissions() (permissions.GlobalPermissions, PermissionStatus) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.status != PermissionsLoaded {
		return nonePermissions(), a.status
	}
	return a.perms, a.status
}

// Logout clears the account and resets permissions for the next session.
func (a *AppState) Logout() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = nil
	a.perms = nonePermissions()
	a.status = PermissionsNotLoaded
}

func nonePermissions() permissions.GlobalPermissions {
	return permissions.GlobalPermissions{
		PropertyScopePerm: enums.PermissionLevelNone,
		BuildingScopePerm: enums.PermissionLevelNone,
	}
}
