package nav

import (
	"testing"

	"github.com/immogest/immogest-backend/internal/permissions"
	"github.com/immogest/immogest-backend/pkg/enums"
)

func viewerWith(role enums.UserRole, building, property enums.PermissionLevel) Viewer {
	return Viewer{
		Role: role,
		Permissions: permissions.GlobalPermissions{
			BuildingScopePerm: building,
			PropertyScopePerm: property,
		},
		PermissionsLoaded: true,
	}
}

func TestNoAccessIsPublic(t *testing.T) {
	item := Item{Title: "Dashboard", URL: "/dashboard"}
	guest := Viewer{Role: enums.UserRoleViewer}
	if got := Filter([]Item{item}, guest); len(got) != 1 {
		t.Fatalf("expected public item visible, got %d items", len(got))
	}
}

func TestRoleOrScopeEitherPasses(t *testing.T) {
	item := Item{
		Title: "Immeubles",
		URL:   "/buildings",
		Access: &Access{
			Roles:             []enums.UserRole{enums.UserRoleOwner},
			BuildingScopePerm: enums.PermissionLevelView,
		},
	}

	// Role matches, no grants at all.
	owner := viewerWith(enums.UserRoleOwner, enums.PermissionLevelNone, enums.PermissionLevelNone)
	if !item.Access.Visible(owner) {
		t.Fatal("expected role match to pass alone")
	}

	// No role match, but the building grant reaches the threshold.
	manager := viewerWith(enums.UserRoleManager, enums.PermissionLevelView, enums.PermissionLevelNone)
	if !item.Access.Visible(manager) {
		t.Fatal("expected scope grant to pass alone")
	}

	// Neither passes.
	outsider := viewerWith(enums.UserRoleViewer, enums.PermissionLevelNone, enums.PermissionLevelNone)
	if item.Access.Visible(outsider) {
		t.Fatal("expected item hidden without role or grant")
	}
}

func TestHigherGrantSatisfiesLowerThreshold(t *testing.T) {
	access := &Access{PropertyScopePerm: enums.PermissionLevelView}
	viewer := viewerWith(enums.UserRoleManager, enums.PermissionLevelNone, enums.PermissionLevelDelete)
	if !access.Visible(viewer) {
		t.Fatal("expected DELETE grant to satisfy VIEW threshold")
	}
}

func TestScopeConditionsWaitForPermissionLoad(t *testing.T) {
	access := &Access{BuildingScopePerm: enums.PermissionLevelView}
	viewer := Viewer{
		Role: enums.UserRoleManager,
		Permissions: permissions.GlobalPermissions{
			BuildingScopePerm: enums.PermissionLevelDelete,
		},
		PermissionsLoaded: false,
	}
	if access.Visible(viewer) {
		t.Fatal("expected scope condition unsatisfiable before permissions load")
	}

	viewer.PermissionsLoaded = true
	if !access.Visible(viewer) {
		t.Fatal("expected item visible once permissions land")
	}
}

func TestRoleConditionIgnoresPermissionLoad(t *testing.T) {
	access := &Access{Roles: []enums.UserRole{enums.UserRoleOwner}}
	viewer := Viewer{Role: enums.UserRoleOwner, PermissionsLoaded: false}
	if !access.Visible(viewer) {
		t.Fatal("expected role-gated item visible before permissions load")
	}
}

func TestChildrenFilteredIndependently(t *testing.T) {
	items := []Item{
		{
			Title: "Patrimoine",
			URL:   "/holdings",
			Children: []Item{
				{Title: "Immeubles", URL: "/buildings", Access: &Access{BuildingScopePerm: enums.PermissionLevelView}},
				{Title: "Proprietes", URL: "/properties", Access: &Access{PropertyScopePerm: enums.PermissionLevelView}},
			},
		},
	}

	viewer := viewerWith(enums.UserRoleManager, enums.PermissionLevelNone, enums.PermissionLevelView)
	got := Filter(items, viewer)

	if len(got) != 1 {
		t.Fatalf("expected parent visible, got %d items", len(got))
	}
	if len(got[0].Children) != 1 || got[0].Children[0].Title != "Proprietes" {
		t.Fatalf("expected only the property child, got %+v", got[0].Children)
	}
	// Input stays untouched.
	if len(items[0].Children) != 2 {
		t.Fatal("expected input not mutated")
	}
}
