package nav

import (
	"github.com/immogest/immogest-backend/internal/permissions"
	"github.com/immogest/immogest-backend/pkg/enums"
)

// Access restricts a nav item. Conditions are OR'd: the item shows as soon
// as any of them passes. An item without Access is visible to everyone.
type Access struct {
	// Roles lists the roles allowed through, regardless of grants.
	Roles []enums.UserRole
	// BuildingScopePerm passes when the viewer's building-scope permission
	// reaches this level. The zero value disables the condition.
	BuildingScopePerm enums.PermissionLevel
	// PropertyScopePerm passes when the viewer's property-scope permission
	// reaches this level. The zero value disables the condition.
	PropertyScopePerm enums.PermissionLevel
}

// Item is one navigation entry. Children are filtered independently of the
// parent, so a visible parent can end up with fewer children.
type Item struct {
	Title    string
	URL      string
	Icon     string
	Access   *Access
	Children []Item
}

// Viewer is the authenticated account as the nav filter sees it. Scope
// permissions only count once they are actually loaded.
type Viewer struct {
	Role              enums.UserRole
	Permissions       permissions.GlobalPermissions
	PermissionsLoaded bool
}

// Visible reports whether the viewer may see an item with this access.
// A nil access is public.
func (a *Access) Visible(viewer Viewer) bool {
	if a == nil {
		return true
	}

	for _, role := range a.Roles {
		if role == viewer.Role {
			return true
		}
	}

	// Scope conditions cannot pass while permissions are still loading;
	// the item appears once the fetch lands.
	if viewer.PermissionsLoaded {
		if a.BuildingScopePerm != "" && viewer.Permissions.BuildingScopePerm.AtLeast(a.BuildingScopePerm) {
			return true
		}
		if a.PropertyScopePerm != "" && viewer.Permissions.PropertyScopePerm.AtLeast(a.PropertyScopePerm) {
			return true
		}
	}

	return false
}

// Filter returns the items the viewer may see, with children filtered
// recursively. The input is never mutated.
func Filter(items []Item, viewer Viewer) []Item {
	result := make([]Item, 0, len(items))
	for _, item := range items {
		if !item.Access.Visible(viewer) {
			continue
		}
		filtered := item
		filtered.Children = Filter(item.Children, viewer)
		result = append(result, filtered)
	}
	return result
}
