package enums

import "fmt"

// PermissionLevel is the coarse-grained access level computed from grants.
type PermissionLevel string

const (
	PermissionLevelNone   PermissionLevel = "none"
	PermissionLevelView   PermissionLevel = "VIEW"
	PermissionLevelCreate PermissionLevel = "CREATE"
	PermissionLevelUpdate PermissionLevel = "UPDATE"
	PermissionLevelDelete PermissionLevel = "DELETE"
)

// permissionRanks orders levels so the best grant wins.
var permissionRanks = map[PermissionLevel]int{
	PermissionLevelNone:   0,
	PermissionLevelView:   1,
	PermissionLevelCreate: 2,
	PermissionLevelUpdate: 3,
	PermissionLevelDelete: 4,
}

// String implements fmt.Stringer.
func (p PermissionLevel) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PermissionLevel.
func (p PermissionLevel) IsValid() bool {
	_, ok := permissionRanks[p]
	return ok
}

// Rank returns the ordering weight used when folding grants.
func (p PermissionLevel) Rank() int {
	return permissionRanks[p]
}

// AtLeast reports whether the level grants everything `other` grants.
func (p PermissionLevel) AtLeast(other PermissionLevel) bool {
	return p.Rank() >= other.Rank()
}

// Best returns the stronger of two levels.
func Best(a, b PermissionLevel) PermissionLevel {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// ParsePermissionLevel converts raw input into a PermissionLevel.
func ParsePermissionLevel(value string) (PermissionLevel, error) {
	for candidate := range permissionRanks {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid permission level %q", value)
}
