package permissions

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"
	"github.com/google/uuid"

	"github.com/immogest/immogest-backend/pkg/db/models"
	"github.com/immogest/immogest-backend/pkg/enums"
	"github.com/immogest/immogest-backend/pkg/logger"
)

// GlobalPermissions carries the per-scope best permission for one user.
type GlobalPermissions struct {
	PropertyScopePerm enums.PermissionLevel `json:"property_scope_perm"`
	BuildingScopePerm enums.PermissionLevel `json:"building_scope_perm"`
}

type grantsRepository interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.UserPropertyPermission, error)
}

type permissionsCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	GlobalPermissionsKey(userID string) string
}

// Service computes scope-level and per-building permissions.
type Service interface {
	GlobalForUser(ctx context.Context, user *models.User) (GlobalPermissions, error)
	BestForBuilding(ctx context.Context, user *models.User, buildingID uuid.UUID) (enums.PermissionLevel, error)
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

type service struct {
	grants   grantsRepository
	cache    permissionsCache
	cacheTTL time.Duration
	logg     *logger.Logger
	now      func() time.Time
}

// NewService builds the permission service. The cache is optional.
func NewService(grants grantsRepository, cache permissionsCache, cacheTTL time.Duration, logg *logger.Logger) (Service, error) {
	if grants == nil {
		return nil, fmt.Errorf("grants repository required")
	}
	return &service{
		grants:   grants,
		cache:    cache,
		cacheTTL: cacheTTL,
		logg:     logg,
		now:      time.Now,
	}, nil
}

// GlobalForUser folds every live grant into one best level per scope.
// OWNER role short-circuits to full access on both scopes.
func (s *service) GlobalForUser(ctx context.Context, user *models.User) (GlobalPermissions, error) {
	none := GlobalPermissions{
		PropertyScopePerm: enums.PermissionLevelNone,
		BuildingScopePerm: enums.PermissionLevelNone,
	}
	if user == nil {
		return none, nil
	}

	if user.Role == enums.UserRoleOwner {
		return GlobalPermissions{
			PropertyScopePerm: enums.PermissionLevelDelete,
			BuildingScopePerm: enums.PermissionLevelDelete,
		}, nil
	}

	if cached, ok := s.cachedGlobal(ctx, user.ID); ok {
		return cached, nil
	}

	grants, err := s.grants.ListForUser(ctx, user.ID)
	if err != nil {
		return none, fmt.Errorf("listing grants: %w", err)
	}

	result := none
	for _, grant := range grants {
		if s.expired(grant) {
			continue
		}
		level := grantLevel(grant)
		if grant.BuildingID != nil {
			result.BuildingScopePerm = enums.Best(result.BuildingScopePerm, level)
		}
		if grant.PropertyID != nil {
			result.PropertyScopePerm = enums.Best(result.PropertyScopePerm, level)
		}
	}

	s.storeGlobal(ctx, user.ID, result)
	return result, nil
}

// BestForBuilding returns the strongest live grant for one building.
func (s *service) BestForBuilding(ctx context.Context, user *models.User, buildingID uuid.UUID) (enums.PermissionLevel, error) {
	if user == nil {
		return enums.PermissionLevelNone, nil
	}
	if user.Role == enums.UserRoleOwner {
		return enums.PermissionLevelDelete, nil
	}

	grants, err := s.grants.ListForUser(ctx, user.ID)
	if err != nil {
		return enums.PermissionLevelNone, fmt.Errorf("listing grants: %w", err)
	}

	best := enums.PermissionLevelNone
	for _, grant := range grants {
		if s.expired(grant) {
			continue
		}
		if grant.BuildingID == nil || *grant.BuildingID != buildingID {
			continue
		}
		best = enums.Best(best, grantLevel(grant))
	}
	return best, nil
}

// Invalidate drops the cached scope permissions after a grant change.
func (s *service) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Del(ctx, s.cache.GlobalPermissionsKey(userID.String()))
}

func (s *service) expired(grant models.UserPropertyPermission) bool {
	return grant.ExpiresAt != nil && grant.ExpiresAt.Before(s.now())
}

func (s *service) cachedGlobal(ctx context.Context, userID uuid.UUID) (GlobalPermissions, bool) {
	if s.cache == nil {
		return GlobalPermissions{}, false
	}
	raw, err := s.cache.Get(ctx, s.cache.GlobalPermissionsKey(userID.String()))
	if err != nil {
		if s.logg != nil && err != redislib.Nil {
			s.logg.Warn(s.logg.WithUserID(ctx, userID.String()), "permission cache read failed")
		}
		return GlobalPermissions{}, false
	}
	var perms GlobalPermissions
	if err := json.Unmarshal([]byte(raw), &perms); err != nil {
		return GlobalPermissions{}, false
	}
	return perms, true
}

func (s *service) storeGlobal(ctx context.Context, userID uuid.UUID, perms GlobalPermissions) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(perms)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, s.cache.GlobalPermissionsKey(userID.String()), string(raw), s.cacheTTL); err != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithUserID(ctx, userID.String()), "permission cache write failed")
	}
}

// grantLevel maps a grant's boolean columns onto the strongest level it carries.
func grantLevel(grant models.UserPropertyPermission) enums.PermissionLevel {
	switch {
	case grant.CanDelete:
		return enums.PermissionLevelDelete
	case grant.CanUpdate:
		return enums.PermissionLevelUpdate
	case grant.CanCreate:
		return enums.PermissionLevelCreate
	case grant.CanView:
		return enums.PermissionLevelView
	default:
		return enums.PermissionLevelNone
	}
}
