package buildings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/immogest/immogest-backend/internal/permissions"
	"github.com/immogest/immogest-backend/pkg/db/models"
	"github.com/immogest/immogest-backend/pkg/enums"
	pkgerrors "github.com/immogest/immogest-backend/pkg/errors"
)

type buildingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Building, error)
	List(ctx context.Context) ([]models.Building, error)
	Create(ctx context.Context, building *models.Building) error
	Update(ctx context.Context, building *models.Building) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type permissionChecker interface {
	BestForBuilding(ctx context.Context, user *models.User, buildingID uuid.UUID) (enums.PermissionLevel, error)
	GlobalForUser(ctx context.Context, user *models.User) (permissions.GlobalPermissions, error)
}

// Service exposes building operations for the authenticated user.
type Service interface {
	ListForUser(ctx context.Context, user *models.User) ([]BuildingDTO, error)
	Create(ctx context.Context, user *models.User, input CreateBuildingInput) (*BuildingDTO, error)
	Update(ctx context.Context, user *models.User, id uuid.UUID, input UpdateBuildingInput) (*BuildingDTO, error)
	Delete(ctx context.Context, user *models.User, id uuid.UUID) error
}

type service struct {
	repo  buildingRepository
	perms permissionChecker
}

// NewService builds a building service with the provided collaborators.
func NewService(repo buildingRepository, perms permissionChecker) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("building repository required")
	}
	if perms == nil {
		return nil, fmt.Errorf("permission checker required")
	}
	return &service{repo: repo, perms: perms}, nil
}

// ListForUser returns all buildings the user may see, each decorated with
// the caller's best permission. Buildings with no visible grant are omitted.
func (s *service) ListForUser(ctx context.Context, user *models.User) ([]BuildingDTO, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing buildings")
	}

	result := make([]BuildingDTO, 0, len(all))
	for i := range all {
		best, err := s.perms.BestForBuilding(ctx, user, all[i].ID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolving building permission")
		}
		if best == enums.PermissionLevelNone {
			continue
		}
		result = append(result, *fromModel(&all[i], best))
	}
	return result, nil
}

func (s *service) Create(ctx context.Context, user *models.User, input CreateBuildingInput) (*BuildingDTO, error) {
	if user == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	global, err := s.perms.GlobalForUser(ctx, user)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolving scope permission")
	}
	if !global.BuildingScopePerm.AtLeast(enums.PermissionLevelCreate) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "building create permission required")
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}

	building := &models.Building{
		OwnerID:     user.ID,
		Name:        input.Name,
		Address:     input.Address,
		City:        input.City,
		PostalCode:  input.PostalCode,
		Country:     input.Country,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		FloorCount:  input.FloorCount,
		Description: input.Description,
	}
	if building.Country == "" {
		building.Country = "Cameroun"
	}

	if err := s.repo.Create(ctx, building); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating building")
	}

	best, err := s.perms.BestForBuilding(ctx, user, building.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolving building permission")
	}
	return fromModel(building, best), nil
}

func (s *service) Update(ctx context.Context, user *models.User, id uuid.UUID, input UpdateBuildingInput) (*BuildingDTO, error) {
	building, err := s.findAuthorized(ctx, user, id, enums.PermissionLevelUpdate)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		building.Name = *input.Name
	}
	if input.Address != nil {
		building.Address = *input.Address
	}
	if input.City != nil {
		building.City = *input.City
	}
	if input.PostalCode != nil {
		building.PostalCode = *input.PostalCode
	}
	if input.Country != nil {
		building.Country = *input.Country
	}
	if input.Latitude != nil {
		building.Latitude = input.Latitude
	}
	if input.Longitude != nil {
		building.Longitude = input.Longitude
	}
	if input.FloorCount != nil {
		building.FloorCount = input.FloorCount
	}
	if input.Description != nil {
		building.Description = *input.Description
	}

	if err := s.repo.Update(ctx, building); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating building")
	}

	best, err := s.perms.BestForBuilding(ctx, user, building.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolving building permission")
	}
	return fromModel(building, best), nil
}

func (s *service) Delete(ctx context.Context, user *models.User, id uuid.UUID) error {
	if _, err := s.findAuthorized(ctx, user, id, enums.PermissionLevelDelete); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting building")
	}
	return nil
}

func (s *service) findAuthorized(ctx context.Context, user *models.User, id uuid.UUID, required enums.PermissionLevel) (*models.Building, error) {
	if user == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	building, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "building not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading building")
	}

	best, err := s.perms.BestForBuilding(ctx, user, building.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolving building permission")
	}
	if !best.AtLeast(required) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "insufficient building permission")
	}
	return building, nil
}
