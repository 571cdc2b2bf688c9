package properties

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/immogest/immogest-backend/pkg/db/models"
	"github.com/immogest/immogest-backend/pkg/enums"
	pkgerrors "github.com/immogest/immogest-backend/pkg/errors"
)

type propertyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
	List(ctx context.Context) ([]models.Property, error)
	Create(ctx context.Context, property *models.Property) error
	Update(ctx context.Context, property *models.Property) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type buildingPermissionChecker interface {
	BestForBuilding(ctx context.Context, user *models.User, buildingID uuid.UUID) (enums.PermissionLevel, error)
}

// Service exposes property operations for the authenticated user.
type Service interface {
	ListForUser(ctx context.Context, user *models.User) ([]PropertyDTO, error)
	Create(ctx context.Context, user *models.User, input CreatePropertyInput) (*PropertyDTO, error)
	Update(ctx context.Context, user *models.User, id uuid.UUID, input UpdatePropertyInput) (*PropertyDTO, error)
	Delete(ctx context.Context, user *models.User, id uuid.UUID) error
}

type service struct {
	repo  propertyRepository
	perms buildingPermissionChecker
}

func NewService(repo propertyRepository, perms buildingPermissionChecker) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("property repository required")
	}
	if perms == nil {
		return nil, fmt.Errorf("permission checker required")
	}
	return &service{repo: repo, perms: perms}, nil
}

func (s *service) ListForUser(ctx context.Context, user *models.User) ([]PropertyDTO, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing properties")
	}

	// Permission lookups are grouped per building to keep the fold cheap.
	permByBuilding := map[uuid.UUID]enums.PermissionLevel{}
	result := make([]PropertyDTO, 0, len(all))
	for i := range all {
		best, ok := permByBuilding[all[i].BuildingID]
		if !ok {
			best, err = s.perms.BestForBuilding(ctx, user, all[i].BuildingID)
			if err != nil {
				return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolving building permission")
			}
			permByBuilding[all[i].BuildingID] = best
		}
		if best == enums.PermissionLevelNone {
			continue
		}
		result = append(result, *fromModel(&all[i], best))
	}
	return result, nil
}

func (s *service) Create(ctx context.Context, user *models.User, input CreatePropertyInput) (*PropertyDTO, error) {
	if user == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if !input.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid property type")
	}

	best, err := s.perms.BestForBuilding(ctx, user, input.BuildingID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolving building permission")
	}
	if !best.AtLeast(enums.PermissionLevelCreate) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "create permission required on the building")
	}

	status := input.Status
	if status == "" {
		status = enums.PropertyStatusVacant
	}
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid property status")
	}

	property := &models.Property{
		BuildingID:    input.BuildingID,
		OwnerID:       user.ID,
		ReferenceCode: generateReferenceCode(input.Type),
		Name:          input.Name,
		Type:          input.Type,
		Status:        status,
		Floor:         input.Floor,
		DoorNumber:    input.DoorNumber,
		SurfaceArea:   input.SurfaceArea,
		RoomCount:     input.RoomCount,
		BedroomCount:  input.BedroomCount,
		BathroomCount: input.BathroomCount,
		HasParking:    input.HasParking,
		HasBalcony:    input.HasBalcony,
		MonthlyRent:   input.MonthlyRent,
		Description:   input.Description,
	}

	if err := s.repo.Create(ctx, property); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating property")
	}
	return fromModel(property, best), nil
}

func (s *service) Update(ctx context.Context, user *models.User, id uuid.UUID, input UpdatePropertyInput) (*PropertyDTO, error) {
	property, best, err := s.findAuthorized(ctx, user, id, enums.PermissionLevelUpdate)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		property.Name = *input.Name
	}
	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid property type")
		}
		property.Type = *input.Type
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid property status")
		}
		property.Status = *input.Status
	}
	if input.Floor != nil {
		property.Floor = input.Floor
	}
	if input.DoorNumber != nil {
		property.DoorNumber = input.DoorNumber
	}
	if input.SurfaceArea != nil {
		property.SurfaceArea = *input.SurfaceArea
	}
	if input.RoomCount != nil {
		property.RoomCount = *input.RoomCount
	}
	if input.BedroomCount != nil {
		property.BedroomCount = input.BedroomCount
	}
	if input.BathroomCount != nil {
		property.BathroomCount = input.BathroomCount
	}
	if input.HasParking != nil {
		property.HasParking = *input.HasParking
	}
	if input.HasBalcony != nil {
		property.HasBalcony = *input.HasBalcony
	}
	if input.MonthlyRent != nil {
		property.MonthlyRent = *input.MonthlyRent
	}
	if input.Description != nil {
		property.Description = *input.Description
	}

	if err := s.repo.Update(ctx, property); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating property")
	}
	return fromModel(property, best), nil
}

func (s *service) Delete(ctx context.Context, user *models.User, id uuid.UUID) error {
	if _, _, err := s.findAuthorized(ctx, user, id, enums.PermissionLevelDelete); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting property")
	}
	return nil
}

func (s *service) findAuthorized(ctx context.Context, user *models.User, id uuid.UUID, required enums.PermissionLevel) (*models.Property, enums.PermissionLevel, error) {
	if user == nil {
		return nil, enums.PermissionLevelNone, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, enums.PermissionLevelNone, pkgerrors.New(pkgerrors.CodeNotFound, "property not found")
		}
		return nil, enums.PermissionLevelNone, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading property")
	}

	best, err := s.perms.BestForBuilding(ctx, user, property.BuildingID)
	if err != nil {
		return nil, enums.PermissionLevelNone, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolving building permission")
	}
	if !best.AtLeast(required) {
		return nil, enums.PermissionLevelNone, pkgerrors.New(pkgerrors.CodeForbidden, "insufficient building permission")
	}
	return property, best, nil
}

// generateReferenceCode builds a short unique code prefixed by the unit type.
func generateReferenceCode(propertyType enums.PropertyType) string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("%s-%s", prefixFor(propertyType), uuid.NewString()[:8])
	}
	return fmt.Sprintf("%s-%s", prefixFor(propertyType), strings.ToUpper(hex.EncodeToString(buf)))
}

func prefixFor(propertyType enums.PropertyType) string {
	switch propertyType {
	case enums.PropertyTypeApartment:
		return "APT"
	case enums.PropertyTypeHouse:
		return "HSE"
	case enums.PropertyTypeStudio:
		return "STU"
	case enums.PropertyTypeCommercial:
		return "COM"
	default:
		return "PROP"
	}
}
