package dashboard

import (
	"context"
	"fmt"

	"github.com/immogest/immogest-backend/internal/buildings"
	"github.com/immogest/immogest-backend/internal/contrats"
	"github.com/immogest/immogest-backend/internal/payments"
	"github.com/immogest/immogest-backend/internal/permissions"
	"github.com/immogest/immogest-backend/internal/properties"
	"github.com/immogest/immogest-backend/internal/statistics"
	"github.com/immogest/immogest-backend/internal/tenants"
	"github.com/immogest/immogest-backend/internal/users"
	"github.com/immogest/immogest-backend/pkg/db/models"
	"github.com/immogest/immogest-backend/pkg/enums"
	pkgerrors "github.com/immogest/immogest-backend/pkg/errors"
)

// Payload is everything the dashboard page needs on first load.
// Slices are always present so consumers never see null collections.
type Payload struct {
	Users       []users.UserDTO           `json:"users"`
	Tenants     []tenants.TenantDTO       `json:"tenants"`
	Properties  []properties.PropertyDTO  `json:"properties"`
	Buildings   []buildings.BuildingDTO   `json:"buildings"`
	Contrats    []contrats.ContratDTO     `json:"contrats"`
	Payments    []payments.PaymentDTO     `json:"payments"`
	Statistics  statistics.Statistics     `json:"statistics"`
	Permissions permissions.GlobalPermissions `json:"permissions"`
}

// Service assembles the dashboard payload for one user.
type Service interface {
	Build(ctx context.Context, user *models.User) (*Payload, error)
	Permissions(ctx context.Context, user *models.User) (permissions.GlobalPermissions, error)
}

type service struct {
	users      users.Service
	tenants    tenants.Service
	properties properties.Service
	buildings  buildings.Service
	contrats   contrats.Service
	payments   payments.Service
	stats      statistics.Service
	perms      permissions.Service
}

func NewService(
	userSvc users.Service,
	tenantSvc tenants.Service,
	propertySvc properties.Service,
	buildingSvc buildings.Service,
	contratSvc contrats.Service,
	paymentSvc payments.Service,
	statsSvc statistics.Service,
	permSvc permissions.Service,
) (Service, error) {
	for name, dep := range map[string]any{
		"user service":       userSvc,
		"tenant service":     tenantSvc,
		"property service":   propertySvc,
		"building service":   buildingSvc,
		"contrat service":    contratSvc,
		"payment service":    paymentSvc,
		"statistics service": statsSvc,
		"permission service": permSvc,
	} {
		if dep == nil {
			return nil, fmt.Errorf("%s required", name)
		}
	}
	return &service{
		users:      userSvc,
		tenants:    tenantSvc,
		properties: propertySvc,
		buildings:  buildingSvc,
		contrats:   contratSvc,
		payments:   paymentSvc,
		stats:      statsSvc,
		perms:      permSvc,
	}, nil
}

func (s *service) Build(ctx context.Context, user *models.User) (*Payload, error) {
	if user == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}

	payload := &Payload{
		Users:      []users.UserDTO{},
		Tenants:    []tenants.TenantDTO{},
		Properties: []properties.PropertyDTO{},
		Buildings:  []buildings.BuildingDTO{},
		Contrats:   []contrats.ContratDTO{},
		Payments:   []payments.PaymentDTO{},
	}

	// Team roster is owner-only; everyone else gets an empty list rather
	// than an error.
	if user.Role == enums.UserRoleOwner {
		roster, err := s.users.List(ctx, user)
		if err != nil {
			return nil, err
		}
		payload.Users = roster
	}

	tenantList, err := s.tenants.List(ctx)
	if err != nil {
		return nil, err
	}
	payload.Tenants = tenantList

	propertyList, err := s.properties.ListForUser(ctx, user)
	if err != nil {
		return nil, err
	}
	payload.Properties = propertyList

	buildingList, err := s.buildings.ListForUser(ctx, user)
	if err != nil {
		return nil, err
	}
	payload.Buildings = buildingList

	contratList, err := s.contrats.List(ctx)
	if err != nil {
		return nil, err
	}
	payload.Contrats = contratList

	paymentList, err := s.payments.List(ctx)
	if err != nil {
		return nil, err
	}
	payload.Payments = paymentList

	stats, err := s.stats.Compute(ctx)
	if err != nil {
		return nil, err
	}
	payload.Statistics = *stats

	global, err := s.perms.GlobalForUser(ctx, user)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolving permissions")
	}
	payload.Permissions = global

	return payload, nil
}

// Permissions resolves just the scope permissions, backing the dedicated
// endpoint the client calls once after login.
func (s *service) Permissions(ctx context.Context, user *models.User) (permissions.GlobalPermissions, error) {
	if user == nil {
		return permissions.GlobalPermissions{
			PropertyScopePerm: enums.PermissionLevelNone,
			BuildingScopePerm: enums.PermissionLevelNone,
		}, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	global, err := s.perms.GlobalForUser(ctx, user)
	if err != nil {
		return global, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "resolving permissions")
	}
	return global, nil
}
