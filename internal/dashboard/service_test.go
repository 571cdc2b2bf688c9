package dashboard

import (
	"context"
	"testing"

	"github.com/google/uuid"

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

type stubUsersSvc struct{ listed bool }

func (s *stubUsersSvc) List(_ context.Context, _ *models.User) ([]users.UserDTO, error) {
	s.listed = true
	return []users.UserDTO{{ID: uuid.New()}}, nil
}
func (s *stubUsersSvc) Create(context.Context, *models.User, users.CreateUserInput) (*users.UserDTO, error) {
	return nil, nil
}
func (s *stubUsersSvc) Update(context.Context, *models.User, uuid.UUID, users.UpdateUserInput) (*users.UserDTO, error) {
	return nil, nil
}
func (s *stubUsersSvc) Deactivate(context.Context, *models.User, uuid.UUID) (*users.UserDTO, error) {
	return nil, nil
}

type stubTenantsSvc struct{}

func (stubTenantsSvc) List(context.Context) ([]tenants.TenantDTO, error) {
	return []tenants.TenantDTO{{ID: uuid.New()}}, nil
}
func (stubTenantsSvc) Create(context.Context, tenants.CreateTenantInput) (*tenants.TenantDTO, error) {
	return nil, nil
}
func (stubTenantsSvc) Update(context.Context, uuid.UUID, tenants.UpdateTenantInput) (*tenants.TenantDTO, error) {
	return nil, nil
}
func (stubTenantsSvc) Delete(context.Context, uuid.UUID) error { return nil }

type stubPropertiesSvc struct{}

func (stubPropertiesSvc) ListForUser(context.Context, *models.User) ([]properties.PropertyDTO, error) {
	return []properties.PropertyDTO{}, nil
}
func (stubPropertiesSvc) Create(context.Context, *models.User, properties.CreatePropertyInput) (*properties.PropertyDTO, error) {
	return nil, nil
}
func (stubPropertiesSvc) Update(context.Context, *models.User, uuid.UUID, properties.UpdatePropertyInput) (*properties.PropertyDTO, error) {
	return nil, nil
}
func (stubPropertiesSvc) Delete(context.Context, *models.User, uuid.UUID) error { return nil }

type stubBuildingsSvc struct{}

func (stubBuildingsSvc) ListForUser(context.Context, *models.User) ([]buildings.BuildingDTO, error) {
	return []buildings.BuildingDTO{}, nil
}
func (stubBuildingsSvc) Create(context.Context, *models.User, buildings.CreateBuildingInput) (*buildings.BuildingDTO, error) {
	return nil, nil
}
func (stubBuildingsSvc) Update(context.Context, *models.User, uuid.UUID, buildings.UpdateBuildingInput) (*buildings.BuildingDTO, error) {
	return nil, nil
}
func (stubBuildingsSvc) Delete(context.Context, *models.User, uuid.UUID) error { return nil }

type stubContratsSvc struct{}

func (stubContratsSvc) List(context.Context) ([]contrats.ContratDTO, error) {
	return []contrats.ContratDTO{}, nil
}
func (stubContratsSvc) Create(context.Context, contrats.CreateContratInput) (*contrats.ContratDTO, error) {
	return nil, nil
}
func (stubContratsSvc) Update(context.Context, uuid.UUID, contrats.UpdateContratInput) (*contrats.ContratDTO, error) {
	return nil, nil
}
func (stubContratsSvc) Delete(context.Context, uuid.UUID) error { return nil }

type stubPaymentsSvc struct{}

func (stubPaymentsSvc) List(context.Context) ([]payments.PaymentDTO, error) {
	return []payments.PaymentDTO{}, nil
}
func (stubPaymentsSvc) Create(context.Context, payments.CreatePaymentInput) (*payments.PaymentDTO, error) {
	return nil, nil
}
func (stubPaymentsSvc) Update(context.Context, uuid.UUID, payments.UpdatePaymentInput) (*payments.PaymentDTO, error) {
	return nil, nil
}
func (stubPaymentsSvc) Delete(context.Context, uuid.UUID) error { return nil }

type stubStatsSvc struct{}

func (stubStatsSvc) Compute(context.Context) (*statistics.Statistics, error) {
	return &statistics.Statistics{ActiveContrats: 2}, nil
}

type stubPermsSvc struct{}

func (stubPermsSvc) GlobalForUser(_ context.Context, user *models.User) (permissions.GlobalPermissions, error) {
	if user != nil && user.Role == enums.UserRoleOwner {
		return permissions.GlobalPermissions{
			PropertyScopePerm: enums.PermissionLevelDelete,
			BuildingScopePerm: enums.PermissionLevelDelete,
		}, nil
	}
	return permissions.GlobalPermissions{
		PropertyScopePerm: enums.PermissionLevelView,
		BuildingScopePerm: enums.PermissionLevelNone,
	}, nil
}
func (stubPermsSvc) BestForBuilding(context.Context, *models.User, uuid.UUID) (enums.PermissionLevel, error) {
	return enums.PermissionLevelNone, nil
}
func (stubPermsSvc) Invalidate(context.Context, uuid.UUID) error { return nil }

func newTestService(t *testing.T, userSvc users.Service) Service {
	t.Helper()
	svc, err := NewService(
		userSvc,
		stubTenantsSvc{},
		stubPropertiesSvc{},
		stubBuildingsSvc{},
		stubContratsSvc{},
		stubPaymentsSvc{},
		stubStatsSvc{},
		stubPermsSvc{},
	)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestBuildIncludesRosterForOwner(t *testing.T) {
	userSvc := &stubUsersSvc{}
	svc := newTestService(t, userSvc)

	owner := &models.User{ID: uuid.New(), Role: enums.UserRoleOwner}
	payload, err := svc.Build(context.Background(), owner)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !userSvc.listed {
		t.Fatal("expected roster fetched for owner")
	}
	if len(payload.Users) != 1 {
		t.Fatalf("expected roster in payload, got %d users", len(payload.Users))
	}
	if payload.Statistics.ActiveContrats != 2 {
		t.Fatalf("expected statistics in payload, got %+v", payload.Statistics)
	}
}

func TestBuildSkipsRosterForManager(t *testing.T) {
	userSvc := &stubUsersSvc{}
	svc := newTestService(t, userSvc)

	manager := &models.User{ID: uuid.New(), Role: enums.UserRoleManager}
	payload, err := svc.Build(context.Background(), manager)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if userSvc.listed {
		t.Fatal("roster must not be fetched for non-owners")
	}
	if payload.Users == nil || len(payload.Users) != 0 {
		t.Fatalf("expected empty roster, got %v", payload.Users)
	}
	if payload.Permissions.PropertyScopePerm != enums.PermissionLevelView {
		t.Fatalf("expected scope permissions resolved, got %+v", payload.Permissions)
	}
}

func TestBuildRequiresUser(t *testing.T) {
	svc := newTestService(t, &stubUsersSvc{})
	_, gotErr := svc.Build(context.Background(), nil)
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", gotErr)
	}
}
