package buildings

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/immogest/immogest-backend/internal/permissions"
	"github.com/immogest/immogest-backend/pkg/db/models"
	"github.com/immogest/immogest-backend/pkg/enums"
	pkgerrors "github.com/immogest/immogest-backend/pkg/errors"
)

type stubBuildingRepo struct {
	buildings map[uuid.UUID]*models.Building
	listErr   error
}

func newStubBuildingRepo(buildings ...*models.Building) *stubBuildingRepo {
	repo := &stubBuildingRepo{buildings: map[uuid.UUID]*models.Building{}}
	for _, b := range buildings {
		repo.buildings[b.ID] = b
	}
	return repo
}

func (s *stubBuildingRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Building, error) {
	if b, ok := s.buildings[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubBuildingRepo) List(_ context.Context) ([]models.Building, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]models.Building, 0, len(s.buildings))
	for _, b := range s.buildings {
		out = append(out, *b)
	}
	return out, nil
}

func (s *stubBuildingRepo) Create(_ context.Context, building *models.Building) error {
	if building.ID == uuid.Nil {
		building.ID = uuid.New()
	}
	s.buildings[building.ID] = building
	return nil
}

func (s *stubBuildingRepo) Update(_ context.Context, building *models.Building) error {
	s.buildings[building.ID] = building
	return nil
}

func (s *stubBuildingRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.buildings, id)
	return nil
}

type stubPerms struct {
	best   map[uuid.UUID]enums.PermissionLevel
	global permissions.GlobalPermissions
}

func (s stubPerms) BestForBuilding(_ context.Context, _ *models.User, buildingID uuid.UUID) (enums.PermissionLevel, error) {
	if level, ok := s.best[buildingID]; ok {
		return level, nil
	}
	return enums.PermissionLevelNone, nil
}

func (s stubPerms) GlobalForUser(_ context.Context, _ *models.User) (permissions.GlobalPermissions, error) {
	return s.global, nil
}

func manager() *models.User {
	return &models.User{ID: uuid.New(), Role: enums.UserRoleManager}
}

func TestListForUserFiltersInvisibleBuildings(t *testing.T) {
	visible := &models.Building{ID: uuid.New(), Name: "Résidence A"}
	hidden := &models.Building{ID: uuid.New(), Name: "Résidence B"}
	repo := newStubBuildingRepo(visible, hidden)
	perms := stubPerms{best: map[uuid.UUID]enums.PermissionLevel{visible.ID: enums.PermissionLevelView}}

	svc, err := NewService(repo, perms)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dtos, err := svc.ListForUser(context.Background(), manager())
	if err != nil {
		t.Fatalf("list for user: %v", err)
	}
	if len(dtos) != 1 {
		t.Fatalf("expected one visible building, got %d", len(dtos))
	}
	if dtos[0].ID != visible.ID {
		t.Fatalf("expected %s got %s", visible.ID, dtos[0].ID)
	}
	if dtos[0].UserBestPermission != enums.PermissionLevelView {
		t.Fatalf("expected VIEW decoration, got %s", dtos[0].UserBestPermission)
	}
}

func TestCreateRequiresScopePermission(t *testing.T) {
	repo := newStubBuildingRepo()
	perms := stubPerms{global: permissions.GlobalPermissions{
		BuildingScopePerm: enums.PermissionLevelView,
		PropertyScopePerm: enums.PermissionLevelNone,
	}}

	svc, err := NewService(repo, perms)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, gotErr := svc.Create(context.Background(), manager(), CreateBuildingInput{Name: "Nouvelle résidence"})
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden, got %v", gotErr)
	}
}

func TestCreateReturnsCanonicalRecord(t *testing.T) {
	repo := newStubBuildingRepo()
	perms := stubPerms{
		global: permissions.GlobalPermissions{BuildingScopePerm: enums.PermissionLevelCreate},
	}

	svc, err := NewService(repo, perms)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.Create(context.Background(), manager(), CreateBuildingInput{
		Name:       "Résidence Les Palmiers",
		Address:    "12 rue du Lac",
		City:       "Douala",
		PostalCode: "00237",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if dto.ID == uuid.Nil {
		t.Fatal("expected a generated id on the canonical record")
	}
	if dto.Country != "Cameroun" {
		t.Fatalf("expected default country, got %q", dto.Country)
	}
}

func TestUpdateMissingBuildingIsNotFound(t *testing.T) {
	svc, err := NewService(newStubBuildingRepo(), stubPerms{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	name := "Renamed"
	_, gotErr := svc.Update(context.Background(), manager(), uuid.New(), UpdateBuildingInput{Name: &name})
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", gotErr)
	}
}

func TestDeleteRequiresDeleteLevel(t *testing.T) {
	building := &models.Building{ID: uuid.New(), Name: "Résidence C"}
	repo := newStubBuildingRepo(building)
	perms := stubPerms{best: map[uuid.UUID]enums.PermissionLevel{building.ID: enums.PermissionLevelUpdate}}

	svc, err := NewService(repo, perms)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	gotErr := svc.Delete(context.Background(), manager(), building.ID)
	if typed := pkgerrors.As(gotErr); typed == nil || typed.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected forbidden, got %v", gotErr)
	}

	perms.best[building.ID] = enums.PermissionLevelDelete
	if err := svc.Delete(context.Background(), manager(), building.ID); err != nil {
		t.Fatalf("delete with DELETE level: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), building.ID); err == nil {
		t.Fatal("expected building to be removed")
	}
}
