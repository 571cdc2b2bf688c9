package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/immogest/immogest-backend/internal/tenants"
	"github.com/immogest/immogest-backend/pkg/logger"
)

type testTenantsService struct {
	listFn   func(ctx context.Context) ([]tenants.TenantDTO, error)
	createFn func(ctx context.Context, input tenants.CreateTenantInput) (*tenants.TenantDTO, error)
	updateFn func(ctx context.Context, id uuid.UUID, input tenants.UpdateTenantInput) (*tenants.TenantDTO, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
}

func (s *testTenantsService) List(ctx context.Context) ([]tenants.TenantDTO, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *testTenantsService) Create(ctx context.Context, input tenants.CreateTenantInput) (*tenants.TenantDTO, error) {
	if s.createFn != nil {
		return s.createFn(ctx, input)
	}
	return nil, nil
}

func (s *testTenantsService) Update(ctx context.Context, id uuid.UUID, input tenants.UpdateTenantInput) (*tenants.TenantDTO, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, id, input)
	}
	return nil, nil
}

func (s *testTenantsService) Delete(ctx context.Context, id uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func addRouteParam(req *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
}

func TestTenantCreateNestsRecord(t *testing.T) {
	created := uuid.New()
	svc := &testTenantsService{
		createFn: func(ctx context.Context, input tenants.CreateTenantInput) (*tenants.TenantDTO, error) {
			if input.FirstName != "Serge" {
				t.Fatalf("unexpected first name %q", input.FirstName)
			}
			return &tenants.TenantDTO{
				ID:        created,
				FirstName: input.FirstName,
				Phone:     input.Phone,
				Address:   input.Address,
			}, nil
		},
	}

	body := `{"first_name":"Serge","phone":"+237699000001","address":"Akwa, Douala","id_number":"CM-0012"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tenants", strings.NewReader(body))
	resp := httptest.NewRecorder()

	TenantCreate(svc, testLogger())(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
	var envelope struct {
		Data struct {
			Tenant *tenants.TenantDTO `json:"tenant"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Data.Tenant == nil || envelope.Data.Tenant.ID != created {
		t.Fatalf("expected created tenant in envelope, got %+v", envelope.Data.Tenant)
	}
}

func TestTenantCreateValidationDetails(t *testing.T) {
	body := `{"last_name":"Mbarga"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tenants", strings.NewReader(body))
	resp := httptest.NewRecorder()

	TenantCreate(&testTenantsService{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	var envelope struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Error.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR got %q", envelope.Error.Code)
	}
	for _, field := range []string{"first_name", "phone", "address", "id_number"} {
		if envelope.Error.Details[field] == "" {
			t.Fatalf("expected detail for %s, got %v", field, envelope.Error.Details)
		}
	}
}

func TestTenantCreateRejectsUnknownFields(t *testing.T) {
	body := `{"first_name":"Serge","phone":"x","address":"y","id_number":"z","nope":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/tenants", strings.NewReader(body))
	resp := httptest.NewRecorder()

	TenantCreate(&testTenantsService{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestTenantUpdateInvalidID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/api/tenants/not-a-uuid", strings.NewReader(`{}`))
	req = addRouteParam(req, "id", "not-a-uuid")
	resp := httptest.NewRecorder()

	TenantUpdate(&testTenantsService{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestTenantDeleteCallsService(t *testing.T) {
	target := uuid.New()
	called := false
	svc := &testTenantsService{
		deleteFn: func(ctx context.Context, id uuid.UUID) error {
			called = true
			if id != target {
				t.Fatalf("unexpected id %s", id)
			}
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/tenants/"+target.String(), nil)
	req = addRouteParam(req, "id", target.String())
	resp := httptest.NewRecorder()

	TenantDelete(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	if !called {
		t.Fatal("expected service called")
	}
}
