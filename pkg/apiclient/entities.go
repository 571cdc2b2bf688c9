package apiclient

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/immogest/immogest-backend/internal/buildings"
	"github.com/immogest/immogest-backend/internal/contrats"
	"github.com/immogest/immogest-backend/internal/payments"
	"github.com/immogest/immogest-backend/internal/properties"
	"github.com/immogest/immogest-backend/internal/tenants"
	"github.com/immogest/immogest-backend/internal/users"
)

// The entity helpers below share one shape: create/update return the
// canonical record the server echoed plus any field errors, exactly what a
// form bridge needs; delete returns only an error.

func createRecord[T any](ctx context.Context, c *Client, path, key string, body any) (*T, map[string]string, error) {
	return writeRecord[T](ctx, c, http.MethodPost, path, key, body)
}

func updateRecord[T any](ctx context.Context, c *Client, path, key string, body any) (*T, map[string]string, error) {
	return writeRecord[T](ctx, c, http.MethodPut, path, key, body)
}

func writeRecord[T any](ctx context.Context, c *Client, method, path, key string, body any) (*T, map[string]string, error) {
	out := map[string]*T{key: new(T)}
	fieldErrs, err := c.do(ctx, method, path, body, &out)
	if err != nil {
		return nil, nil, err
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}
	return out[key], nil, nil
}

func (c *Client) CreateTenant(ctx context.Context, body any) (*tenants.TenantDTO, map[string]string, error) {
	return createRecord[tenants.TenantDTO](ctx, c, "/api/tenants", "tenant", body)
}

func (c *Client) UpdateTenant(ctx context.Context, id uuid.UUID, body any) (*tenants.TenantDTO, map[string]string, error) {
	return updateRecord[tenants.TenantDTO](ctx, c, "/api/tenants/"+id.String(), "tenant", body)
}

func (c *Client) DeleteTenant(ctx context.Context, id uuid.UUID) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/tenants/"+id.String(), nil, nil)
	return err
}

func (c *Client) CreateBuilding(ctx context.Context, body any) (*buildings.BuildingDTO, map[string]string, error) {
	return createRecord[buildings.BuildingDTO](ctx, c, "/api/buildings", "building", body)
}

func (c *Client) UpdateBuilding(ctx context.Context, id uuid.UUID, body any) (*buildings.BuildingDTO, map[string]string, error) {
	return updateRecord[buildings.BuildingDTO](ctx, c, "/api/buildings/"+id.String(), "building", body)
}

func (c *Client) DeleteBuilding(ctx context.Context, id uuid.UUID) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/buildings/"+id.String(), nil, nil)
	return err
}

func (c *Client) CreateProperty(ctx context.Context, body any) (*properties.PropertyDTO, map[string]string, error) {
	return createRecord[properties.PropertyDTO](ctx, c, "/api/properties", "property", body)
}

func (c *Client) UpdateProperty(ctx context.Context, id uuid.UUID, body any) (*properties.PropertyDTO, map[string]string, error) {
	return updateRecord[properties.PropertyDTO](ctx, c, "/api/properties/"+id.String(), "property", body)
}

func (c *Client) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/properties/"+id.String(), nil, nil)
	return err
}

func (c *Client) CreateContrat(ctx context.Context, body any) (*contrats.ContratDTO, map[string]string, error) {
	return createRecord[contrats.ContratDTO](ctx, c, "/api/contrats", "contrat", body)
}

func (c *Client) UpdateContrat(ctx context.Context, id uuid.UUID, body any) (*contrats.ContratDTO, map[string]string, error) {
	return updateRecord[contrats.ContratDTO](ctx, c, "/api/contrats/"+id.String(), "contrat", body)
}

func (c *Client) DeleteContrat(ctx context.Context, id uuid.UUID) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/contrats/"+id.String(), nil, nil)
	return err
}

func (c *Client) CreatePayment(ctx context.Context, body any) (*payments.PaymentDTO, map[string]string, error) {
	return createRecord[payments.PaymentDTO](ctx, c, "/api/payments", "payment", body)
}

func (c *Client) UpdatePayment(ctx context.Context, id uuid.UUID, body any) (*payments.PaymentDTO, map[string]string, error) {
	return updateRecord[payments.PaymentDTO](ctx, c, "/api/payments/"+id.String(), "payment", body)
}

func (c *Client) DeletePayment(ctx context.Context, id uuid.UUID) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/payments/"+id.String(), nil, nil)
	return err
}

func (c *Client) CreateTeamMember(ctx context.Context, body any) (*users.UserDTO, map[string]string, error) {
	return createRecord[users.UserDTO](ctx, c, "/api/team", "user", body)
}

func (c *Client) UpdateTeamMember(ctx context.Context, id uuid.UUID, body any) (*users.UserDTO, map[string]string, error) {
	return updateRecord[users.UserDTO](ctx, c, "/api/team/"+id.String(), "user", body)
}

func (c *Client) DeactivateTeamMember(ctx context.Context, id uuid.UUID) (*users.UserDTO, map[string]string, error) {
	return writeRecord[users.UserDTO](ctx, c, http.MethodPost, "/api/team/"+id.String()+"/deactivate", "user", nil)
}
