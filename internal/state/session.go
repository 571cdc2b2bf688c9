package state

import (
	"context"

	"github.com/google/uuid"

	"github.com/immogest/immogest-backend/internal/buildings"
	"github.com/immogest/immogest-backend/internal/contrats"
	"github.com/immogest/immogest-backend/internal/dashboard"
	"github.com/immogest/immogest-backend/internal/payments"
	"github.com/immogest/immogest-backend/internal/properties"
	"github.com/immogest/immogest-backend/internal/statistics"
	"github.com/immogest/immogest-backend/internal/tenants"
	"github.com/immogest/immogest-backend/internal/users"
)

// Session is the composition root for one signed-in client: the account
// state plus one store per entity collection.
type Session struct {
	App *AppState

	Users      *EntityStore[users.UserDTO]
	Tenants    *EntityStore[tenants.TenantDTO]
	Properties *EntityStore[properties.PropertyDTO]
	Buildings  *EntityStore[buildings.BuildingDTO]
	Contrats   *EntityStore[contrats.ContratDTO]
	Payments   *EntityStore[payments.PaymentDTO]
}

// NewSession builds an empty session. The fetcher backs the one-time
// permission load and may be nil in tests that never load permissions.
func NewSession(fetcher PermissionFetcher) *Session {
	return &Session{
		App:        NewAppState(fetcher),
		Users:      NewEntityStore(func(u users.UserDTO) uuid.UUID { return u.ID }),
		Tenants:    NewEntityStore(func(t tenants.TenantDTO) uuid.UUID { return t.ID }),
		Properties: NewEntityStore(func(p properties.PropertyDTO) uuid.UUID { return p.ID }),
		Buildings:  NewEntityStore(func(b buildings.BuildingDTO) uuid.UUID { return b.ID }),
		Contrats:   NewEntityStore(func(c contrats.ContratDTO) uuid.UUID { return c.ID }),
		Payments:   NewEntityStore(func(p payments.PaymentDTO) uuid.UUID { return p.ID }),
	}
}

// Hydrate seeds every store from the initial page payload. A nil payload or
// nil collections leave the stores empty rather than failing, so a partial
// server response still produces a usable session.
func (s *Session) Hydrate(ctx context.Context, account *users.UserDTO, payload *dashboard.Payload) error {
	s.App.SetUser(account)

	if payload == nil {
		s.Users.Initialize(nil)
		s.Tenants.Initialize(nil)
		s.Properties.Initialize(nil)
		s.Buildings.Initialize(nil)
		s.Contrats.Initialize(nil)
		s.Payments.Initialize(nil)
		return nil
	}

	s.Users.Initialize(payload.Users)
	s.Tenants.Initialize(payload.Tenants)
	s.Properties.Initialize(payload.Properties)
	s.Buildings.Initialize(payload.Buildings)
	s.Contrats.Initialize(payload.Contrats)
	s.Payments.Initialize(payload.Payments)

	if s.App.IsAuthenticated() {
		return s.App.LoadPermissions(ctx)
	}
	return nil
}

// Statistics derives the dashboard summary from the live collections.
func (s *Session) Statistics() statistics.Statistics {
	return ComputeStatistics(s.Payments.Items(), s.Contrats.Items(), s.Properties.Items())
}

// Logout clears the account and every collection.
func (s *Session) Logout() {
	s.App.Logout()
	s.Users.Initialize(nil)
	s.Tenants.Initialize(nil)
	s.Properties.Initialize(nil)
	s.Buildings.Initialize(nil)
	s.Contrats.Initialize(nil)
	s.Payments.Initialize(nil)
}
