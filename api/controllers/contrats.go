package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/immogest/immogest-backend/api/responses"
	"github.com/immogest/immogest-backend/api/validators"
	"github.com/immogest/immogest-backend/internal/contrats"
	"github.com/immogest/immogest-backend/pkg/enums"
	pkgerrors "github.com/immogest/immogest-backend/pkg/errors"
	"github.com/immogest/immogest-backend/pkg/logger"
)

type contratCreateRequest struct {
	PropertyID       uuid.UUID        `json:"property_id" validate:"required"`
	TenantID         uuid.UUID        `json:"tenant_id" validate:"required"`
	StartDate        string           `json:"start_date" validate:"required"`
	EndDate          string           `json:"end_date" validate:"required"`
	MonthlyRent      decimal.Decimal  `json:"monthly_rent"`
	SecurityDeposit  *decimal.Decimal `json:"security_deposit,omitempty"`
	Charges          *decimal.Decimal `json:"charges,omitempty"`
	PaymentFrequency string           `json:"payment_frequency,omitempty"`
	Terms            *string          `json:"terms,omitempty"`
}

func (r contratCreateRequest) toInput() (contrats.CreateContratInput, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return contrats.CreateContratInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid start_date")
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return contrats.CreateContratInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid end_date")
	}

	var frequency enums.PaymentFrequency
	if r.PaymentFrequency != "" {
		frequency, err = enums.ParsePaymentFrequency(r.PaymentFrequency)
		if err != nil {
			return contrats.CreateContratInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment_frequency")
		}
	}

	return contrats.CreateContratInput{
		PropertyID:       r.PropertyID,
		TenantID:         r.TenantID,
		StartDate:        start,
		EndDate:          end,
		MonthlyRent:      r.MonthlyRent,
		SecurityDeposit:  r.SecurityDeposit,
		Charges:          r.Charges,
		PaymentFrequency: frequency,
		Terms:            r.Terms,
	}, nil
}

type contratUpdateRequest struct {
	StartDate        *string          `json:"start_date,omitempty"`
	EndDate          *string          `json:"end_date,omitempty"`
	MonthlyRent      *decimal.Decimal `json:"monthly_rent,omitempty"`
	SecurityDeposit  *decimal.Decimal `json:"security_deposit,omitempty"`
	Charges          *decimal.Decimal `json:"charges,omitempty"`
	PaymentFrequency *string          `json:"payment_frequency,omitempty"`
	Status           *string          `json:"status,omitempty"`
	Terms            *string          `json:"terms,omitempty"`
}

func (r contratUpdateRequest) toInput() (contrats.UpdateContratInput, error) {
	input := contrats.UpdateContratInput{
		MonthlyRent:     r.MonthlyRent,
		SecurityDeposit: r.SecurityDeposit,
		Charges:         r.Charges,
		Terms:           r.Terms,
	}

	start, err := parseDatePtr(r.StartDate)
	if err != nil {
		return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid start_date")
	}
	input.StartDate = start

	end, err := parseDatePtr(r.EndDate)
	if err != nil {
		return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid end_date")
	}
	input.EndDate = end

	if r.PaymentFrequency != nil {
		frequency, err := enums.ParsePaymentFrequency(*r.PaymentFrequency)
		if err != nil {
			return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment_frequency")
		}
		input.PaymentFrequency = &frequency
	}
	if r.Status != nil {
		status, err := enums.ParseContratStatus(*r.Status)
		if err != nil {
			return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		input.Status = &status
	}

	return input, nil
}

func ContratList(svc contrats.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "contrat service unavailable"))
			return
		}

		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"contrats": list})
	}
}

func ContratCreate(svc contrats.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "contrat service unavailable"))
			return
		}

		var payload contratCreateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]*contrats.ContratDTO{"contrat": created})
	}
}

func ContratUpdate(svc contrats.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "contrat service unavailable"))
			return
		}

		id, err := idParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload contratUpdateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]*contrats.ContratDTO{"contrat": updated})
	}
}

func ContratDelete(svc contrats.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "contrat service unavailable"))
			return
		}

		id, err := idParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, nil)
	}
}
