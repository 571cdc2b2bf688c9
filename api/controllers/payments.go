package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/immogest/immogest-backend/api/responses"
	"github.com/immogest/immogest-backend/api/validators"
	"github.com/immogest/immogest-backend/internal/payments"
	"github.com/immogest/immogest-backend/pkg/enums"
	pkgerrors "github.com/immogest/immogest-backend/pkg/errors"
	"github.com/immogest/immogest-backend/pkg/logger"
)

type paymentCreateRequest struct {
	ContratID     uuid.UUID       `json:"contrat_id" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       string          `json:"due_date" validate:"required"`
	PaymentDate   *string         `json:"payment_date,omitempty"`
	Status        string          `json:"status,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

func (r paymentCreateRequest) toInput() (payments.CreatePaymentInput, error) {
	due, err := parseDate(r.DueDate)
	if err != nil {
		return payments.CreatePaymentInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid due_date")
	}
	paid, err := parseDatePtr(r.PaymentDate)
	if err != nil {
		return payments.CreatePaymentInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment_date")
	}

	var status enums.PaymentStatus
	if r.Status != "" {
		status, err = enums.ParsePaymentStatus(r.Status)
		if err != nil {
			return payments.CreatePaymentInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
	}
	var method enums.PaymentMethod
	if r.PaymentMethod != "" {
		method, err = enums.ParsePaymentMethod(r.PaymentMethod)
		if err != nil {
			return payments.CreatePaymentInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment_method")
		}
	}

	return payments.CreatePaymentInput{
		ContratID:     r.ContratID,
		Amount:        r.Amount,
		DueDate:       due,
		PaymentDate:   paid,
		Status:        status,
		PaymentMethod: method,
		Notes:         r.Notes,
	}, nil
}

type paymentUpdateRequest struct {
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	DueDate       *string          `json:"due_date,omitempty"`
	PaymentDate   *string          `json:"payment_date,omitempty"`
	Status        *string          `json:"status,omitempty"`
	PaymentMethod *string          `json:"payment_method,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

func (r paymentUpdateRequest) toInput() (payments.UpdatePaymentInput, error) {
	input := payments.UpdatePaymentInput{
		Amount: r.Amount,
		Notes:  r.Notes,
	}

	due, err := parseDatePtr(r.DueDate)
	if err != nil {
		return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid due_date")
	}
	input.DueDate = due

	paid, err := parseDatePtr(r.PaymentDate)
	if err != nil {
		return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment_date")
	}
	input.PaymentDate = paid

	if r.Status != nil {
		status, err := enums.ParsePaymentStatus(*r.Status)
		if err != nil {
			return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		input.Status = &status
	}
	if r.PaymentMethod != nil {
		method, err := enums.ParsePaymentMethod(*r.PaymentMethod)
		if err != nil {
			return input, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment_method")
		}
		input.PaymentMethod = &method
	}

	return input, nil
}

func PaymentList(svc payments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payment service unavailable"))
			return
		}

		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"payments": list})
	}
}

func PaymentCreate(svc payments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payment service unavailable"))
			return
		}

		var payload paymentCreateRequest
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

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]*payments.PaymentDTO{"payment": created})
	}
}

func PaymentUpdate(svc payments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payment service unavailable"))
			return
		}

		id, err := idParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload paymentUpdateRequest
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

		responses.WriteSuccess(w, map[string]*payments.PaymentDTO{"payment": updated})
	}
}

func PaymentDelete(svc payments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payment service unavailable"))
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
