package statistics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/immogest/immogest-backend/pkg/enums"
	pkgerrors "github.com/immogest/immogest-backend/pkg/errors"
)

type paymentTotaler interface {
	SumByStatus(ctx context.Context) (map[enums.PaymentStatus]decimal.Decimal, error)
}

type contratCounter interface {
	CountByStatus(ctx context.Context, status enums.ContratStatus) (int64, error)
}

type propertyCounter interface {
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

// Statistics is the dashboard financial summary.
type Statistics struct {
	TotalPaid      decimal.Decimal `json:"total_paid"`
	TotalPending   decimal.Decimal `json:"total_pending"`
	TotalLate      decimal.Decimal `json:"total_late"`
	ActiveContrats int64           `json:"active_contrats"`
	OccupancyRate  decimal.Decimal `json:"occupancy_rate"`
}

// Service computes the dashboard statistics in one pass over the ledger.
type Service interface {
	Compute(ctx context.Context) (*Statistics, error)
}

type service struct {
	payments   paymentTotaler
	contrats   contratCounter
	properties propertyCounter
}

func NewService(payments paymentTotaler, contrats contratCounter, properties propertyCounter) (Service, error) {
	if payments == nil {
		return nil, fmt.Errorf("payment totaler required")
	}
	if contrats == nil {
		return nil, fmt.Errorf("contrat counter required")
	}
	if properties == nil {
		return nil, fmt.Errorf("property counter required")
	}
	return &service{payments: payments, contrats: contrats, properties: properties}, nil
}

func (s *service) Compute(ctx context.Context) (*Statistics, error) {
	totals, err := s.payments.SumByStatus(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "summing payments")
	}

	active, err := s.contrats.CountByStatus(ctx, enums.ContratStatusActive)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "counting active contrats")
	}

	counts, err := s.properties.CountByStatus(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "counting properties")
	}

	stats := &Statistics{
		TotalPaid:      totals[enums.PaymentStatusPaid],
		TotalPending:   totals[enums.PaymentStatusPending],
		TotalLate:      totals[enums.PaymentStatusLate],
		ActiveContrats: active,
		OccupancyRate:  occupancyRate(counts),
	}
	return stats, nil
}

// occupancyRate is occupied over total as a percentage with two decimals.
// Maintenance and vacant units count toward the denominator.
func occupancyRate(counts map[string]int64) decimal.Decimal {
	var total, occupied int64
	for status, n := range counts {
		total += n
		if status == enums.PropertyStatusOccupied.String() {
			occupied += n
		}
	}
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(occupied).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.NewFromInt(total), 2)
}
