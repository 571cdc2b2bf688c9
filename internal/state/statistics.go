package state

import (
	"github.com/shopspring/decimal"

	"github.com/immogest/immogest-backend/internal/contrats"
	"github.com/immogest/immogest-backend/internal/payments"
	"github.com/immogest/immogest-backend/internal/properties"
	"github.com/immogest/immogest-backend/internal/statistics"
	"github.com/immogest/immogest-backend/pkg/enums"
)

// ComputeStatistics folds the local collections into the dashboard summary,
// mirroring what the server computes on first load. It runs after every
// ledger mutation so the totals never go stale between page loads.
func ComputeStatistics(
	paymentList []payments.PaymentDTO,
	contratList []contrats.ContratDTO,
	propertyList []properties.PropertyDTO,
) statistics.Statistics {
	stats := statistics.Statistics{
		TotalPaid:     decimal.Zero,
		TotalPending:  decimal.Zero,
		TotalLate:     decimal.Zero,
		OccupancyRate: decimal.Zero,
	}

	for i := range paymentList {
		switch paymentList[i].Status {
		case enums.PaymentStatusPaid:
			stats.TotalPaid = stats.TotalPaid.Add(paymentList[i].Amount)
		case enums.PaymentStatusPending:
			stats.TotalPending = stats.TotalPending.Add(paymentList[i].Amount)
		case enums.PaymentStatusLate:
			stats.TotalLate = stats.TotalLate.Add(paymentList[i].Amount)
		}
	}

	for i := range contratList {
		if contratList[i].Status == enums.ContratStatusActive {
			stats.ActiveContrats++
		}
	}

	var occupied int64
	total := int64(len(propertyList))
	for i := range propertyList {
		if propertyList[i].Status == enums.PropertyStatusOccupied {
			occupied++
		}
	}
	if total > 0 {
		stats.OccupancyRate = decimal.NewFromInt(occupied).
			Mul(decimal.NewFromInt(100)).
			DivRound(decimal.NewFromInt(total), 2)
	}

	return stats
}
