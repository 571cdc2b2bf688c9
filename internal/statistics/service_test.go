package statistics

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/immogest/immogest-backend/pkg/enums"
)

type stubTotals map[enums.PaymentStatus]decimal.Decimal

func (s stubTotals) SumByStatus(_ context.Context) (map[enums.PaymentStatus]decimal.Decimal, error) {
	return s, nil
}

type stubActive int64

func (s stubActive) CountByStatus(_ context.Context, status enums.ContratStatus) (int64, error) {
	if status != enums.ContratStatusActive {
		return 0, nil
	}
	return int64(s), nil
}

type stubCounts map[string]int64

func (s stubCounts) CountByStatus(_ context.Context) (map[string]int64, error) {
	return s, nil
}

func TestComputeFoldsLedgerByStatus(t *testing.T) {
	totals := stubTotals{
		enums.PaymentStatusPaid:    decimal.NewFromInt(300),
		enums.PaymentStatusPending: decimal.NewFromInt(50),
		enums.PaymentStatusLate:    decimal.NewFromInt(25),
	}
	svc, err := NewService(totals, stubActive(3), stubCounts{
		"OCCUPIED": 3,
		"VACANT":   1,
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	stats, err := svc.Compute(context.Background())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if !stats.TotalPaid.Equal(decimal.NewFromInt(300)) {
		t.Fatalf("expected 300 paid, got %s", stats.TotalPaid)
	}
	if !stats.TotalPending.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected 50 pending, got %s", stats.TotalPending)
	}
	if !stats.TotalLate.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("expected 25 late, got %s", stats.TotalLate)
	}
	if stats.ActiveContrats != 3 {
		t.Fatalf("expected 3 active contrats, got %d", stats.ActiveContrats)
	}
	if !stats.OccupancyRate.Equal(decimal.NewFromInt(75)) {
		t.Fatalf("expected 75%% occupancy, got %s", stats.OccupancyRate)
	}
}

func TestComputeEmptyLedgerIsAllZero(t *testing.T) {
	svc, err := NewService(stubTotals{}, stubActive(0), stubCounts{})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	stats, err := svc.Compute(context.Background())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if !stats.TotalPaid.IsZero() || !stats.TotalPending.IsZero() || !stats.TotalLate.IsZero() {
		t.Fatalf("expected zero totals, got %+v", stats)
	}
	if !stats.OccupancyRate.IsZero() {
		t.Fatalf("expected zero occupancy, got %s", stats.OccupancyRate)
	}
}

func TestComputeCancelledPaymentsIgnored(t *testing.T) {
	totals := stubTotals{
		enums.PaymentStatusPaid:      decimal.NewFromInt(100),
		enums.PaymentStatusCancelled: decimal.NewFromInt(999),
	}
	svc, err := NewService(totals, stubActive(1), stubCounts{"OCCUPIED": 1})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	stats, err := svc.Compute(context.Background())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if !stats.TotalPaid.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected cancelled excluded from paid, got %s", stats.TotalPaid)
	}
}
