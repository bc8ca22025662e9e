package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pghive/internal/core/domain"
	"pghive/internal/core/services"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateBulkPayments_Flat(t *testing.T) {
	ctx := context.Background()
	owner := newOwnerService(t, services.BillingFlat)
	addRoom(t, owner, "R101", 5000, domain.SharingSingle)
	addTenant(t, owner, "T001", "john@example.com", "weekly")
	addTenant(t, owner, "T002", "jane@example.com", "")
	require.NoError(t, owner.AssignRoom(ctx, "R101", "T001"))

	result, err := owner.GenerateBulkPayments(ctx, 3, date(2024, time.January, 1))
	require.NoError(t, err)
	assert.Equal(t, services.BillingFlat, result.Mode)
	assert.Equal(t, 1, result.TenantsBilled)
	assert.Equal(t, 1, result.TenantsSkipped)
	assert.Equal(t, 3, result.Payments)

	history, err := owner.PaymentHistory(ctx, "T001")
	require.NoError(t, err)
	require.Len(t, history, 3)

	wantDates := []time.Time{date(2024, time.January, 1), date(2024, time.February, 1), date(2024, time.March, 1)}
	for i, p := range history {
		assert.Equal(t, fmt.Sprintf("T001-M%d", i+1), p.ID)
		assert.True(t, wantDates[i].Equal(p.DueDate), "due date %d: %s", i, p.DueDate)
		// flat billing charges the room rent whatever the cadence
		assert.True(t, p.Amount.Equal(decimal.NewFromInt(5000)), "amount %d: %s", i, p.Amount)
		assert.False(t, p.Paid)
	}

	unassigned, err := owner.PaymentHistory(ctx, "T002")
	require.NoError(t, err)
	assert.Empty(t, unassigned)
}

func TestGenerateBulkPayments_CadenceMode(t *testing.T) {
	ctx := context.Background()
	owner := newOwnerService(t, services.BillingCadence)
	addRoom(t, owner, "R101", 3000, domain.SharingSingle)
	addRoom(t, owner, "R102", 3000, domain.SharingDouble)
	addTenant(t, owner, "T001", "john@example.com", "weekly")
	addTenant(t, owner, "T002", "jane@example.com", "quarterly")
	require.NoError(t, owner.AssignRoom(ctx, "R101", "T001"))
	require.NoError(t, owner.AssignRoom(ctx, "R102", "T002"))

	_, err := owner.GenerateBulkPayments(ctx, 1, date(2024, time.January, 1))
	require.NoError(t, err)

	weekly, err := owner.PaymentHistory(ctx, "T001")
	require.NoError(t, err)
	require.Len(t, weekly, 1)
	assert.True(t, weekly[0].Amount.Equal(decimal.NewFromInt(700)), weekly[0].Amount.String())

	quarterly, err := owner.PaymentHistory(ctx, "T002")
	require.NoError(t, err)
	require.Len(t, quarterly, 1)
	assert.True(t, quarterly[0].Amount.Equal(decimal.NewFromInt(9000)), quarterly[0].Amount.String())

	// switching modes changes subsequent runs only
	owner.SetBillingMode(services.BillingFlat)
	_, err = owner.GenerateBulkPayments(ctx, 1, date(2024, time.February, 1))
	require.NoError(t, err)

	weekly, err = owner.PaymentHistory(ctx, "T001")
	require.NoError(t, err)
	require.Len(t, weekly, 2)
	assert.True(t, weekly[1].Amount.Equal(decimal.NewFromInt(3000)))
}

func TestGenerateBulkPayments_MonthEndClamps(t *testing.T) {
	ctx := context.Background()
	owner := newOwnerService(t, services.BillingFlat)
	addRoom(t, owner, "R101", 5000, domain.SharingSingle)
	addTenant(t, owner, "T001", "john@example.com", "")
	addRoom(t, owner, "R102", 4000, domain.SharingDouble)
	addTenant(t, owner, "T002", "jane@example.com", "")
	require.NoError(t, owner.AssignRoom(ctx, "R101", "T001"))
	require.NoError(t, owner.AssignRoom(ctx, "R102", "T002"))

	_, err := owner.GenerateBulkPayments(ctx, 4, date(2024, time.January, 31))
	require.NoError(t, err)

	// the cursor carries the clamped day forward and restarts for each tenant
	want := []time.Time{
		date(2024, time.January, 31),
		date(2024, time.February, 29),
		date(2024, time.March, 29),
		date(2024, time.April, 29),
	}
	for _, id := range []string{"T001", "T002"} {
		history, err := owner.PaymentHistory(ctx, id)
		require.NoError(t, err)
		require.Len(t, history, len(want))
		for i, p := range history {
			assert.True(t, want[i].Equal(p.DueDate), "%s record %d: %s", id, i, p.DueDate)
		}
	}
}

func TestGenerateBulkPayments_NoMonths(t *testing.T) {
	ctx := context.Background()
	owner := newOwnerService(t, services.BillingFlat)
	addRoom(t, owner, "R101", 5000, domain.SharingSingle)
	addTenant(t, owner, "T001", "john@example.com", "")
	require.NoError(t, owner.AssignRoom(ctx, "R101", "T001"))

	for _, months := range []int{0, -2} {
		result, err := owner.GenerateBulkPayments(ctx, months, date(2024, time.January, 1))
		require.NoError(t, err)
		assert.Zero(t, result.Payments)
	}

	history, err := owner.PaymentHistory(ctx, "T001")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestLedgerOperations(t *testing.T) {
	ctx := context.Background()
	owner := newOwnerService(t, services.BillingFlat)
	addTenant(t, owner, "T001", "john@example.com", "")

	generated, err := owner.RecordPayment(ctx, "T001", services.RecordPaymentInput{
		Amount:  decimal.NewFromInt(1200),
		DueDate: date(2024, time.May, 1),
	})
	require.NoError(t, err)
	assert.Len(t, generated.ID, 36)

	_, err = owner.RecordPayment(ctx, "T001", services.RecordPaymentInput{
		ID:      "deposit",
		Amount:  decimal.NewFromInt(10000),
		DueDate: date(2024, time.May, 1),
	})
	require.NoError(t, err)

	require.NoError(t, owner.MarkPaid(ctx, "T001", "deposit"))
	assert.ErrorIs(t, owner.MarkPaid(ctx, "T001", "missing"), domain.ErrPaymentNotFound)
	assert.ErrorIs(t, owner.MarkPaid(ctx, "T404", "deposit"), domain.ErrTenantNotFound)

	_, err = owner.RecordPayment(ctx, "T001", services.RecordPaymentInput{Amount: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	history, err := owner.PaymentHistory(ctx, "T001")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, generated.ID, history[0].ID)
	assert.False(t, history[0].Paid)
	assert.True(t, history[1].Paid)
}

func TestReport(t *testing.T) {
	ctx := context.Background()
	owner := newOwnerService(t, services.BillingFlat)

	empty, err := owner.Report(ctx)
	require.NoError(t, err)
	assert.Equal(t, &services.Report{}, empty)

	addRoom(t, owner, "R101", 6000, domain.SharingSingle)
	addRoom(t, owner, "R102", 4500, domain.SharingDouble)
	addRoom(t, owner, "R103", 3500, domain.SharingTriple)
	addTenant(t, owner, "T001", "john@example.com", "")
	addTenant(t, owner, "T002", "jane@example.com", "")
	require.NoError(t, owner.AssignRoom(ctx, "R101", "T001"))

	report, err := owner.Report(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.TotalTenants)
	assert.Equal(t, 3, report.TotalRooms)
	assert.Equal(t, 1, report.OccupiedRooms)
	assert.Equal(t, 2, report.VacantRooms)
	assert.InDelta(t, 1.0/3.0, report.OccupancyRate, 1e-9)
	assert.Equal(t, 33, report.OccupancyPercent)
}

func TestRentSuggestions(t *testing.T) {
	ctx := context.Background()
	owner := newOwnerService(t, services.BillingFlat)

	for _, r := range []struct {
		id      string
		sharing domain.SharingType
	}{
		{"R1", domain.SharingFour},
		{"R2", domain.SharingSingle},
		{"R3", domain.SharingDouble},
		{"R4", domain.SharingSingle},
	} {
		room, err := domain.NewRoom(r.id, decimal.NewFromInt(1000), 0, 0, r.sharing)
		require.NoError(t, err)
		require.NoError(t, owner.Rooms().Add(ctx, room))
	}

	report, err := owner.RentSuggestions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, report.OccupancyRate)

	ids := make([]string, 0, len(report.Suggestions))
	for _, s := range report.Suggestions {
		ids = append(ids, s.RoomID)
	}
	assert.Equal(t, []string{"R2", "R4", "R3", "R1"}, ids)

	// empty building: 1000 x 1.8 x 0.9
	single := report.Suggestions[0]
	assert.Equal(t, "1620", single.SuggestedRent.String())
	assert.Equal(t, "62", single.ChangePercent.String())

	four := report.Suggestions[3]
	assert.Equal(t, "720", four.SuggestedRent.String())
	assert.Equal(t, "-28", four.ChangePercent.String())
}

func TestRentSuggestions_ZeroRent(t *testing.T) {
	ctx := context.Background()
	owner := newOwnerService(t, services.BillingFlat)

	_, err := owner.Rooms().AddBasic(ctx, "R0", decimal.Zero)
	require.NoError(t, err)

	report, err := owner.RentSuggestions(ctx)
	require.NoError(t, err)
	require.Len(t, report.Suggestions, 1)
	assert.True(t, report.Suggestions[0].ChangePercent.IsZero())
}

func TestParseBillingMode(t *testing.T) {
	mode, err := services.ParseBillingMode(" Cadence ")
	require.NoError(t, err)
	assert.Equal(t, services.BillingCadence, mode)

	_, err = services.ParseBillingMode("monthly")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
