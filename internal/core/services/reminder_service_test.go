package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pghive/internal/core/domain"
	"pghive/internal/core/services"
)

func TestReminderService_RunOnce(t *testing.T) {
	ctx := context.Background()
	owner := newOwnerService(t, services.BillingFlat)
	addRoom(t, owner, "R101", 6000, domain.SharingSingle)
	addTenant(t, owner, "T001", "john@example.com", "")
	require.NoError(t, owner.AssignRoom(ctx, "R101", "T001"))

	_, err := owner.GenerateBulkPayments(ctx, 3, date(2024, time.January, 1))
	require.NoError(t, err)
	require.NoError(t, owner.MarkPaid(ctx, "T001", "T001-M1"))

	_, err = owner.RecordPayment(ctx, "T001", services.RecordPaymentInput{
		ID:      "late-fee",
		Amount:  decimal.NewFromInt(100),
		DueDate: date(2024, time.January, 20),
	})
	require.NoError(t, err)

	svc := services.NewReminderService(owner, "", 3, zap.NewNop())

	// M1 is paid, M2 is due within three days, M3 is too far out
	reminders, err := svc.RunOnce(ctx, date(2024, time.January, 29))
	require.NoError(t, err)
	require.Len(t, reminders, 2)

	assert.Equal(t, "late-fee", reminders[0].PaymentID)
	assert.True(t, reminders[0].Overdue)

	assert.Equal(t, "T001-M2", reminders[1].PaymentID)
	assert.False(t, reminders[1].Overdue)
	assert.Equal(t, "R101", reminders[1].RoomID)
	assert.True(t, reminders[1].Amount.Equal(decimal.NewFromInt(6000)))
}

func TestReminderService_NothingDue(t *testing.T) {
	owner := newOwnerService(t, services.BillingFlat)
	svc := services.NewReminderService(owner, "", 3, zap.NewNop())

	reminders, err := svc.RunOnce(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, reminders)
}

func TestReminderService_StartRejectsBadSchedule(t *testing.T) {
	owner := newOwnerService(t, services.BillingFlat)

	bad := services.NewReminderService(owner, "not a schedule", 3, zap.NewNop())
	assert.Error(t, bad.Start())

	good := services.NewReminderService(owner, services.DefaultReminderSchedule, 3, zap.NewNop())
	require.NoError(t, good.Start())
	good.Stop()
}
