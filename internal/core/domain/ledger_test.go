package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pghive/internal/core/domain"
)

func TestLedger_RecordAndHistory(t *testing.T) {
	var l domain.Ledger
	due := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	l.Record(domain.NewPayment("P1", decimal.NewFromInt(100), due))
	l.Record(domain.NewPayment("P2", decimal.NewFromInt(200), due.AddDate(0, 1, 0)))
	l.Record(domain.NewPayment("P1", decimal.NewFromInt(100), due))

	history := l.History()
	require.Len(t, history, 3)
	assert.Equal(t, []string{"P1", "P2", "P1"}, []string{history[0].ID, history[1].ID, history[2].ID})
	for _, p := range history {
		assert.False(t, p.Paid)
		assert.Equal(t, "Pending", p.Status())
	}

	// history is a copy
	history[0].Paid = true
	assert.False(t, l.History()[0].Paid)
}

func TestLedger_MarkPaid(t *testing.T) {
	var l domain.Ledger
	l.Record(domain.NewPayment("P1", decimal.NewFromInt(100), time.Now()))
	l.Record(domain.NewPayment("P2", decimal.NewFromInt(250), time.Now()))

	require.NoError(t, l.MarkPaid("P2"))
	assert.True(t, l.History()[1].Paid)
	assert.Equal(t, "100", l.Outstanding().String())

	assert.ErrorIs(t, l.MarkPaid("P9"), domain.ErrPaymentNotFound)
}

func TestTenant_DocumentsAreDeduplicated(t *testing.T) {
	tenant, err := domain.NewTenant("T001", "John Doe", "john@example.com", "password123", domain.CadenceDefault)
	require.NoError(t, err)

	assert.True(t, tenant.UploadDocument("aadhaar.pdf"))
	assert.True(t, tenant.UploadDocument("lease.pdf"))
	assert.False(t, tenant.UploadDocument("aadhaar.pdf"))

	assert.Equal(t, []string{"aadhaar.pdf", "lease.pdf"}, tenant.Documents())
}

func TestTenant_CloneIsDeep(t *testing.T) {
	tenant, err := domain.NewTenant("T001", "John Doe", "john@example.com", "password123", domain.CadenceDefault)
	require.NoError(t, err)
	moveIn := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tenant.MoveInDate = &moveIn
	tenant.Ledger.Record(domain.NewPayment("P1", decimal.NewFromInt(100), moveIn))

	c := tenant.Clone()
	c.Ledger.Record(domain.NewPayment("P2", decimal.NewFromInt(100), moveIn))
	c.UploadDocument("lease.pdf")
	*c.MoveInDate = moveIn.AddDate(1, 0, 0)

	assert.Equal(t, 1, tenant.Ledger.Len())
	assert.Empty(t, tenant.Documents())
	assert.Equal(t, moveIn, *tenant.MoveInDate)
}
