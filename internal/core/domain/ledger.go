package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a single payment obligation
type Payment struct {
	ID      string          `json:"id"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate time.Time       `json:"due_date"`
	Paid    bool            `json:"paid"`
}

// NewPayment creates an unpaid payment
func NewPayment(id string, amount decimal.Decimal, due time.Time) Payment {
	return Payment{ID: id, Amount: amount, DueDate: due}
}

// Status returns "Paid" or "Pending"
func (p Payment) Status() string {
	if p.Paid {
		return "Paid"
	}
	return "Pending"
}

// Ledger is a tenant's ordered list of payments
type Ledger struct {
	payments []Payment
}

// Record appends a payment. Payment IDs are not de-duplicated.
func (l *Ledger) Record(p Payment) {
	l.payments = append(l.payments, p)
}

// History returns the payments in insertion order
func (l *Ledger) History() []Payment {
	out := make([]Payment, len(l.payments))
	copy(out, l.payments)
	return out
}

// Len returns the number of recorded payments
func (l *Ledger) Len() int {
	return len(l.payments)
}

// MarkPaid settles the first payment with the given ID
func (l *Ledger) MarkPaid(paymentID string) error {
	for i := range l.payments {
		if l.payments[i].ID == paymentID {
			l.payments[i].Paid = true
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrPaymentNotFound, paymentID)
}

// Outstanding sums the unpaid amounts
func (l *Ledger) Outstanding() decimal.Decimal {
	total := decimal.Zero
	for _, p := range l.payments {
		if !p.Paid {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// Clone returns a ledger that shares no storage with l
func (l *Ledger) Clone() Ledger {
	return Ledger{payments: l.History()}
}
