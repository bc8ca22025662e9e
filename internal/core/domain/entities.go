package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Owner is the single administrator of the building
type Owner struct {
	Account
}

// Tenant is a resident account with a payment cadence and an optional room.
// The room link is held as an ID; RoomID is "" when unassigned.
type Tenant struct {
	Account

	Contact     string
	MoveInDate  *time.Time
	MoveOutDate *time.Time
	Cadence     Cadence
	RoomID      string
	Ledger      Ledger
	Seq         uint64

	documents []string
}

// NewTenant creates a tenant account with the given cadence
func NewTenant(id, name, email, plain string, cadence Cadence) (*Tenant, error) {
	account, err := NewAccount(id, name, email, plain)
	if err != nil {
		return nil, err
	}
	return &Tenant{Account: account, Cadence: cadence}, nil
}

// HasRoom reports whether the tenant is assigned to a room
func (t *Tenant) HasRoom() bool {
	return t.RoomID != ""
}

// UploadDocument records a document name. Re-uploading the same name is a no-op.
func (t *Tenant) UploadDocument(name string) bool {
	for _, d := range t.documents {
		if d == name {
			return false
		}
	}
	t.documents = append(t.documents, name)
	return true
}

// Documents returns the uploaded document names in upload order
func (t *Tenant) Documents() []string {
	out := make([]string, len(t.documents))
	copy(out, t.documents)
	return out
}

// PeriodAmount is the cadence amount for the given room, 0 without a room
func (t *Tenant) PeriodAmount(room *Room) decimal.Decimal {
	if room == nil {
		return decimal.Zero
	}
	return t.Cadence.PeriodAmount(room.BaseRent)
}

// Clone returns a deep copy safe to mutate
func (t *Tenant) Clone() *Tenant {
	c := *t
	c.Ledger = t.Ledger.Clone()
	c.documents = t.Documents()
	if t.MoveInDate != nil {
		d := *t.MoveInDate
		c.MoveInDate = &d
	}
	if t.MoveOutDate != nil {
		d := *t.MoveOutDate
		c.MoveOutDate = &d
	}
	return &c
}

// TenantResponse DTO
type TenantResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Contact     string     `json:"contact"`
	MoveInDate  *time.Time `json:"move_in_date,omitempty"`
	MoveOutDate *time.Time `json:"move_out_date,omitempty"`
	Cadence     Cadence    `json:"cadence"`
	PeriodDays  int        `json:"period_days"`
	RoomID      string     `json:"room_id,omitempty"`
	Payments    int        `json:"payments"`
	Documents   []string   `json:"documents"`
}

// ToResponse converts a tenant to its public view, without credentials
func (t *Tenant) ToResponse() *TenantResponse {
	return &TenantResponse{
		ID:          t.ID,
		Name:        t.Name,
		Email:       t.Email,
		Contact:     t.Contact,
		MoveInDate:  t.MoveInDate,
		MoveOutDate: t.MoveOutDate,
		Cadence:     t.Cadence,
		PeriodDays:  t.Cadence.PeriodDays(),
		RoomID:      t.RoomID,
		Payments:    t.Ledger.Len(),
		Documents:   t.Documents(),
	}
}
