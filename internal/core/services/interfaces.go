package services

import (
	"time"

	"github.com/shopspring/decimal"

	"pghive/internal/core/domain"
)

// Note: RoomInventory implementation is in room_inventory.go
// Note: TenantRegistry implementation is in tenant_registry.go
// Note: OwnerService implementation is in owner_service.go

// Session identifies the account behind a request or console login.
// Seq is the account's login sequence number when the session was opened.
type Session struct {
	AccountID string
	Role      domain.Role
	Seq       uint64
}

// IsOwner reports whether the session belongs to the owner
func (s Session) IsOwner() bool {
	return s.Role == domain.RoleOwner
}

// Input DTOs

// CreateTenantInput for creating tenant
type CreateTenantInput struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Password    string     `json:"password"`
	Contact     string     `json:"contact"`
	Cadence     string     `json:"cadence"`
	MoveInDate  *time.Time `json:"move_in_date"`
	MoveOutDate *time.Time `json:"move_out_date"`
}

// EditTenantInput for editing tenant. Every field is replaced.
type EditTenantInput struct {
	Name        string     `json:"name"`
	Contact     string     `json:"contact"`
	MoveInDate  *time.Time `json:"move_in_date"`
	MoveOutDate *time.Time `json:"move_out_date"`
}

// CreateRoomInput for creating or replacing a room
type CreateRoomInput struct {
	ID           string          `json:"id"`
	BaseRent     decimal.Decimal `json:"base_rent"`
	SizeSqft     float64         `json:"size_sqft"`
	AmenityScore int             `json:"amenity_score"`
	SharingType  string          `json:"sharing_type"`
}

// RecordPaymentInput for recording a single payment.
// An empty ID gets a generated one.
type RecordPaymentInput struct {
	ID      string          `json:"id"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate time.Time       `json:"due_date"`
}
