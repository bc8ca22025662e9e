package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// SharingType is the occupancy category of a room
type SharingType string

const (
	SharingSingle SharingType = "Single"
	SharingDouble SharingType = "Double"
	SharingTriple SharingType = "Triple"
	SharingFour   SharingType = "Four"
)

// SharingOrder lists the sharing types from most to least private
var SharingOrder = []SharingType{SharingSingle, SharingDouble, SharingTriple, SharingFour}

var sharingFactors = map[SharingType]decimal.Decimal{
	SharingSingle: decimal.RequireFromString("1.8"),
	SharingDouble: decimal.RequireFromString("1.3"),
	SharingTriple: decimal.RequireFromString("1.0"),
	SharingFour:   decimal.RequireFromString("0.8"),
}

// Valid reports whether s is one of the four known sharing types
func (s SharingType) Valid() bool {
	_, ok := sharingFactors[s]
	return ok
}

// Factor returns the pricing multiplier of the sharing type.
// ok is false for unknown types.
func (s SharingType) Factor() (decimal.Decimal, bool) {
	f, ok := sharingFactors[s]
	return f, ok
}

// Rank returns the position of s in SharingOrder, or len(SharingOrder) if unknown
func (s SharingType) Rank() int {
	for i, t := range SharingOrder {
		if t == s {
			return i
		}
	}
	return len(SharingOrder)
}

// ParseSharingType matches a sharing type case-insensitively
func ParseSharingType(s string) (SharingType, error) {
	s = strings.TrimSpace(s)
	for _, t := range SharingOrder {
		if strings.EqualFold(string(t), s) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: sharing type %q must be Single/Double/Triple/Four", ErrInvalidRoom, s)
}

// Room is a rentable unit. Occupied is true exactly when TenantID is set.
type Room struct {
	ID           string          `json:"id"`
	BaseRent     decimal.Decimal `json:"base_rent"`
	SizeSqft     float64         `json:"size_sqft"`
	AmenityScore int             `json:"amenity_score"`
	SharingType  SharingType     `json:"sharing_type"`
	Occupied     bool            `json:"occupied"`
	TenantID     string          `json:"tenant_id,omitempty"`
}

// NewRoom creates a vacant room, failing with ErrInvalidRoom for an unknown sharing type
func NewRoom(id string, baseRent decimal.Decimal, sizeSqft float64, amenityScore int, sharing SharingType) (*Room, error) {
	r := &Room{
		ID:           id,
		BaseRent:     baseRent,
		SizeSqft:     sizeSqft,
		AmenityScore: amenityScore,
		SharingType:  sharing,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// NewBasicRoom creates a Single room with no size or amenity information
func NewBasicRoom(id string, baseRent decimal.Decimal) (*Room, error) {
	return NewRoom(id, baseRent, 0, 0, SharingSingle)
}

// Validate checks the identifier and sharing type
func (r *Room) Validate() error {
	if r == nil {
		return fmt.Errorf("%w: room is nil", ErrInvalidRoom)
	}
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("%w: room id is empty", ErrInvalidRoom)
	}
	if !r.SharingType.Valid() {
		return fmt.Errorf("%w: sharing type %q must be Single/Double/Triple/Four", ErrInvalidRoom, r.SharingType)
	}
	return nil
}

// SetTenant links or (with "") unlinks a tenant and keeps Occupied in step
func (r *Room) SetTenant(tenantID string) {
	r.TenantID = tenantID
	r.Occupied = tenantID != ""
}

// Clone returns a copy safe to mutate
func (r *Room) Clone() *Room {
	c := *r
	return &c
}
