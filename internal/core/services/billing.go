package services

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"pghive/internal/core/domain"
)

// BillingMode selects what bulk billing charges per month
type BillingMode string

const (
	// BillingFlat charges the room's base rent
	BillingFlat BillingMode = "flat"
	// BillingCadence charges the tenant's cadence period amount
	BillingCadence BillingMode = "cadence"
)

// ParseBillingMode accepts "flat" or "cadence", case-insensitively
func ParseBillingMode(s string) (BillingMode, error) {
	switch mode := BillingMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case BillingFlat, BillingCadence:
		return mode, nil
	default:
		return "", domainErrorf(domain.ErrInvalidInput, "billing mode %q must be flat or cadence", s)
	}
}

// BulkResult summarizes one bulk billing run
type BulkResult struct {
	Mode           BillingMode `json:"mode"`
	Months         int         `json:"months"`
	StartDate      time.Time   `json:"start_date"`
	TenantsBilled  int         `json:"tenants_billed"`
	TenantsSkipped int         `json:"tenants_skipped"`
	Payments       int         `json:"payments"`
}

// billingAmount is the monthly charge for a tenant in a room
func billingAmount(mode BillingMode, tenant *domain.Tenant, room *domain.Room) decimal.Decimal {
	if mode == BillingCadence {
		return tenant.PeriodAmount(room)
	}
	return room.BaseRent
}

// nextMonth advances t by one calendar month, clamping the day to the
// length of the target month (Jan 31 -> Feb 29 in a leap year).
func nextMonth(t time.Time) time.Time {
	y, m, d := t.Date()
	if last := daysIn(y, m+1, t.Location()); d > last {
		d = last
	}
	return time.Date(y, m+1, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
