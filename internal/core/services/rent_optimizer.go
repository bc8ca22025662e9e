package services

import (
	"github.com/shopspring/decimal"

	"pghive/internal/core/domain"
)

// Pricing constants
var (
	sizeRatePerSqft  = decimal.NewFromInt(8)
	amenityStep      = decimal.RequireFromString("0.04")
	highDemandFactor = decimal.RequireFromString("1.1")
	lowDemandFactor  = decimal.RequireFromString("0.9")
	hundred          = decimal.NewFromInt(100)
)

const (
	highDemandOccupancy = 0.75
	lowDemandOccupancy  = 0.4
)

// SuggestRent prices a room from its base rent, size, amenities and sharing
// type, adjusted for demand, rounded half away from zero to a whole unit.
// Occupancy above 0.75 raises the price 10%, below 0.4 lowers it 10%.
func SuggestRent(room *domain.Room, occupancyRate float64) (decimal.Decimal, error) {
	if room == nil {
		return decimal.Zero, domainErrorf(domain.ErrInvalidArgument, "room is required")
	}

	factor, ok := room.SharingType.Factor()
	if !ok {
		return decimal.Zero, domainErrorf(domain.ErrInvalidRoom, "unknown sharing type %q", room.SharingType)
	}

	price := room.BaseRent.
		Add(decimal.NewFromFloat(room.SizeSqft).Mul(sizeRatePerSqft)).
		Mul(decimal.NewFromInt(1).Add(amenityStep.Mul(decimal.NewFromInt(int64(room.AmenityScore))))).
		Mul(factor)

	switch {
	case occupancyRate > highDemandOccupancy:
		price = price.Mul(highDemandFactor)
	case occupancyRate < lowDemandOccupancy:
		price = price.Mul(lowDemandFactor)
	}

	return price.Round(0), nil
}

// changePercent returns (suggested - current) / current * 100, 0 when current is 0
func changePercent(current, suggested decimal.Decimal) decimal.Decimal {
	if current.IsZero() {
		return decimal.Zero
	}
	return suggested.Sub(current).Div(current).Mul(hundred)
}
