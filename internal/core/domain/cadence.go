package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Cadence is a tenant's payment-period variant
type Cadence int

const (
	CadenceDefault Cadence = iota
	CadenceDaily
	CadenceWeekly
	CadenceFifteenDay
	CadenceQuarterly
	CadenceBiYearly
	CadenceYearly
)

// DefaultPeriodDays is the period of the Default cadence: a plain month
const DefaultPeriodDays = 30

var (
	thirty = decimal.NewFromInt(30)

	cadenceNames = map[Cadence]string{
		CadenceDefault:    "Default",
		CadenceDaily:      "Daily",
		CadenceWeekly:     "Weekly",
		CadenceFifteenDay: "FifteenDay",
		CadenceQuarterly:  "Quarterly",
		CadenceBiYearly:   "BiYearly",
		CadenceYearly:     "Yearly",
	}

	cadencePeriods = map[Cadence]int{
		CadenceDaily:      1,
		CadenceWeekly:     7,
		CadenceFifteenDay: 15,
		CadenceQuarterly:  90,
		CadenceBiYearly:   180,
		CadenceYearly:     365,
	}
)

// Cadences lists the selectable cadences in menu order (1-6)
var Cadences = []Cadence{
	CadenceDaily,
	CadenceWeekly,
	CadenceFifteenDay,
	CadenceQuarterly,
	CadenceBiYearly,
	CadenceYearly,
}

// ParseCadence accepts a cadence name ("weekly", "Fifteen Day", "bi-yearly")
// or a menu number 1-6. Anything else selects CadenceDefault.
func ParseCadence(s string) Cadence {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= len(Cadences) {
			return Cadences[n-1]
		}
		return CadenceDefault
	}

	key := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
	for c, name := range cadenceNames {
		if strings.ToLower(name) == key {
			return c
		}
	}
	return CadenceDefault
}

func (c Cadence) String() string {
	if name, ok := cadenceNames[c]; ok {
		return name
	}
	return cadenceNames[CadenceDefault]
}

// PeriodDays returns the number of days between payments
func (c Cadence) PeriodDays() int {
	if days, ok := cadencePeriods[c]; ok {
		return days
	}
	return DefaultPeriodDays
}

// PeriodAmount returns what one payment period costs for a room
// with the given monthly rent.
func (c Cadence) PeriodAmount(monthlyRent decimal.Decimal) decimal.Decimal {
	switch c {
	case CadenceDaily:
		return monthlyRent.Div(thirty)
	case CadenceWeekly:
		return monthlyRent.Mul(decimal.NewFromInt(7)).Div(thirty)
	case CadenceFifteenDay:
		return monthlyRent.Div(decimal.NewFromInt(2))
	case CadenceQuarterly:
		return monthlyRent.Mul(decimal.NewFromInt(3))
	case CadenceBiYearly:
		return monthlyRent.Mul(decimal.NewFromInt(6))
	case CadenceYearly:
		return monthlyRent.Mul(decimal.NewFromInt(12))
	default:
		return monthlyRent.Mul(decimal.NewFromInt(int64(c.PeriodDays()))).Div(thirty)
	}
}

// MarshalText encodes the cadence by name
func (c Cadence) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a cadence name, falling back to CadenceDefault
func (c *Cadence) UnmarshalText(b []byte) error {
	*c = ParseCadence(string(b))
	return nil
}
