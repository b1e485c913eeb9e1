package domain

import (
	"strings"
	"time"
)

type Customer struct {
	Name          string
	TaxID         string
	BirthDate     time.Time
	Emancipated   bool
	GuardianTaxID *string
	PhoneNumber   *string
	Email         *string
	CreatedAt     time.Time
}

// NormalizeTaxID strips everything but digits so formatted and raw inputs
// collide on the same key.
func NormalizeTaxID(raw string) string {
	var b strings.Builder
	for _, ch := range strings.TrimSpace(raw) {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

func (c Customer) Age(now time.Time) int {
	years := now.Year() - c.BirthDate.Year()
	anniversary := c.BirthDate.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	return years
}

func (c Customer) IsMinor(now time.Time) bool {
	return c.Age(now) < 18
}

// CanOpen applies the variant eligibility rule. Savings is open to any
// age; Checking requires majority or legal emancipation. The guardian
// reference is informational metadata and is not a precondition.
func (c Customer) CanOpen(variant AccountVariant, now time.Time) bool {
	switch variant {
	case VariantChecking:
		return c.Age(now) >= 18 || c.Emancipated
	case VariantSavings:
		return true
	default:
		return false
	}
}
