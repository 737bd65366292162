// Package stats holds the pure numeric helpers shared by every report
package stats

import "math"

// Percentage is part/total*100 rounded to 2 decimals; a zero total yields 0
func Percentage(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(part) / float64(total) * 100)
}

// DeletionRate is the share of deleted products over all products
func DeletionRate(deleted, total int64) float64 { return Percentage(deleted, total) }

// PricePresenceRate is the share of priced products over the scoped total
func PricePresenceRate(withPrice, total int64) float64 { return Percentage(withPrice, total) }

// RoundPrice rounds a money amount to cents, half away from zero
func RoundPrice(v float64) float64 { return round2(v) }

// RoundPricePtr rounds through a pointer; nil stays nil
func RoundPricePtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := RoundPrice(*v)
	return &r
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
