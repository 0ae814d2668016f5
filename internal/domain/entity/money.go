package entity

import "math"

// Monetary amounts are stored in cents (int64) and exposed as decimal
// values on the wire and in snapshots.

func centsToDecimal(cents int64) float64 {
	return float64(cents) / 100
}

func decimalToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// ToCents converts a decimal amount into cents
func ToCents(amount float64) int64 {
	return decimalToCents(amount)
}

// FromCents converts cents into a decimal amount
func FromCents(cents int64) float64 {
	return centsToDecimal(cents)
}
