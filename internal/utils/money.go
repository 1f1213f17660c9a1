package utils

import (
	"fmt"
	"math"
)

// Round2 rounds to two decimal places, matching how driver ratings and
// currency amounts are persisted.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
