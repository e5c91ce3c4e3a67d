package currency

import "fmt"

// Format renders a price as a display string, e.g. 12.5 -> "$12.50".
// Negative amounts keep the sign in front of the dollar.
func Format(amount float64) string {
	if amount < 0 {
		return fmt.Sprintf("-$%.2f", -amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}
