package checkout

import "strings"

const maxCardDigits = 16

// digitsOnly strips everything but digits and caps the result at the
// maximum accepted card length.
func digitsOnly(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteByte(byte(r))
			if b.Len() == maxCardDigits {
				break
			}
		}
	}
	return b.String()
}

// FormatCardNumber renders a card number for display: non-digits stripped,
// capped at 16 digits, a space every 4.
func FormatCardNumber(raw string) string {
	digits := digitsOnly(raw)

	var b strings.Builder
	for i := 0; i < len(digits); i += 4 {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		b.WriteString(digits[i:end])
	}
	return b.String()
}

// DetectCardType applies the ordered prefix rules against the digit-only
// number. Advisory display only; it participates in no validation rule.
func DetectCardType(raw string) CardType {
	digits := digitsOnly(raw)
	if digits == "" {
		return CardUnknown
	}

	switch {
	case strings.HasPrefix(digits, "4"):
		return CardVisa
	case prefixInRange(digits, 51, 55), prefixInRange(digits, 22, 27):
		return CardMastercard
	case strings.HasPrefix(digits, "34"), strings.HasPrefix(digits, "37"):
		return CardAmex
	case strings.HasPrefix(digits, "6011"), strings.HasPrefix(digits, "65"):
		return CardDiscover
	default:
		return CardUnknown
	}
}

func prefixInRange(digits string, lo, hi int) bool {
	if len(digits) < 2 {
		return false
	}
	p := int(digits[0]-'0')*10 + int(digits[1]-'0')
	return p >= lo && p <= hi
}
