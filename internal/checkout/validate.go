package checkout

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"ordering-kiosk/pkg/operator"
)

var (
	zipPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	cvvPattern = regexp.MustCompile(`^\d{3,4}$`)
)

// validateDataEntry runs the data-entry checks in order and returns the
// first failure message, or "" when the draft passes.
func validateDataEntry(d DataEntryDraft) string {
	if !validEntryTypes[d.EntryType] {
		return "Please select a valid entry type"
	}
	if utf8.RuneCountInString(strings.TrimSpace(d.Title)) < 3 {
		return "Title must be at least 3 characters"
	}
	if utf8.RuneCountInString(strings.TrimSpace(d.Description)) < 10 {
		return "Description must be at least 10 characters"
	}
	if d.Quantity < MinEntryQuantity || d.Quantity > MaxEntryQuantity {
		return "Quantity must be between 1 and 1000"
	}
	return ""
}

// validatePaymentField runs one field's check and returns its error message,
// or "" when the value passes. Fields without a validator (address line 2)
// never hold an error. now anchors the expiry year rule.
func validatePaymentField(field, value string, now time.Time) string {
	switch field {
	case FieldCardName:
		if strings.TrimSpace(value) == "" {
			return "Cardholder name is required"
		}
	case FieldCardNumber:
		digits := digitsOnly(value)
		if len(digits) < 13 || len(digits) > 16 {
			return "Card number must be 13 to 16 digits"
		}
	case FieldExpiryMonth:
		m, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || m < 1 || m > 12 {
			return "Enter a valid expiry month"
		}
	case FieldExpiryYear:
		y, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || y < 1000 || y > 9999 {
			return "Enter a valid expiry year"
		}
		if y < now.Year() {
			return "Expiry year cannot be in the past"
		}
	case FieldCVV:
		if !cvvPattern.MatchString(strings.TrimSpace(value)) {
			return "CVV must be 3 or 4 digits"
		}
	case FieldAddressLine1:
		if strings.TrimSpace(value) == "" {
			return "Billing address is required"
		}
	case FieldCity:
		if strings.TrimSpace(value) == "" {
			return "City is required"
		}
	case FieldState:
		if strings.TrimSpace(value) == "" {
			return "State is required"
		}
	case FieldZip:
		if !zipPattern.MatchString(strings.TrimSpace(value)) {
			return "Enter a valid ZIP code"
		}
	}
	return ""
}

func knownPaymentField(field string) bool {
	for _, f := range paymentFieldOrder {
		if f == field {
			return true
		}
	}
	return false
}

// boundaryMessage converts a remote failure into the single form-level
// string shown to the user. The backend's detail is shown verbatim when
// present; everything else gets the generic fallback.
func boundaryMessage(err error) string {
	var apiErr *operator.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return "Submission failed. Please try again."
}
