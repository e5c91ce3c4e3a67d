package checkout

import (
	"context"
	"time"

	"ordering-kiosk/pkg/operator"
)

// FormPhase is the submission lifecycle shared by both forms.
type FormPhase string

const (
	PhaseIdle       FormPhase = "idle"       // editable, possibly holding a form error
	PhaseSubmitting FormPhase = "submitting" // remote call in flight, inputs disabled
	PhaseSucceeded  FormPhase = "succeeded"  // success indicator visible
)

// Entry types the data-entry form offers. The backend tolerates any string;
// the form only validates that one of these was picked.
const (
	EntryTypeOrder     = "order"
	EntryTypeInventory = "inventory"
	EntryTypeSupply    = "supply"
	EntryTypeOther     = "other"
)

var validEntryTypes = map[string]bool{
	EntryTypeOrder:     true,
	EntryTypeInventory: true,
	EntryTypeSupply:    true,
	EntryTypeOther:     true,
}

// Priorities for the data-entry form. Advisory only; no validator runs on
// them and the backend stores them verbatim.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Data-entry quantity bounds. Checked at submit time, not in the setter.
const (
	MinEntryQuantity = 1
	MaxEntryQuantity = 1000
)

// DataEntryDraft is the data-entry form's working copy.
type DataEntryDraft struct {
	EntryType   string
	Title       string
	Description string
	Quantity    int
	Priority    string
	Notes       string
}

// DefaultDataEntryDraft is the single state every reset lands on.
func DefaultDataEntryDraft() DataEntryDraft {
	return DataEntryDraft{
		EntryType: EntryTypeOrder,
		Quantity:  1,
		Priority:  PriorityMedium,
	}
}

// DataEntryState is the form as the UI renders it.
type DataEntryState struct {
	Draft     DataEntryDraft
	Phase     FormPhase
	FormError string // validation or remote failure, empty when none
	EntryID   string // backend id of the last successfully created entry
}

// CardType is the network derived from the card number prefix. Advisory
// display only; it participates in no validation rule.
type CardType string

const (
	CardVisa       CardType = "visa"
	CardMastercard CardType = "mastercard"
	CardAmex       CardType = "amex"
	CardDiscover   CardType = "discover"
	CardUnknown    CardType = "unknown"
)

// Payment form field names. These are the wire names the delivery layer
// accepts and the keys of PaymentState.Fields.
const (
	FieldCardName     = "card_name"
	FieldCardNumber   = "card_number"
	FieldExpiryMonth  = "expiry_month"
	FieldExpiryYear   = "expiry_year"
	FieldCVV          = "cvv"
	FieldAddressLine1 = "address_line1"
	FieldAddressLine2 = "address_line2"
	FieldCity         = "city"
	FieldState        = "state"
	FieldZip          = "zip"
)

// paymentFieldOrder fixes the iteration order for full-form validation so
// the first reported error is deterministic.
var paymentFieldOrder = []string{
	FieldCardName,
	FieldCardNumber,
	FieldExpiryMonth,
	FieldExpiryYear,
	FieldCVV,
	FieldAddressLine1,
	FieldAddressLine2,
	FieldCity,
	FieldState,
	FieldZip,
}

// FieldState is one payment field as the UI renders it. Error is only
// populated once the field has been touched.
type FieldState struct {
	Value   string
	Touched bool
	Error   string
}

// PaymentState is the payment form as the UI renders it.
type PaymentState struct {
	Fields    map[string]FieldState // keyed by the Field* constants
	CardType  CardType
	SaveCard  bool
	Phase     FormPhase
	FormError string
	CanSubmit bool   // false while any touched field holds an error
	OrderID   string // backend id of the placed order, set once Succeeded
}

// Options tunes the form engines.
type Options struct {
	// SuccessDisplayDelay is how long the data-entry success indicator
	// stays up before the draft auto-resets.
	SuccessDisplayDelay time.Duration
}

const DefaultSuccessDisplayDelay = 2000 * time.Millisecond

func DefaultOptions() Options {
	return Options{SuccessDisplayDelay: DefaultSuccessDisplayDelay}
}

// OperatorService is the slice of the operator client the checkout domain
// consumes. *operator.Client satisfies it.
type OperatorService interface {
	CreateDataEntry(ctx context.Context, req operator.CreateDataEntryRequest) (*operator.CreateDataEntryResponse, error)
	GetDataEntry(ctx context.Context, entryID string) (*operator.DataEntry, error)
	ListDataEntries(ctx context.Context, req operator.ListDataEntriesRequest) (*operator.ListDataEntriesResponse, error)
	SubmitForApproval(ctx context.Context, entryID string) (*operator.SubmitForApprovalResponse, error)
}

// SummaryFunc supplies the order contents submitted alongside the card
// details. The session wires it to the cart snapshot; nil omits the summary.
type SummaryFunc func(ctx context.Context) (map[string]interface{}, error)

// ListEntriesInput narrows the entry listing passed through to the backend.
type ListEntriesInput struct {
	Status string
	Limit  int
	Offset int
}

// ListEntriesOutput is one page of the kiosk's entries.
type ListEntriesOutput struct {
	Items  []operator.DataEntry
	Total  int
	Limit  int
	Offset int
}

// EntryOutput is one entry with its backend lifecycle status.
type EntryOutput struct {
	Entry operator.DataEntry
}

// SubmitEntryOutput reports a draft handed to the review queue.
type SubmitEntryOutput struct {
	EntryID     string
	Status      string
	SubmittedAt string
}
