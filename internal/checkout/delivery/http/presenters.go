package http

import (
	"ordering-kiosk/internal/checkout"
	"ordering-kiosk/pkg/operator"
)

// --- Request DTOs ---

// dataEntryFieldsReq is a partial update; only the fields present in the
// body are applied, in declaration order.
type dataEntryFieldsReq struct {
	EntryType   *string `json:"entry_type"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Quantity    *int    `json:"quantity"`
	Priority    *string `json:"priority"`
	Notes       *string `json:"notes"`
}

type paymentFieldReq struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type saveCardReq struct {
	Save bool `json:"save"`
}

type listEntriesReq struct {
	Status string `form:"status"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listEntriesReq) toInput() checkout.ListEntriesInput {
	return checkout.ListEntriesInput{
		Status: r.Status,
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

// --- Response DTOs ---

type dataEntryDraftResp struct {
	EntryType   string `json:"entry_type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Priority    string `json:"priority"`
	Notes       string `json:"notes"`
}

type dataEntryStateResp struct {
	Draft     dataEntryDraftResp `json:"draft"`
	Phase     string             `json:"phase"`
	FormError string             `json:"form_error,omitempty"`
	EntryID   string             `json:"entry_id,omitempty"`
}

func newDataEntryStateResp(st checkout.DataEntryState) dataEntryStateResp {
	return dataEntryStateResp{
		Draft: dataEntryDraftResp{
			EntryType:   st.Draft.EntryType,
			Title:       st.Draft.Title,
			Description: st.Draft.Description,
			Quantity:    st.Draft.Quantity,
			Priority:    st.Draft.Priority,
			Notes:       st.Draft.Notes,
		},
		Phase:     string(st.Phase),
		FormError: st.FormError,
		EntryID:   st.EntryID,
	}
}

type fieldStateResp struct {
	Value   string `json:"value"`
	Touched bool   `json:"touched"`
	Error   string `json:"error,omitempty"`
}

type paymentStateResp struct {
	Fields    map[string]fieldStateResp `json:"fields"`
	CardType  string                    `json:"card_type"`
	SaveCard  bool                      `json:"save_card"`
	Phase     string                    `json:"phase"`
	FormError string                    `json:"form_error,omitempty"`
	CanSubmit bool                      `json:"can_submit"`
	OrderID   string                    `json:"order_id,omitempty"`
}

func newPaymentStateResp(st checkout.PaymentState) paymentStateResp {
	fields := make(map[string]fieldStateResp, len(st.Fields))
	for name, fs := range st.Fields {
		fields[name] = fieldStateResp{
			Value:   fs.Value,
			Touched: fs.Touched,
			Error:   fs.Error,
		}
	}
	return paymentStateResp{
		Fields:    fields,
		CardType:  string(st.CardType),
		SaveCard:  st.SaveCard,
		Phase:     string(st.Phase),
		FormError: st.FormError,
		CanSubmit: st.CanSubmit,
		OrderID:   st.OrderID,
	}
}

type entryResp struct {
	EntryID           string                 `json:"entry_id"`
	Data              map[string]interface{} `json:"data"`
	Status            string                 `json:"status"`
	CreatedAt         string                 `json:"created_at"`
	UpdatedAt         string                 `json:"updated_at,omitempty"`
	CreatedByUsername string                 `json:"created_by_username,omitempty"`
}

func newEntryResp(e operator.DataEntry) entryResp {
	return entryResp{
		EntryID:           e.EntryID,
		Data:              e.Data,
		Status:            e.Status,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
		CreatedByUsername: e.CreatedByUsername,
	}
}

type listEntriesResp struct {
	Items  []entryResp `json:"items"`
	Total  int         `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

func (h *handler) newListEntriesResp(out checkout.ListEntriesOutput) listEntriesResp {
	items := make([]entryResp, len(out.Items))
	for i, e := range out.Items {
		items[i] = newEntryResp(e)
	}
	return listEntriesResp{
		Items:  items,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type submitEntryResp struct {
	EntryID     string `json:"entry_id"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submitted_at"`
}

func (h *handler) newSubmitEntryResp(out checkout.SubmitEntryOutput) submitEntryResp {
	return submitEntryResp{
		EntryID:     out.EntryID,
		Status:      out.Status,
		SubmittedAt: out.SubmittedAt,
	}
}
