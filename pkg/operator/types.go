package operator

// CreateDataEntryRequest is the create payload. Data carries the form fields
// verbatim; the backend stores them without interpreting individual keys.
type CreateDataEntryRequest struct {
	Data      map[string]interface{} `json:"data"`
	EntryType string                 `json:"entry_type"`
}

// CreateDataEntryResponse is the backend's reply to a successful create.
// New entries always start in "draft" status.
type CreateDataEntryResponse struct {
	EntryID   string `json:"entry_id"`
	EventID   string `json:"event_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// DataEntry is one entry as the backend returns it to its creator.
// Status moves draft -> submitted -> confirmed/rejected on the backend side.
type DataEntry struct {
	EntryID           string                 `json:"entry_id"`
	Data              map[string]interface{} `json:"data"`
	Status            string                 `json:"status"`
	CreatedAt         string                 `json:"created_at"`
	UpdatedAt         string                 `json:"updated_at"`
	CreatedByUsername string                 `json:"created_by_username"`
}

// ListDataEntriesRequest narrows the listing. Zero values mean the backend
// defaults (all statuses, limit 50, offset 0).
type ListDataEntriesRequest struct {
	Status string
	Limit  int
	Offset int
}

// ListDataEntriesResponse is one page of entries.
type ListDataEntriesResponse struct {
	Items  []DataEntry `json:"items"`
	Total  int         `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

// SubmitForApprovalResponse is the backend's reply when an entry is handed
// to the review queue.
type SubmitForApprovalResponse struct {
	EventID     string `json:"event_id"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submitted_at"`
}
