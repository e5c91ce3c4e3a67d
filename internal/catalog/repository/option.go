package repository

// ListItemsOptions holds filter parameters applied at the data source.
// Category "" or "all" returns the full menu in its stable order.
type ListItemsOptions struct {
	Category string
}

// GetOneItemOptions holds lookup parameters for fetching a single item.
// A miss returns the zero item with a nil error; callers decide whether
// absence is an error.
type GetOneItemOptions struct {
	ID string
}
