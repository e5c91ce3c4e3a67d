package checkout

import "errors"

var (
	ErrUnknownField  = errors.New("unknown payment field")
	ErrEntryNotFound = errors.New("entry not found")
)
