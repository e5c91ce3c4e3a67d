package catalog

import "errors"

var (
	ErrItemNotFound = errors.New("menu item not found")
)
