package cart

import "errors"

var (
	ErrUnknownItem         = errors.New("unknown menu item")
	ErrItemUnavailable     = errors.New("menu item is unavailable")
	ErrLineNotFound        = errors.New("cart line not found")
	ErrInstructionsTooLong = errors.New("special instructions exceed 200 characters")
)
