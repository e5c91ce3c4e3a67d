package repository

import "errors"

var (
	ErrEmptyMenu       = errors.New("menu has no items")
	ErrDuplicateItemID = errors.New("duplicate menu item id")
)
