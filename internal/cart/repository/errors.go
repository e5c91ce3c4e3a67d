package repository

import "errors"

var (
	ErrLineNotFound        = errors.New("line not found in cart")
	ErrInstructionsTooLong = errors.New("instructions longer than the cart accepts")
)
