package usecase

import (
	"errors"

	"ordering-kiosk/internal/cart"
	"ordering-kiosk/internal/cart/repository"
)

// clampQuantity forces q into the cart's closed quantity range.
func clampQuantity(q int) int {
	if q < cart.MinQuantity {
		return cart.MinQuantity
	}
	if q > cart.MaxQuantity {
		return cart.MaxQuantity
	}
	return q
}

// mapStoreErr lifts store sentinels into domain errors.
func mapStoreErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrLineNotFound):
		return cart.ErrLineNotFound
	case errors.Is(err, repository.ErrInstructionsTooLong):
		return cart.ErrInstructionsTooLong
	default:
		return err
	}
}
