package usecase

import (
	"context"

	"ordering-kiosk/internal/catalog"
	repo "ordering-kiosk/internal/catalog/repository"
)

// Detail returns a single menu item by ID.
func (uc *implUseCase) Detail(ctx context.Context, id string) (catalog.DetailOutput, error) {
	item, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return catalog.DetailOutput{}, err
	}
	if item.ID == "" {
		return catalog.DetailOutput{}, catalog.ErrItemNotFound
	}

	return catalog.DetailOutput{Item: item}, nil
}
