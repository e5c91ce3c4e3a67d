package usecase

import (
	"context"

	"ordering-kiosk/internal/catalog"
	repo "ordering-kiosk/internal/catalog/repository"
)

// List returns the menu narrowed by the page filter criteria.
func (uc *implUseCase) List(ctx context.Context, input catalog.ListInput) (catalog.ListOutput, error) {
	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{Category: input.Criteria.Category})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return catalog.ListOutput{}, err
	}

	filtered := catalog.Filter(items, input.Criteria)

	return catalog.ListOutput{
		Items: filtered,
		Total: len(filtered),
	}, nil
}
