package usecase

import (
	"context"

	"ordering-kiosk/internal/catalog"
	repo "ordering-kiosk/internal/catalog/repository"
)

// Search runs the standalone name/description search used by the search bar.
// Unlike the page filter it never looks at ingredients.
func (uc *implUseCase) Search(ctx context.Context, query string) (catalog.SearchOutput, error) {
	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Search ListItems: %v", err)
		return catalog.SearchOutput{}, err
	}

	return catalog.SearchOutput{
		Query: query,
		Items: catalog.SearchItems(items, query),
	}, nil
}
