package usecase

import (
	"context"

	"ordering-kiosk/internal/catalog"
)

// Categories returns the category strip with per-tab item counts.
func (uc *implUseCase) Categories(ctx context.Context) (catalog.CategoriesOutput, error) {
	cats, err := uc.repo.Categories(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Categories: %v", err)
		return catalog.CategoriesOutput{}, err
	}

	return catalog.CategoriesOutput{Categories: cats}, nil
}
