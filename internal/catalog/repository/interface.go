package repository

import (
	"context"

	"ordering-kiosk/internal/catalog"
	"ordering-kiosk/internal/model"
)

// Repository is the composed interface for the catalog data source.
type Repository interface {
	MenuRepository
}

// MenuRepository defines all read access to the menu. The menu is static for
// the lifetime of the process; implementations never mutate returned items.
type MenuRepository interface {
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.MenuItem, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (model.MenuItem, error)
	Categories(ctx context.Context) ([]catalog.CategoryCount, error)
}
